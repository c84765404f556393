package parse

import (
	"os"

	"github.com/openharmony/go-hcs/ast"
	"github.com/openharmony/go-hcs/debug"
	"github.com/openharmony/go-hcs/ir"
	"github.com/openharmony/go-hcs/source"
	"github.com/openharmony/go-hcs/token"
)

// File is the parse result of one source file.
type File struct {
	Name     string
	Tree     *ast.Tree
	Includes []string
}

func ParseFile(name string, d []byte, opts ...ParseOption) (*File, error) {
	return parseLexer(token.NewLexer(name, d), opts...)
}

func parseLexer(l *token.Lexer, opts ...ParseOption) (*File, error) {
	o := &parseOpts{}
	for _, opt := range opts {
		opt(o)
	}
	toks, err := l.All()
	if err != nil {
		return nil, err
	}
	if o.trace || debug.Lex() {
		token.PrintTokens(os.Stderr, toks, l.File())
	}
	f := &File{Name: l.File(), Tree: ast.NewTree()}
	p := &parser{toks: toks, tree: f.Tree}
	if err := p.file(f); err != nil {
		return nil, err
	}
	if o.trace || debug.Parse() {
		debug.Logf("parsed %s: %d nodes, includes %v\n%v", f.Name, f.Tree.Len(), f.Includes, f.Tree.ToIR())
	}
	return f, nil
}

type parser struct {
	toks []token.Token
	i    int
	tree *ast.Tree
}

func (p *parser) peek() *token.Token {
	return &p.toks[p.i]
}

func (p *parser) next() *token.Token {
	tok := &p.toks[p.i]
	if tok.Type != token.TEOF {
		p.i++
	}
	return tok
}

func (p *parser) unexpected(what string) error {
	tok := p.peek()
	return &SyntaxError{Pos: tok.Pos, Expected: what, Got: tok.String()}
}

func (p *parser) expect(tt token.TokenType, what string) (*token.Token, error) {
	if p.peek().Type != tt {
		return nil, p.unexpected(what)
	}
	return p.next(), nil
}

func (p *parser) file(f *File) error {
	for p.peek().Type == token.TInclude {
		p.next()
		tok, err := p.expect(token.TString, "include path")
		if err != nil {
			return err
		}
		if tok.Text == "" {
			return &SyntaxError{Pos: tok.Pos, Expected: "include path", Got: `""`}
		}
		f.Includes = append(f.Includes, source.IncludePath(f.Name, tok.Text))
		if p.peek().Type == token.TSemi {
			p.next()
		}
	}
	switch p.peek().Type {
	case token.TEOF:
		return nil
	case token.TRoot:
		tok := p.next()
		root := p.tree.New(ast.Node{
			Kind:     ast.ConfigNode,
			Name:     ir.RootName,
			Relation: ir.RelData,
			Pos:      tok.Pos,
		})
		p.tree.SetRoot(root)
		if err := p.body(root); err != nil {
			return err
		}
		_, err := p.expect(token.TEOF, "end of file")
		return err
	default:
		return p.unexpected("root node or end of file")
	}
}

func (p *parser) body(parent ast.NodeID) error {
	if _, err := p.expect(token.TLCurl, "'{'"); err != nil {
		return err
	}
	for {
		switch p.peek().Type {
		case token.TRCurl:
			p.next()
			return nil
		case token.TTemplate:
			p.next()
			name, err := p.expect(token.TLiteral, "template name")
			if err != nil {
				return err
			}
			id := p.tree.New(ast.Node{
				Kind:     ast.ConfigNode,
				Name:     name.Text,
				Relation: ir.RelTemplate,
				Pos:      name.Pos,
			})
			p.tree.Append(parent, id)
			if err := p.body(id); err != nil {
				return err
			}
		case token.TLiteral:
			if err := p.nodeOrTerm(parent); err != nil {
				return err
			}
		default:
			return p.unexpected("node, attribute or '}'")
		}
	}
}

func (p *parser) nodeOrTerm(parent ast.NodeID) error {
	name := p.next()
	switch p.peek().Type {
	case token.TAssign:
		p.next()
		term := p.tree.New(ast.Node{Kind: ast.ConfigTerm, Name: name.Text, Pos: name.Pos})
		p.tree.Append(parent, term)
		v, err := p.value()
		if err != nil {
			return err
		}
		p.tree.Append(term, v)
		_, err = p.expect(token.TSemi, "';'")
		return err
	case token.TLCurl:
		id := p.tree.New(ast.Node{
			Kind:     ast.ConfigNode,
			Name:     name.Text,
			Relation: ir.RelData,
			Pos:      name.Pos,
		})
		p.tree.Append(parent, id)
		return p.body(id)
	case token.TColon:
		p.next()
		return p.relNode(parent, name)
	default:
		return p.unexpected("'=', '{' or ':'")
	}
}

func (p *parser) relNode(parent ast.NodeID, name *token.Token) error {
	n := ast.Node{Kind: ast.ConfigNode, Name: name.Text, Pos: name.Pos}
	switch tok := p.peek(); tok.Type {
	case token.TAmp, token.TColon:
		p.next()
		n.Relation = ir.RelReference
		if tok.Type == token.TColon {
			n.Relation = ir.RelInherit
		}
		path, err := p.path()
		if err != nil {
			return err
		}
		n.Ref = path
	case token.TDelete:
		p.next()
		n.Relation = ir.RelDelete
	case token.TLiteral, token.TRefPath:
		p.next()
		n.Relation = ir.RelCopy
		n.Ref = tok.Text
	default:
		return p.unexpected("'&', ':', delete or a node path")
	}
	id := p.tree.New(n)
	p.tree.Append(parent, id)
	return p.body(id)
}

func (p *parser) path() (string, error) {
	switch tok := p.peek(); tok.Type {
	case token.TLiteral, token.TRefPath:
		p.next()
		return tok.Text, nil
	default:
		return "", p.unexpected("node path")
	}
}

func (p *parser) value() (ast.NodeID, error) {
	tok := p.peek()
	switch tok.Type {
	case token.TBool:
		p.next()
		return p.tree.New(ast.Node{Kind: ast.Bool, Bool: tok.Bool, Pos: tok.Pos}), nil
	case token.TString:
		p.next()
		return p.tree.New(ast.Node{Kind: ast.String, Text: tok.Text, Pos: tok.Pos}), nil
	case token.TNumber:
		p.next()
		return p.tree.New(numberNode(tok)), nil
	case token.TLSquare:
		p.next()
		return p.array(tok)
	case token.TAmp:
		p.next()
		path, err := p.path()
		if err != nil {
			return ast.Nil, err
		}
		return p.tree.New(ast.Node{Kind: ast.NodeRef, Ref: path, Pos: tok.Pos}), nil
	case token.TDelete:
		p.next()
		return p.tree.New(ast.Node{Kind: ast.Delete, Pos: tok.Pos}), nil
	default:
		return ast.Nil, p.unexpected("value")
	}
}

func numberNode(tok *token.Token) ast.Node {
	return ast.Node{
		Kind:  ast.Integer,
		Text:  tok.Text,
		Value: tok.Value,
		Neg:   tok.Neg,
		Radix: tok.Radix,
		Pos:   tok.Pos,
	}
}

func (p *parser) array(open *token.Token) (ast.NodeID, error) {
	arr := p.tree.New(ast.Node{Kind: ast.Array, Pos: open.Pos})
	var elemType token.TokenType = token.TEOF
	for {
		tok := p.peek()
		switch tok.Type {
		case token.TRSquare:
			p.next()
			return arr, nil
		case token.TNumber, token.TString:
		default:
			return ast.Nil, p.unexpected("number, string or ']'")
		}
		if elemType != token.TEOF && tok.Type != elemType {
			return ast.Nil, &SyntaxError{
				Pos:      tok.Pos,
				Expected: "array elements of one type (" + elemType.String() + ")",
				Got:      tok.String(),
			}
		}
		elemType = tok.Type
		p.next()
		var elem ast.NodeID
		if tok.Type == token.TNumber {
			elem = p.tree.New(numberNode(tok))
		} else {
			elem = p.tree.New(ast.Node{Kind: ast.String, Text: tok.Text, Pos: tok.Pos})
		}
		p.tree.Append(arr, elem)
		switch p.peek().Type {
		case token.TComma:
			p.next()
		case token.TRSquare:
		default:
			return ast.Nil, p.unexpected("',' or ']'")
		}
	}
}
