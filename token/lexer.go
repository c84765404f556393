package token

import (
	"strconv"
	"strings"
)

// Source supplies file content by name.
type Source interface {
	Get(name string) ([]byte, bool)
}

type Lexer struct {
	file string
	d    []byte
	i    int
	line int
}

func NewLexer(file string, d []byte) *Lexer {
	return &Lexer{file: file, d: d, line: 1}
}

// Open returns a lexer over the content src holds for file, or an
// *UnavailableError if there is none yet.
func Open(file string, src Source) (*Lexer, error) {
	d, ok := src.Get(file)
	if !ok {
		return nil, &UnavailableError{File: file}
	}
	return NewLexer(file, d), nil
}

// Tokenize lexes all of d. The returned slice always ends with a TEOF token.
func Tokenize(file string, d []byte) ([]Token, error) {
	return NewLexer(file, d).All()
}

// All lexes the rest of the input.
func (l *Lexer) All() ([]Token, error) {
	res := make([]Token, 0, (len(l.d)-l.i)/4+1)
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		res = append(res, tok)
		if tok.Type == TEOF {
			return res, nil
		}
	}
}

func (l *Lexer) File() string { return l.file }

func (l *Lexer) pos() Pos {
	return Pos{File: l.file, Line: l.line}
}

func (l *Lexer) Next() (Token, error) {
	if err := l.skip(); err != nil {
		return Token{}, err
	}
	pos := l.pos()
	if l.i >= len(l.d) {
		return Token{Type: TEOF, Pos: pos}, nil
	}
	c := l.d[l.i]
	switch {
	case c == '#':
		return l.include(pos)
	case c == '"':
		return l.quoted(pos)
	case isDigit(c):
		return l.number(pos)
	case (c == '-' || c == '+') && l.i+1 < len(l.d) && isDigit(l.d[l.i+1]):
		return l.number(pos)
	case isIdentStart(c):
		return l.literal(pos), nil
	}
	if tt, ok := punctuation[c]; ok {
		l.i++
		return Token{Type: tt, Pos: pos, Text: string(c)}, nil
	}
	return Token{}, NewLexError(ErrUnrecognizedChar, pos, quoteChar(c))
}

func (l *Lexer) skip() error {
	for l.i < len(l.d) {
		c := l.d[l.i]
		switch c {
		case '\n':
			l.line++
			l.i++
		case ' ', '\t', '\r', '\f', '\v':
			l.i++
		case '/':
			if l.i+1 >= len(l.d) {
				return NewLexError(ErrUnrecognizedChar, l.pos(), quoteChar(c))
			}
			switch l.d[l.i+1] {
			case '/':
				for l.i < len(l.d) && l.d[l.i] != '\n' {
					l.i++
				}
			case '*':
				if err := l.blockComment(); err != nil {
					return err
				}
			default:
				return NewLexError(ErrUnrecognizedChar, l.pos(), quoteChar(c))
			}
		default:
			return nil
		}
	}
	return nil
}

func (l *Lexer) blockComment() error {
	start := l.pos()
	l.i += 2
	for l.i+1 < len(l.d) {
		switch {
		case l.d[l.i] == '*' && l.d[l.i+1] == '/':
			l.i += 2
			return nil
		case l.d[l.i] == '\n':
			l.line++
		}
		l.i++
	}
	l.i = len(l.d)
	return NewLexError(ErrUnterminatedComment, start, "")
}

func (l *Lexer) include(pos Pos) (Token, error) {
	const kw = "#include"
	if !isKeyWordPrefix(l.d[l.i:], kw) {
		return Token{}, NewLexError(ErrUnrecognizedChar, pos, quoteChar('#'))
	}
	l.i += len(kw)
	return Token{Type: TInclude, Pos: pos, Text: kw}, nil
}

// quoted copies the bytes between the quotes verbatim; there are no escapes.
func (l *Lexer) quoted(pos Pos) (Token, error) {
	l.i++
	start := l.i
	for l.i < len(l.d) {
		switch l.d[l.i] {
		case '"':
			tok := Token{Type: TString, Pos: pos, Text: string(l.d[start:l.i])}
			l.i++
			return tok, nil
		case '\n':
			l.line++
		}
		l.i++
	}
	return Token{}, NewLexError(ErrUnterminatedString, pos, "")
}

func (l *Lexer) literal(pos Pos) Token {
	start := l.i
	for l.i < len(l.d) && isIdentChar(l.d[l.i]) {
		l.i++
	}
	text := string(l.d[start:l.i])
	if tt, ok := keywords[text]; ok {
		return Token{Type: tt, Pos: pos, Text: text, Bool: text == "true"}
	}
	if strings.Contains(text, ".") {
		return Token{Type: TRefPath, Pos: pos, Text: text}
	}
	return Token{Type: TLiteral, Pos: pos, Text: text}
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || isDigit(c) || c == '.'
}

func quoteChar(c byte) string {
	return strconv.QuoteRune(rune(c))
}
