package encode

import (
	"errors"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"

	"github.com/openharmony/go-hcs/ir"
	"github.com/openharmony/go-hcs/source"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int
	diagnostics   bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node as HCS text, one line per node or attribute, children
// indented one level deeper than their parent.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 4}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		return nil
	}
	switch node.Type {
	case ir.NodeType, ir.AttrType:
		return encodeNode(node, w, es)
	default:
		s, err := valueString(node, es)
		if err != nil {
			return err
		}
		return writeString(w, s+"\n")
	}
}

// EncodeFile writes the include header of a file followed by its tree.
// Includes are rendered relative to the directory of target.
func EncodeFile(root *ir.Node, includes []string, target string, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	dir := path.Dir(source.CleanPath(target))
	for _, inc := range includes {
		line := es.color(ir.NodeType, IncludeColor, "#include") + " " +
			es.color(ir.StringType, ValueColor, `"`+source.Rel(dir, inc)+`"`)
		if err := writeString(w, line+"\n"); err != nil {
			return err
		}
	}
	return Encode(root, w, opts...)
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func (es *EncState) pad() string {
	return strings.Repeat(" ", es.indent*es.depth)
}

func (es *EncState) trailer(node *ir.Node) string {
	if !es.diagnostics || node.Diagnostic == "" {
		return ""
	}
	return " " + es.color(node.Type, DiagnosticColor, "// error: "+node.Diagnostic)
}

func encodeNode(node *ir.Node, w io.Writer, es *EncState) error {
	if node.Type == ir.AttrType {
		v := node.Value()
		if v == nil {
			return fmt.Errorf("%w: attribute %s has no value", ErrEncoding, node.Path())
		}
		s, err := valueString(v, es)
		if err != nil {
			return err
		}
		line := es.pad() + es.color(ir.AttrType, NameColor, node.Name) +
			es.color(ir.AttrType, SepColor, " = ") + s + es.color(ir.AttrType, SepColor, ";")
		return writeString(w, line+es.trailer(node)+"\n")
	}
	head, err := nodeHead(node, es)
	if err != nil {
		return err
	}
	if err := writeString(w, es.pad()+head+es.color(ir.NodeType, SepColor, " {")+es.trailer(node)+"\n"); err != nil {
		return err
	}
	es.depth++
	for _, c := range node.Children {
		if err := encodeNode(c, w, es); err != nil {
			return err
		}
	}
	es.depth--
	return writeString(w, es.pad()+es.color(ir.NodeType, SepColor, "}")+"\n")
}

func nodeHead(node *ir.Node, es *EncState) (string, error) {
	name := es.color(ir.NodeType, NameColor, node.Name)
	ref := es.color(ir.NodeType, RefColor, node.Ref)
	sep := func(s string) string { return es.color(ir.NodeType, SepColor, s) }
	kw := func(s string) string { return es.color(ir.NodeType, KeywordColor, s) }
	switch node.Relation {
	case ir.RelData:
		return name, nil
	case ir.RelCopy:
		return name + sep(" : ") + ref, nil
	case ir.RelReference:
		return name + sep(" : &") + ref, nil
	case ir.RelDelete:
		return name + sep(" : ") + kw("delete"), nil
	case ir.RelTemplate:
		return kw("template") + " " + name, nil
	case ir.RelInherit:
		return name + sep(" :: ") + ref, nil
	default:
		return "", fmt.Errorf("%w: %s has relation %s", ErrEncoding, node.Path(), node.Relation)
	}
}

func valueString(v *ir.Node, es *EncState) (string, error) {
	switch v.Type {
	case ir.Int8Type, ir.Int16Type, ir.Int32Type, ir.Int64Type:
		s, err := IntString(v)
		if err != nil {
			return "", err
		}
		return es.color(v.Type, ValueColor, s), nil
	case ir.StringType:
		return es.color(v.Type, ValueColor, `"`+v.String+`"`), nil
	case ir.BoolType:
		return es.color(v.Type, ValueColor, strconv.FormatBool(v.Bool)), nil
	case ir.RefType:
		return es.color(v.Type, SepColor, "&") + es.color(v.Type, RefColor, v.Ref), nil
	case ir.DeleteType:
		return es.color(v.Type, ValueColor, "delete"), nil
	case ir.ArrayType:
		elems := make([]string, len(v.Children))
		for i, e := range v.Children {
			s, err := valueString(e, es)
			if err != nil {
				return "", err
			}
			elems[i] = s
		}
		sep := es.color(ir.ArrayType, SepColor, ", ")
		return es.color(ir.ArrayType, SepColor, "[") + strings.Join(elems, sep) +
			es.color(ir.ArrayType, SepColor, "]"), nil
	default:
		return "", fmt.Errorf("%w: %s is not a value", ErrEncoding, v.Type)
	}
}

// IntString renders an integer leaf with the prefix of its radix.
func IntString(v *ir.Node) (string, error) {
	if v.Neg {
		return strconv.FormatInt(int64(v.Int), 10), nil
	}
	switch v.Radix {
	case 2:
		return "0b" + strconv.FormatUint(v.Int, 2), nil
	case 8:
		return "0" + strconv.FormatUint(v.Int, 8), nil
	case 10, 0:
		return strconv.FormatUint(v.Int, 10), nil
	case 16:
		return "0x" + strconv.FormatUint(v.Int, 16), nil
	default:
		return "", fmt.Errorf("%w: radix %d", ErrEncoding, v.Radix)
	}
}
