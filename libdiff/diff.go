package libdiff

import (
	"strings"

	"github.com/openharmony/go-hcs/encode"
	"github.com/openharmony/go-hcs/ir"
)

// Change is one difference between two trees. From is nil for inserts and
// To for deletes. Path is the path of the changed node in its own tree.
type Change struct {
	Op   Op
	Path string
	From *ir.Node
	To   *ir.Node
}

func (c Change) String() string {
	var b strings.Builder
	b.WriteString(opSigns[c.Op])
	b.WriteByte(' ')
	b.WriteString(c.Path)
	b.WriteString(": ")
	switch c.Op {
	case Insert:
		b.WriteString(describe(c.To))
	case Delete:
		b.WriteString(describe(c.From))
	case Replace:
		if c.From.Type == ir.StringType && c.To.Type == ir.StringType {
			b.WriteString(`"` + InlineString(c.From.String, c.To.String) + `"`)
			break
		}
		b.WriteString(describe(c.From) + " -> " + describe(c.To))
	case Relink:
		b.WriteString(relation(c.From) + " -> " + relation(c.To))
	}
	return b.String()
}

// DiffFunc compares two nodes found at the same place.
type DiffFunc func(from, to *ir.Node) []Change

// Diff returns the changes turning from into to, in tree order: for each
// node, relation changes first, then changes of the children of from in
// their order, then the children only to has.
func Diff(from, to *ir.Node) []Change {
	var res []Change
	switch {
	case from == nil && to == nil:
	case from == nil:
		res = append(res, Change{Op: Insert, Path: to.Path(), To: to})
	case to == nil:
		res = append(res, Change{Op: Delete, Path: from.Path(), From: from})
	case from.Type == ir.NodeType && to.Type == ir.NodeType:
		res = diffNode(from, to)
	case from.Type == ir.AttrType && to.Type == ir.AttrType:
		res = Diff(from.Value(), to.Value())
	case from.Type == ir.ArrayType && to.Type == ir.ArrayType:
		res = DiffArrayByIndex(from, to, Diff)
	case from.Type.IsInt() && to.Type.IsInt():
		res = DiffNumber(from, to)
	case from.Type != to.Type:
		res = append(res, replace(from, to))
	default:
		if summaryStr(from) != summaryStr(to) {
			res = append(res, replace(from, to))
		}
	}
	return res
}

func diffNode(from, to *ir.Node) []Change {
	var res []Change
	if from.Relation != to.Relation || from.Ref != to.Ref {
		res = append(res, Change{Op: Relink, Path: to.Path(), From: from, To: to})
	}
	for _, fc := range from.Children {
		res = append(res, Diff(fc, to.Child(fc.Name))...)
	}
	for _, tc := range to.Children {
		if from.Child(tc.Name) == nil {
			res = append(res, Diff(nil, tc)...)
		}
	}
	return res
}

func replace(from, to *ir.Node) Change {
	return Change{Op: Replace, Path: to.Path(), From: from, To: to}
}

func describe(n *ir.Node) string {
	switch n.Type {
	case ir.NodeType:
		head, _, _ := strings.Cut(encode.MustString(n), "\n")
		return strings.TrimSuffix(head, " {")
	case ir.AttrType:
		return strings.TrimSuffix(encode.MustString(n), ";")
	default:
		return encode.MustString(n)
	}
}

func relation(n *ir.Node) string {
	if n.Relation.HasRef() {
		return n.Relation.String() + " " + n.Ref
	}
	return n.Relation.String()
}
