package ast

import (
	"github.com/openharmony/go-hcs/ir"
)

// ToIR converts the tree into the resolved model. An empty tree converts to
// nil.
func (t *Tree) ToIR() *ir.Node {
	if t.root == Nil {
		return nil
	}
	return t.convert(t.root)
}

func (t *Tree) convert(id NodeID) *ir.Node {
	n := t.At(id)
	var res *ir.Node
	switch n.Kind {
	case ConfigNode:
		res = ir.NewRelNode(n.Name, n.Relation, n.Ref)
		for c := range t.Children(id) {
			res.Add(t.convert(c))
		}
	case ConfigTerm:
		res = ir.NewAttr(n.Name, nil)
		for c := range t.Children(id) {
			res.Add(t.convert(c))
		}
	case Array:
		elems := make([]*ir.Node, 0, t.NumChildren(id))
		for c := range t.Children(id) {
			elems = append(elems, t.convert(c))
		}
		res = ir.FromArray(elems...)
	case Integer:
		res = &ir.Node{
			Type:  ir.FitInt(n.Value, n.Neg),
			Int:   n.Value,
			Neg:   n.Neg,
			Radix: n.Radix,
		}
	case String:
		res = ir.FromString(n.Text)
	case Bool:
		res = ir.FromBool(n.Bool)
	case NodeRef:
		res = ir.FromRef(n.Ref)
	case Delete:
		res = ir.FromDelete()
	}
	res.Pos = n.Pos
	return res
}
