package hcs

import (
	"github.com/openharmony/go-hcs/debug"
	"github.com/openharmony/go-hcs/ir"
)

// Match reports whether n has the shape of pattern. The name of pattern
// itself is ignored. Every child of a pattern node must be present in n by
// name and match in turn; a pattern node with a relation other than Data
// also requires the same relation and target. Integers match by value
// whatever their width.
func Match(n, pattern *ir.Node) bool {
	if debug.Match() {
		debug.Logf("match type %s at %s\n", pattern.Type, n.Path())
	}
	switch pattern.Type {
	case ir.NodeType:
		return matchNode(n, pattern)
	case ir.AttrType:
		if n.Type != ir.AttrType || n.Value() == nil || pattern.Value() == nil {
			return false
		}
		return Match(n.Value(), pattern.Value())
	case ir.ArrayType:
		return matchArray(n, pattern)
	case ir.StringType:
		return n.Type == ir.StringType && n.String == pattern.String
	case ir.BoolType:
		return n.Type == ir.BoolType && n.Bool == pattern.Bool
	case ir.RefType:
		return n.Type == ir.RefType && n.Ref == pattern.Ref
	case ir.DeleteType:
		return n.Type == ir.DeleteType
	}
	if pattern.Type.IsInt() {
		return n.Type.IsInt() && n.Int == pattern.Int && n.Neg == pattern.Neg
	}
	return false
}

func matchNode(n, pattern *ir.Node) bool {
	if n.Type != ir.NodeType {
		return false
	}
	if pattern.Relation != ir.RelData && (n.Relation != pattern.Relation || n.Ref != pattern.Ref) {
		return false
	}
	for _, pc := range pattern.Children {
		c := n.Child(pc.Name)
		if c == nil || !Match(c, pc) {
			return false
		}
	}
	return true
}

func matchArray(n, pattern *ir.Node) bool {
	if n.Type != ir.ArrayType || len(n.Children) != len(pattern.Children) {
		return false
	}
	for i := range n.Children {
		if !Match(n.Children[i], pattern.Children[i]) {
			return false
		}
	}
	return true
}

// Trim returns a copy of n restricted to the children named in pattern,
// recursively. Attributes are kept whole.
func Trim(pattern, n *ir.Node) *ir.Node {
	if pattern.Type != ir.NodeType || n.Type != ir.NodeType {
		return n.Clone()
	}
	res := ir.NewRelNode(n.Name, n.Relation, n.Ref)
	res.Pos = n.Pos
	for _, c := range n.Children {
		pc := pattern.Child(c.Name)
		if pc == nil {
			continue
		}
		res.Add(Trim(pc, c))
	}
	return res
}

// FindMatches returns the nodes of the resolved tree matching pattern, in
// pre-order. Matching nodes are not searched further.
func (d *Document) FindMatches(pattern *ir.Node) []*ir.Node {
	if d.resolved == nil || pattern == nil {
		return nil
	}
	var res []*ir.Node
	d.resolved.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost || n.Type != ir.NodeType {
			return false, nil
		}
		if Match(n, pattern) {
			res = append(res, n)
			return false, nil
		}
		return true, nil
	})
	return res
}
