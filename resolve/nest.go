package resolve

import "github.com/openharmony/go-hcs/ir"

// CheckNesting flags copies whose target was itself still a copy when they
// were expanded, and copies that could not be expanded at all.
func (r *Resolver) CheckNesting(root *ir.Node) {
	_ = root.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost || n.Type != ir.NodeType {
			return false, nil
		}
		switch {
		case n.NestedCopy:
			r.fail(n, ErrNestedRelation, "nested copy not permitted")
		case n.Relation == ir.RelCopy && n.Diagnostic == "":
			r.fail(n, ErrNestedRelation, "nested copy not permitted")
		}
		return true, nil
	})
}
