package resolve

import (
	"github.com/openharmony/go-hcs/ir"
)

// RedefineCheck flags every child whose name was already used by an earlier
// sibling, throughout the tree. It reports whether the tree is free of
// redefinitions.
func (r *Resolver) RedefineCheck(root *ir.Node) bool {
	ok := true
	_ = root.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost || n.Type != ir.NodeType {
			return false, nil
		}
		seen := make(map[string]bool, len(n.Children))
		for _, c := range n.Children {
			if seen[c.Name] {
				r.fail(c, ErrRedefinition, "redefinition of "+quote(c.Name))
				ok = false
				continue
			}
			seen[c.Name] = true
		}
		return true, nil
	})
	return ok
}

func quote(s string) string {
	return "'" + s + "'"
}
