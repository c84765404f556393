package resolve

import (
	"regexp"
	"slices"

	"github.com/openharmony/go-hcs/ir"
)

var nameFormat = regexp.MustCompile(`^[A-Za-z_][A-Za-z_0-9]*$`)

// ValidName reports whether name may name a node or attribute.
func ValidName(name string) bool {
	return nameFormat.MatchString(name)
}

type inheritor struct {
	r *Resolver
	// templates being instantiated along the current walk
	stack []*ir.Node
}

// ExpandInherit instantiates inherit nodes, parents before children, then
// removes every template from the tree.
func (r *Resolver) ExpandInherit(root *ir.Node) {
	h := &inheritor{r: r}
	h.walk(root)
	stripTemplates(root)
}

func (h *inheritor) walk(n *ir.Node) {
	if n.Type != ir.NodeType && n.Type != ir.AttrType {
		return
	}
	if !ValidName(n.Name) {
		h.r.fail(n, ErrNameFormat, "invalid name '"+n.Name+"'")
	}
	if n.Type == ir.AttrType {
		return
	}
	if n.Relation == ir.RelInherit {
		if t := h.instantiate(n); t != nil {
			h.stack = append(h.stack, t)
			defer func() { h.stack = h.stack[:len(h.stack)-1] }()
		}
	}
	for _, c := range slices.Clone(n.Children) {
		h.walk(c)
	}
}

func (h *inheritor) instantiate(n *ir.Node) *ir.Node {
	if h.r.badInherit[n] {
		return nil
	}
	t := ir.Lookup(n, n.Ref)
	switch {
	case t == nil:
		h.r.fail(n, ErrUnresolvedTarget, "inherit target not found")
		return nil
	case t.Type != ir.NodeType:
		h.r.fail(n, ErrUnresolvedTarget, "inherit target is an attribute")
		return nil
	case ir.IsAncestor(n, t) || slices.Contains(h.stack, t):
		h.r.fail(n, ErrCycle, "circular inherit")
		return nil
	}
	if msg := notTemplate(t.Relation); msg != "" {
		h.r.fail(n, ErrUnresolvedTarget, msg)
		return nil
	}
	h.r.log.Debug("inherit", "node", n.Path(), "template", t.Path())
	own := n.Children
	n.Children = make([]*ir.Node, 0, len(t.Children)+len(own))
	for _, c := range t.Children {
		n.Add(c.Clone())
	}
	h.r.overlayChildren(n, own)
	n.Relation = ir.RelData
	n.Ref = ""
	return t
}

// notTemplate returns the diagnostic for an inherit target with relation
// rel, or "" for a template.
func notTemplate(rel ir.Relation) string {
	switch rel {
	case ir.RelTemplate:
		return ""
	case ir.RelData:
		return "inherit target is a data node, not a template"
	case ir.RelCopy:
		return "inherit target is a copy node, not a template"
	case ir.RelReference:
		return "inherit target is a reference node, not a template"
	case ir.RelDelete:
		return "inherit target is a delete node, not a template"
	case ir.RelInherit:
		return "inherit target is an inherit node, not a template"
	}
	return "inherit target is not a template"
}

// checkInheritTargets flags inherit nodes whose target is a copy,
// reference, delete or inherit node. Data targets are left to
// ExpandInherit.
func (r *Resolver) checkInheritTargets(root *ir.Node) {
	_ = root.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost || n.Type != ir.NodeType {
			return false, nil
		}
		if n.Relation != ir.RelInherit {
			return true, nil
		}
		t := ir.Lookup(n, n.Ref)
		if t == nil || t.Type != ir.NodeType {
			return true, nil
		}
		switch t.Relation {
		case ir.RelCopy, ir.RelReference, ir.RelDelete, ir.RelInherit:
			r.fail(n, ErrUnresolvedTarget, notTemplate(t.Relation))
			r.badInherit[n] = true
		}
		return true, nil
	})
}

func stripTemplates(root *ir.Node) {
	_ = root.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return false, nil
		}
		if n.Type == ir.NodeType && n.Relation == ir.RelTemplate {
			n.Detach()
			return false, nil
		}
		return n.Type == ir.NodeType, nil
	})
}
