package resolve

import (
	"slices"

	"github.com/openharmony/go-hcs/ir"
)

type expander struct {
	r    *Resolver
	done map[*ir.Node]bool
}

// ExpandNodes expands deletes, copies and references below root, children
// before parents. Inherit targets are checked first, while copies, references
// and deletes still carry their relation.
func (r *Resolver) ExpandNodes(root *ir.Node) {
	r.checkInheritTargets(root)
	x := &expander{r: r, done: map[*ir.Node]bool{}}
	x.walk(root)
}

// walk visits the subtree of n in post-order. A child removed while it is
// being visited does not advance the iteration, and a node is expanded at
// most once however often it is walked.
func (x *expander) walk(n *ir.Node) {
	for i := 0; i < len(n.Children); {
		c := n.Children[i]
		if c.Type == ir.NodeType || c.Type == ir.AttrType {
			x.walk(c)
		}
		if i < len(n.Children) && n.Children[i] == c {
			i++
		}
	}
	if x.done[n] {
		return
	}
	x.done[n] = true
	x.expand(n)
}

func (x *expander) expand(n *ir.Node) {
	switch n.Type {
	case ir.AttrType:
		v := n.Value()
		if v == nil {
			return
		}
		switch v.Type {
		case ir.DeleteType:
			n.Detach()
		case ir.RefType:
			x.attrRef(n, v)
		}
	case ir.NodeType:
		switch n.Relation {
		case ir.RelDelete:
			n.Detach()
		case ir.RelCopy:
			x.copy(n)
		case ir.RelReference:
			x.reference(n)
		}
	}
}

func (x *expander) target(n *ir.Node, what string) *ir.Node {
	t := ir.Lookup(n, n.Ref)
	switch {
	case t == nil:
		x.r.fail(n, ErrUnresolvedTarget, what+" target not found")
	case t.Type != ir.NodeType:
		x.r.fail(n, ErrUnresolvedTarget, what+" target is not a node")
	case t.Relation == ir.RelTemplate:
		x.r.fail(n, ErrUnresolvedTarget, what+" target cannot be a template node")
	case t.Relation == ir.RelDelete:
		x.r.fail(n, ErrUnresolvedTarget, what+" target cannot be a delete node")
	case ir.IsAncestor(n, t):
		x.r.fail(n, ErrCycle, "circular "+what)
	default:
		return t
	}
	return nil
}

func (x *expander) copy(n *ir.Node) {
	t := x.target(n, "copy")
	if t == nil {
		return
	}
	x.r.log.Debug("copy", "node", n.Path(), "target", t.Path())
	nested := t.Relation == ir.RelCopy
	own := n.Children
	n.Children = make([]*ir.Node, 0, len(t.Children)+len(own))
	for _, c := range t.Children {
		n.Add(c.Clone())
	}
	x.r.overlayChildren(n, own)
	n.Relation = ir.RelData
	n.Ref = ""
	n.NestedCopy = nested
	for _, c := range slices.Clone(n.Children) {
		if c.Parent == n {
			x.walk(c)
		}
	}
}

func (x *expander) reference(n *ir.Node) {
	t := x.target(n, "reference")
	if t == nil {
		return
	}
	switch {
	case t.Relation == ir.RelReference:
		x.r.fail(n, ErrUnresolvedTarget, "reference target cannot be a reference node")
		return
	case ir.IsAncestor(t, n):
		x.r.fail(n, ErrCycle, "circular reference")
		return
	}
	x.r.log.Debug("reference", "node", n.Path(), "target", t.Path())
	own := n.Children
	n.Children = nil
	x.r.overlayChildren(t, own)
	n.Detach()
	x.walk(t)
}

func (x *expander) attrRef(attr, v *ir.Node) {
	v.Target = nil
	t := ir.Lookup(attr, v.Ref)
	switch {
	case t == nil:
		x.r.fail(attr, ErrUnresolvedTarget, "reference target not found")
	case t.Type != ir.NodeType:
		x.r.fail(attr, ErrUnresolvedTarget, "reference target is an attribute")
	case t.Relation == ir.RelReference:
		x.r.fail(attr, ErrUnresolvedTarget, "reference target cannot be a reference node")
	case t.Relation == ir.RelTemplate:
		x.r.fail(attr, ErrUnresolvedTarget, "reference target cannot be a template node")
	case t.Relation == ir.RelDelete:
		x.r.fail(attr, ErrUnresolvedTarget, "reference target cannot be a delete node")
	default:
		v.Target = t
	}
}

// overlayChildren merges own, the former children of some node, over the
// children dst has now.
func (r *Resolver) overlayChildren(dst *ir.Node, own []*ir.Node) {
	for _, oc := range own {
		dc := dst.Child(oc.Name)
		switch {
		case dc == nil:
			oc.Parent = nil
			dst.Add(oc)
		case dc.Type != oc.Type:
			r.conflict(dc, oc)
		default:
			r.overlay(dc, oc)
		}
	}
}
