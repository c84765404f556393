package resolve

import (
	"github.com/openharmony/go-hcs/ir"
)

// Merge merges files, in order, into a new root. Later files override
// relations, targets and attribute values of earlier ones. The result
// shares no nodes with files; every merged node's Origin is the file node it
// last took its content from.
func (r *Resolver) Merge(files []*ir.Node) *ir.Node {
	root := ir.NewNode(ir.RootName)
	for _, f := range files {
		if f == nil {
			continue
		}
		r.log.Debug("merge", "file", f.Pos.File)
		r.merge(root, f)
	}
	return root
}

func (r *Resolver) merge(dst, src *ir.Node) {
	dst.Origin = src
	dst.Pos = src.Pos
	switch src.Type {
	case ir.NodeType:
		dst.Relation = src.Relation
		if src.Relation.HasRef() {
			dst.Ref = src.Ref
		}
		for _, sc := range src.Children {
			dc := dst.Child(sc.Name)
			switch {
			case dc == nil:
				dst.Add(adopt(sc))
			case dc.Type != sc.Type:
				r.conflict(dc, sc)
			default:
				r.merge(dc, sc)
			}
		}
	case ir.AttrType:
		if v := src.Value(); v != nil {
			dst.SetValue(adopt(v))
		}
	}
}

// adopt deep copies a file node, linking every copy to its original.
func adopt(src *ir.Node) *ir.Node {
	c := src.Clone()
	link(c, src)
	return c
}

func link(c, src *ir.Node) {
	c.Origin = src
	for i := range c.Children {
		link(c.Children[i], src.Children[i])
	}
}

// overlay merges src, a node of the tree being expanded, over dst. Unlike
// merge it moves src's subtree instead of copying it.
func (r *Resolver) overlay(dst, src *ir.Node) {
	if src.Origin != nil {
		dst.Origin = src.Origin
	}
	if src.Pos.IsValid() {
		dst.Pos = src.Pos
	}
	switch src.Type {
	case ir.NodeType:
		dst.Relation = src.Relation
		dst.Ref = src.Ref
		for _, sc := range append([]*ir.Node(nil), src.Children...) {
			dc := dst.Child(sc.Name)
			switch {
			case dc == nil:
				sc.Detach()
				dst.Add(sc)
			case dc.Type != sc.Type:
				r.conflict(dc, sc)
			default:
				r.overlay(dc, sc)
			}
		}
	case ir.AttrType:
		if v := src.Value(); v != nil {
			v.Detach()
			dst.SetValue(v)
		}
	}
}

// conflict reports got, whose kind differs from have. have stays in the
// tree being built and carries the same diagnostic.
func (r *Resolver) conflict(have, got *ir.Node) {
	msg := typeConflict(have, got)
	r.fail(got, ErrTypeConflict, msg)
	have.Diagnostic = msg
}

func typeConflict(have, got *ir.Node) string {
	return "type conflict: " + quote(got.Name) + " is " + kindName(got) + ", already defined as " + kindName(have)
}

func kindName(n *ir.Node) string {
	if n.Type == ir.NodeType {
		return "a node"
	}
	return "an attribute"
}
