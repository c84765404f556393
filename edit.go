package hcs

import (
	"fmt"
	"strconv"

	"github.com/openharmony/go-hcs/ir"
	"github.com/openharmony/go-hcs/resolve"
	"github.com/openharmony/go-hcs/token"
)

// Node returns the node at path in the per-file tree of file. An empty path
// or "root" addresses the file's root node.
func (d *Document) Node(file, path string) (*File, *ir.Node, error) {
	f, err := d.File(file)
	if err != nil {
		return nil, nil, err
	}
	if f.Root == nil {
		return f, nil, fmt.Errorf("%w: %s is empty", ErrNoSuchNode, f.Name)
	}
	n := f.Root.Get(path)
	if n == nil {
		return f, nil, fmt.Errorf("%w: %s in %s", ErrNoSuchNode, path, f.Name)
	}
	return f, n, nil
}

// edit runs fn on the node at path then checks the batch again. The error
// of the check, a refused batch, is returned after a successful edit.
func (d *Document) edit(file, path string, fn func(f *File, n *ir.Node) error) error {
	f, n, err := d.Node(file, path)
	if err != nil {
		return err
	}
	if err := fn(f, n); err != nil {
		return err
	}
	f.dirty = true
	d.log.Debug("edit", "file", f.Name, "path", path)
	return d.Check()
}

func (d *Document) Rename(file, path, name string) error {
	if !resolve.ValidName(name) {
		return fmt.Errorf("%w: invalid name %q", ErrEdit, name)
	}
	return d.edit(file, path, func(_ *File, n *ir.Node) error {
		if n.Parent == nil {
			return ErrRootEdit
		}
		if !n.IsNode() && !n.IsAttr() {
			return fmt.Errorf("%w: %s has no name", ErrEdit, n.Path())
		}
		n.Name = name
		return nil
	})
}

// SetRelation changes the relation of a node. Relations with a target get
// the placeholder ir.UnknownRef when the node had none.
func (d *Document) SetRelation(file, path string, rel ir.Relation) error {
	return d.edit(file, path, func(_ *File, n *ir.Node) error {
		if n.Parent == nil {
			return ErrRootEdit
		}
		if !n.IsNode() {
			return fmt.Errorf("%w: %s is not a node", ErrEdit, n.Path())
		}
		n.Relation = rel
		switch {
		case !rel.HasRef():
			n.Ref = ""
		case n.Ref == "":
			n.Ref = ir.UnknownRef
		}
		return nil
	})
}

// AddAttribute adds an attribute holding Int8 0 to the node at path, named
// attr_N with the smallest N not already used there.
func (d *Document) AddAttribute(file, path string) (*ir.Node, error) {
	var res *ir.Node
	err := d.edit(file, path, func(f *File, n *ir.Node) error {
		if !n.IsNode() {
			return fmt.Errorf("%w: %s is not a node", ErrEdit, n.Path())
		}
		res = n.Add(ir.NewAttr(freeName(n, "attr_"), ir.FromInt(0, 10)))
		res.Pos = token.Pos{File: f.Name}
		return nil
	})
	return res, err
}

// AddNode adds an empty data node named node_N to the node at path.
func (d *Document) AddNode(file, path string) (*ir.Node, error) {
	var res *ir.Node
	err := d.edit(file, path, func(f *File, n *ir.Node) error {
		if !n.IsNode() {
			return fmt.Errorf("%w: %s is not a node", ErrEdit, n.Path())
		}
		res = n.Add(ir.NewNode(freeName(n, "node_")))
		res.Pos = token.Pos{File: f.Name}
		return nil
	})
	return res, err
}

func freeName(n *ir.Node, prefix string) string {
	for i := 1; ; i++ {
		name := prefix + strconv.Itoa(i)
		if n.Child(name) == nil {
			return name
		}
	}
}

func (d *Document) Delete(file, path string) error {
	return d.edit(file, path, func(_ *File, n *ir.Node) error {
		if n.Parent == nil {
			return ErrRootEdit
		}
		if !n.IsNode() && !n.IsAttr() {
			return fmt.Errorf("%w: %s cannot be deleted", ErrEdit, n.Path())
		}
		n.Detach()
		return nil
	})
}

// SetTarget changes the target path of a copy, reference or inherit node,
// or of a reference attribute.
func (d *Document) SetTarget(file, path, target string) error {
	return d.edit(file, path, func(_ *File, n *ir.Node) error {
		switch {
		case n.IsNode() && n.Relation.HasRef():
			n.Ref = target
		case n.IsAttr() && n.Value() != nil && n.Value().Type == ir.RefType:
			n.Value().Ref = target
		default:
			return fmt.Errorf("%w: %s has no target", ErrEdit, n.Path())
		}
		return nil
	})
}

// SetValue replaces the value of an attribute. v must be a leaf or an
// array; arrays are widened to their widest element.
func (d *Document) SetValue(file, path string, v *ir.Node) error {
	if v == nil || !(v.Type.IsLeaf() || v.Type == ir.ArrayType) {
		return fmt.Errorf("%w: not an attribute value", ErrEdit)
	}
	return d.edit(file, path, func(_ *File, n *ir.Node) error {
		if !n.IsAttr() {
			return fmt.Errorf("%w: %s is not an attribute", ErrEdit, n.Path())
		}
		if v.Type == ir.ArrayType {
			v.Widen()
		}
		n.SetValue(v)
		return nil
	})
}

// InheritCandidates returns the names of the templates the node at path
// may inherit: templates among its siblings and, when its parent itself
// inherits a template, the templates declared in that one.
func (d *Document) InheritCandidates(file, path string) ([]string, error) {
	_, n, err := d.Node(file, path)
	if err != nil {
		return nil, err
	}
	p := n.Parent
	if p == nil {
		return nil, nil
	}
	var res []string
	seen := map[string]bool{}
	add := func(from *ir.Node) {
		for _, c := range from.Children {
			if c.IsNode() && c.Relation == ir.RelTemplate && c != n && !seen[c.Name] {
				seen[c.Name] = true
				res = append(res, c.Name)
			}
		}
	}
	add(p)
	if p.Relation == ir.RelInherit {
		if t := ir.Lookup(p, p.Ref); t != nil && t.IsNode() && t != p {
			add(t)
		}
	}
	return res, nil
}
