package hcs

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/openharmony/go-hcs/ir"
)

// Patch applies an RFC 6902 JSON patch to the JSON form of the per-file
// tree of file (see ir.Node's MarshalJSON) and checks the batch again.
// Integer widths are recomputed from the patched values.
func (d *Document) Patch(file string, patch []byte) error {
	f, err := d.File(file)
	if err != nil {
		return err
	}
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEdit, err)
	}
	root := f.Root
	if root == nil {
		root = ir.NewNode(ir.RootName)
	}
	doc, err := json.Marshal(root)
	if err != nil {
		return err
	}
	out, err := ops.Apply(doc)
	if err != nil {
		return fmt.Errorf("%w: could not patch %s: %w", ErrEdit, f.Name, err)
	}
	res := &ir.Node{}
	if err := json.Unmarshal(out, res); err != nil {
		return fmt.Errorf("%w: patched %s: %w", ErrEdit, f.Name, err)
	}
	if res.Type != ir.NodeType || res.Name != ir.RootName {
		return fmt.Errorf("%w: patched %s: top node must be %s", ErrRootEdit, f.Name, ir.RootName)
	}
	normalize(res)
	f.Root = res
	f.dirty = true
	d.log.Debug("patch", "file", f.Name, "ops", len(ops))
	return d.Check()
}

func normalize(root *ir.Node) {
	_ = root.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return false, nil
		}
		switch {
		case n.Type == ir.ArrayType:
			for _, e := range n.Children {
				if e.Type.IsInt() {
					e.Type = ir.FitInt(e.Int, e.Neg)
				}
			}
			n.Widen()
			return false, nil
		case n.Type.IsInt():
			n.Type = ir.FitInt(n.Int, n.Neg)
		}
		return true, nil
	})
}
