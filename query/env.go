package query

import (
	"strings"

	"github.com/openharmony/go-hcs/encode"
	"github.com/openharmony/go-hcs/ir"
)

// Env is what a query sees of the node it is evaluated on.
type Env struct {
	Name       string `expr:"name"`
	Path       string `expr:"path"`
	Kind       string `expr:"kind"`
	Relation   string `expr:"relation"`
	Ref        string `expr:"ref"`
	ValType    string `expr:"valtype"`
	Value      any    `expr:"value"`
	Depth      int    `expr:"depth"`
	Children   int    `expr:"children"`
	File       string `expr:"file"`
	Line       int    `expr:"line"`
	Diagnostic string `expr:"diagnostic"`

	node *ir.Node
}

// NewEnv describes n. Kind is "node" or "attribute"; for attributes ValType
// and Value describe the value, converted as by encode.ToData.
func NewEnv(n *ir.Node) Env {
	pos := n.Position()
	env := Env{
		Name:       n.Name,
		Path:       n.Path(),
		Depth:      n.Depth(),
		Children:   len(n.Children),
		File:       pos.File,
		Line:       pos.Line,
		Diagnostic: n.Diagnostic,
		node:       n,
	}
	switch n.Type {
	case ir.NodeType:
		env.Kind = "node"
		env.Relation = strings.ToLower(n.Relation.String())
		env.Ref = n.Ref
	case ir.AttrType:
		env.Kind = "attribute"
		env.Children = 0
		if v := n.Value(); v != nil {
			env.ValType = strings.ToLower(v.Type.String())
			env.Value, _ = encode.ToData(v)
			env.Ref = v.Ref
		}
	}
	return env
}

// Has reports whether the node has a child named name.
func (e Env) Has(name string) bool {
	return e.node.Type == ir.NodeType && e.node.Child(name) != nil
}

// Under reports whether the node is at or below path.
func (e Env) Under(path string) bool {
	target := e.node.Root().Get(path)
	return target != nil && ir.IsAncestor(e.node, target)
}

// Get returns the value of the attribute at the dotted path from the root,
// or nil.
func (e Env) Get(path string) any {
	n := e.node.Root().Get(path)
	if n == nil || n.Type != ir.AttrType || n.Value() == nil {
		return nil
	}
	v, _ := encode.ToData(n.Value())
	return v
}
