package main

import (
	"context"
	"fmt"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/openharmony/go-hcs/encode"
	"github.com/openharmony/go-hcs/ir"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	f := s.ws.get(params.TextDocument.URI)
	if f == nil {
		return nil, nil
	}
	n := nodeAt(f, int(params.Position.Line)+1)
	if n == nil {
		return nil, nil
	}
	if r := f.doc.Resolved(); r != nil {
		if rn := r.Get(n.Path()); rn != nil {
			n = rn
		}
	}
	hoverText := buildHoverText(n)
	if hoverText == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
	}, nil
}

// nodeAt finds the deepest node or attribute of f's own tree starting on
// line, counted from 1.
func nodeAt(f *openFile, line int) *ir.Node {
	pf, err := f.doc.File(f.name)
	if err != nil || pf.Root == nil {
		return nil
	}
	var best *ir.Node
	pf.Root.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return false, nil
		}
		if n.Pos.Line == line && (n.Type == ir.NodeType || n.Type == ir.AttrType) {
			best = n
		}
		return n.Type == ir.NodeType && n.Pos.Line <= line, nil
	})
	return best
}

func buildHoverText(n *ir.Node) string {
	var parts []string
	parts = append(parts, fmt.Sprintf("**Path:** `%s`", n.Path()))
	switch n.Type {
	case ir.NodeType:
		kind := strings.ToLower(n.Relation.String()) + " node"
		if n.Relation.HasRef() {
			kind += fmt.Sprintf(" of `%s`", n.Ref)
		}
		parts = append(parts, "**Kind:** "+kind)
		if len(n.Children) > 0 {
			parts = append(parts, fmt.Sprintf("**Children:** %d", len(n.Children)))
		}
	case ir.AttrType:
		v := n.Value()
		if v == nil {
			break
		}
		parts = append(parts, "**Type:** "+strings.ToLower(v.Type.String()))
		if s := valueInfo(n); s != "" {
			parts = append(parts, fmt.Sprintf("**Value:** `%s`", s))
		}
		if v.Target != nil {
			parts = append(parts, fmt.Sprintf("**Target:** `%s`", v.Target.Path()))
		}
	}
	if n.Diagnostic != "" {
		parts = append(parts, "**Error:** "+n.Diagnostic)
	}
	return strings.Join(parts, "\n\n")
}

func valueInfo(attr *ir.Node) string {
	s := strings.TrimSpace(encode.MustString(attr))
	_, val, ok := strings.Cut(s, " = ")
	if !ok {
		return ""
	}
	val = strings.TrimSuffix(val, ";")
	if len(val) > 50 {
		val = val[:50] + "..."
	}
	return val
}
