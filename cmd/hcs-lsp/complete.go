package main

import (
	"context"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/openharmony/go-hcs/ir"
)

// Completion offers the templates an inherit node on the cursor line can
// name.
func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	f := s.ws.get(params.TextDocument.URI)
	if f == nil {
		return nil, nil
	}
	items := inheritItems(f, int(params.Position.Line))
	if items == nil {
		return nil, nil
	}
	return &protocol.CompletionList{Items: items}, nil
}

// inheritItems lists the templates visible from the node declared on line,
// counted from 0, when that line has an inherit marker.
func inheritItems(f *openFile, line int) []protocol.CompletionItem {
	if !strings.Contains(lineAt(f.content, line), "::") {
		return nil
	}
	n := nodeAt(f, line+1)
	if n == nil || n.Type != ir.NodeType {
		return nil
	}
	names, err := f.doc.InheritCandidates(f.name, n.Path())
	if err != nil {
		return nil
	}
	items := make([]protocol.CompletionItem, 0, len(names))
	for _, name := range names {
		items = append(items, protocol.CompletionItem{
			Label:  name,
			Kind:   protocol.CompletionItemKindClass,
			Detail: "template",
		})
	}
	return items
}
