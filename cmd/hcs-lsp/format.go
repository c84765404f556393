package main

import (
	"bytes"
	"context"

	"go.lsp.dev/protocol"

	"github.com/openharmony/go-hcs/encode"
	"github.com/openharmony/go-hcs/parse"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	f := s.ws.get(params.TextDocument.URI)
	if f == nil {
		return nil, nil
	}
	return formatEdits(f.name, f.content), nil
}

// formatEdits returns a single edit replacing the whole text with its
// canonical form, no edits when it is already canonical, and nil when it
// does not parse.
func formatEdits(name, content string) []protocol.TextEdit {
	pf, err := parse.ParseFile(name, []byte(content))
	if err != nil {
		return nil
	}
	var buf bytes.Buffer
	if err := encode.EncodeFile(pf.Tree.ToIR(), pf.Includes, name, &buf); err != nil {
		return nil
	}
	formatted := buf.String()
	if formatted == content {
		return []protocol.TextEdit{}
	}
	lines := bytes.Count([]byte(content), []byte("\n"))
	if len(content) > 0 && content[len(content)-1] != '\n' {
		lines++
	}
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End: protocol.Position{
					Line:      uint32(lines),
					Character: 0,
				},
			},
			NewText: formatted,
		},
	}
}
