package main

import (
	"context"
	"errors"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/openharmony/go-hcs/parse"
	"github.com/openharmony/go-hcs/resolve"
	"github.com/openharmony/go-hcs/token"
)

func (s *Server) publish(ctx context.Context, files []*openFile) {
	s.notify(ctx, diagnosticParams(files))
}

func (s *Server) notify(ctx context.Context, params []*protocol.PublishDiagnosticsParams) {
	if s.conn == nil {
		return
	}
	for _, p := range params {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, p)
	}
}

func diagnosticParams(files []*openFile) []*protocol.PublishDiagnosticsParams {
	res := make([]*protocol.PublishDiagnosticsParams, 0, len(files))
	for _, f := range files {
		res = append(res, &protocol.PublishDiagnosticsParams{
			URI:         f.uri,
			Diagnostics: validate(f),
		})
	}
	return res
}

// closeParams closes u and returns the diagnostics to publish: an empty
// list for u, then those of the open files that were reloaded.
func (s *Server) closeParams(ctx context.Context, u protocol.DocumentURI) []*protocol.PublishDiagnosticsParams {
	res := []*protocol.PublishDiagnosticsParams{{URI: u, Diagnostics: []protocol.Diagnostic{}}}
	return append(res, diagnosticParams(s.ws.remove(ctx, u))...)
}

// validate collects the diagnostics of the batch rooted at f that belong
// to f itself. Errors with no position in f, such as a failed include, go
// on the first line.
func validate(f *openFile) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	seen := map[*resolve.NodeError]bool{}
	for _, e := range f.doc.Report().Errors() {
		if e.Pos.File != f.name {
			continue
		}
		seen[e] = true
		diagnostics = append(diagnostics, diagnostic(f.content, e.Pos, e.Msg))
	}
	err := f.doc.LastError()
	if err == nil {
		return diagnostics
	}
	var (
		ne *resolve.NodeError
		le *token.LexError
		se *parse.SyntaxError
	)
	switch {
	case errors.As(err, &ne) && seen[ne]:
	case errors.As(err, &le) && le.Pos.File == f.name:
		diagnostics = append(diagnostics, diagnostic(f.content, le.Pos, le.Error()))
	case errors.As(err, &se) && se.Pos.File == f.name:
		diagnostics = append(diagnostics, diagnostic(f.content, se.Pos, se.Error()))
	default:
		diagnostics = append(diagnostics, diagnostic(f.content, token.Pos{}, err.Error()))
	}
	return diagnostics
}

// diagnostic covers the whole source line of pos.
func diagnostic(content string, pos token.Pos, msg string) protocol.Diagnostic {
	line := 0
	if pos.IsValid() {
		line = pos.Line - 1
	}
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: uint32(line)},
			End:   protocol.Position{Line: uint32(line), Character: uint32(len([]rune(lineAt(content, line))))},
		},
		Severity: protocol.DiagnosticSeverityError,
		Message:  msg,
		Source:   "hcs",
	}
}

func lineAt(content string, line int) string {
	lines := strings.Split(content, "\n")
	if line < 0 || line >= len(lines) {
		return ""
	}
	return strings.TrimSuffix(lines[line], "\r")
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.publish(ctx, s.ws.put(ctx, params.TextDocument.URI, params.TextDocument.Text, params.TextDocument.Version))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	f := s.ws.get(params.TextDocument.URI)
	if f == nil {
		return nil
	}
	content := f.content
	for _, change := range params.ContentChanges {
		content = applyChange(content, change)
	}
	s.publish(ctx, s.ws.put(ctx, params.TextDocument.URI, content, params.TextDocument.Version))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.notify(ctx, s.closeParams(ctx, params.TextDocument.URI))
	return nil
}

func (s *Server) DidChangeWatchedFiles(ctx context.Context, params *protocol.DidChangeWatchedFilesParams) error {
	names := make([]string, 0, len(params.Changes))
	for _, c := range params.Changes {
		names = append(names, fileName(c.URI))
	}
	s.publish(ctx, s.ws.changed(ctx, names))
	return nil
}

// applyChange applies one content change; a zero range replaces the whole
// text.
func applyChange(content string, change protocol.TextDocumentContentChangeEvent) string {
	r := change.Range
	if r.Start.Line == 0 && r.Start.Character == 0 && r.End.Line == 0 && r.End.Character == 0 {
		return change.Text
	}
	runes := []rune(content)
	start := lineColToOffset(content, int(r.Start.Line), int(r.Start.Character))
	end := lineColToOffset(content, int(r.End.Line), int(r.End.Character))
	if start > end || end > len(runes) {
		return content
	}
	return string(runes[:start]) + change.Text + string(runes[end:])
}

// lineColToOffset returns the rune offset of line and col in content.
func lineColToOffset(content string, line, col int) int {
	currentLine := 0
	currentCol := 0
	i := 0
	for _, r := range content {
		if currentLine == line && currentCol == col {
			return i
		}
		if r == '\n' {
			currentLine++
			currentCol = 0
		} else {
			currentCol++
		}
		i++
	}
	return i
}
