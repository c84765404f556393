package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

func docURI(t *testing.T, dir, name string) protocol.DocumentURI {
	t.Helper()
	return protocol.DocumentURI(uri.File(filepath.Join(dir, name)))
}

func testWorkspace(t *testing.T) (*workspace, string) {
	t.Helper()
	dir := t.TempDir()
	base := "root {\n    template dev {\n        id = 0;\n    }\n    a = 1;\n}\n"
	if err := os.WriteFile(filepath.Join(dir, "base.hcs"), []byte(base), 0644); err != nil {
		t.Fatal(err)
	}
	return newWorkspace(slog.New(slog.DiscardHandler)), dir
}

const mainSrc = `#include "base.hcs"
root {
    b : missing {
    }
    c :: dev {
        id = 2;
    }
}
`

func TestValidate(t *testing.T) {
	ws, dir := testWorkspace(t)
	ctx := context.Background()
	files := ws.put(ctx, docURI(t, dir, "main.hcs"), mainSrc, 1)
	if len(files) != 1 {
		t.Fatalf("reloaded %d files", len(files))
	}
	got := validate(files[0])
	if len(got) != 1 {
		t.Fatalf("got %v", got)
	}
	if got[0].Range.Start.Line != 2 || got[0].Message != "copy target not found" {
		t.Errorf("got %+v", got[0])
	}
}

func TestBufferShadowsDisk(t *testing.T) {
	ws, dir := testWorkspace(t)
	ctx := context.Background()
	ws.put(ctx, docURI(t, dir, "main.hcs"), mainSrc, 1)
	files := ws.put(ctx, docURI(t, dir, "base.hcs"), "root { missing { } }\n", 1)
	if len(files) != 2 {
		t.Fatalf("reloaded %d files, want 2", len(files))
	}
	m := ws.get(docURI(t, dir, "main.hcs"))
	if d := validate(m); len(d) != 1 || d[0].Range.Start.Line != 4 {
		t.Errorf("got %v", d)
	}
	ws.remove(ctx, docURI(t, dir, "base.hcs"))
	if d := validate(m); len(d) != 1 || d[0].Range.Start.Line != 2 {
		t.Errorf("after close got %v", d)
	}
}

func TestSyntaxDiagnostic(t *testing.T) {
	ws, dir := testWorkspace(t)
	files := ws.put(context.Background(), docURI(t, dir, "bad.hcs"), "root {\n    a = ;\n}\n", 1)
	got := validate(files[0])
	if len(got) != 1 || got[0].Range.Start.Line != 1 {
		t.Errorf("got %v", got)
	}
}

func TestHoverAndCompletion(t *testing.T) {
	ws, dir := testWorkspace(t)
	u := docURI(t, dir, "main.hcs")
	ws.put(context.Background(), u, mainSrc, 1)
	f := ws.get(u)
	n := nodeAt(f, 6)
	if n == nil || n.Path() != "root.c.id" {
		t.Fatalf("got %v", n)
	}
	want := "**Path:** `root.c.id`\n\n**Type:** int8\n\n**Value:** `2`"
	if diff := cmp.Diff(want, buildHoverText(n)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	items := inheritItems(f, 4)
	if len(items) != 0 {
		t.Errorf("templates are not declared in main.hcs, got %v", items)
	}
	if inheritItems(f, 2) != nil {
		t.Error("no inherit marker on line 2")
	}
}

func TestFormatEdits(t *testing.T) {
	if got := formatEdits("/f.hcs", "root {\n    a = 1;\n}\n"); len(got) != 0 || got == nil {
		t.Errorf("canonical text got %v", got)
	}
	got := formatEdits("/f.hcs", "root { a = 1; }")
	if len(got) != 1 || got[0].NewText != "root {\n    a = 1;\n}\n" {
		t.Errorf("got %v", got)
	}
	if formatEdits("/f.hcs", "root {") != nil {
		t.Error("unparsable text has no edits")
	}
}

func TestApplyChange(t *testing.T) {
	content := "root {\n    a = 1;\n}\n"
	change := protocol.TextDocumentContentChangeEvent{
		Range: protocol.Range{
			Start: protocol.Position{Line: 1, Character: 8},
			End:   protocol.Position{Line: 1, Character: 9},
		},
		Text: "22",
	}
	if got := applyChange(content, change); got != "root {\n    a = 22;\n}\n" {
		t.Errorf("got %q", got)
	}
	if got := applyChange(content, protocol.TextDocumentContentChangeEvent{Text: "x"}); got != "x" {
		t.Errorf("got %q", got)
	}
}

func TestCloseClearsDiagnostics(t *testing.T) {
	ws, dir := testWorkspace(t)
	s := &Server{ws: ws, log: ws.log}
	ctx := context.Background()
	u := docURI(t, dir, "main.hcs")
	ws.put(ctx, u, mainSrc, 1)
	params := s.closeParams(ctx, u)
	if len(params) != 1 {
		t.Fatalf("got %d publishes", len(params))
	}
	if params[0].URI != u || params[0].Diagnostics == nil || len(params[0].Diagnostics) != 0 {
		t.Errorf("got %+v", params[0])
	}
	if ws.get(u) != nil {
		t.Error("closed file still open")
	}
}
