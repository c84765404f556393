package hcs

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/openharmony/go-hcs/encode"
	"github.com/openharmony/go-hcs/ir"
	"github.com/openharmony/go-hcs/parse"
	"github.com/openharmony/go-hcs/resolve"
	"github.com/openharmony/go-hcs/token"
)

var batch = map[string]string{
	"/r/main.hcs": `#include "a.hcs"
#include "sub/b.hcs"
root {
    m = 1;
    a { x = 2; }
}`,
	"/r/a.hcs": `#include "sub/b.hcs"
root { a { x = 1; y = 1; } }`,
	"/r/sub/b.hcs": `root { b = "b"; }`,
}

const batchResolved = "root {\n    a {\n        x = 2;\n        y = 1;\n    }\n    b = \"b\";\n    m = 1;\n}\n"

func text(t *testing.T, n *ir.Node) string {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(n, buf); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

// load fills the cache up front and parses once.
func load(t *testing.T, files map[string]string, root string) *Document {
	t.Helper()
	d := New(root)
	for name, src := range files {
		d.Cache().Put(name, []byte(src))
	}
	if err := d.Parse(); err != nil {
		t.Fatal(err)
	}
	return d
}

func TestParseDeliver(t *testing.T) {
	d := New("/r/main.hcs")
	err := d.Parse()
	var ue *token.UnavailableError
	if !errors.As(err, &ue) || ue.File != "/r/main.hcs" {
		t.Fatalf("expected main to be unavailable, got %v", err)
	}
	if d.LastError() != nil {
		t.Errorf("unavailable content is not an error: %v", d.LastError())
	}
	err = d.Deliver("/r/main.hcs", []byte(batch["/r/main.hcs"]))
	if !errors.Is(err, token.ErrUnavailable) {
		t.Fatalf("got %v", err)
	}
	if diff := cmp.Diff([]string{"/r/a.hcs", "/r/sub/b.hcs"}, d.Pending()); diff != "" {
		t.Errorf("pending (-want +got):\n%s", diff)
	}
	if d.Resolved() != nil {
		t.Error("nothing should be resolved before the batch is complete")
	}
	if err := d.Deliver("/r/sub/b.hcs", []byte(batch["/r/sub/b.hcs"])); !errors.Is(err, token.ErrUnavailable) {
		t.Fatalf("got %v", err)
	}
	if err := d.Deliver("/r/a.hcs", []byte(batch["/r/a.hcs"])); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"/r/main.hcs", "/r/a.hcs", "/r/sub/b.hcs"}, d.Files()); diff != "" {
		t.Errorf("files (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(batchResolved, text(t, d.Resolved())); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestRefusedBatch(t *testing.T) {
	d := load(t, map[string]string{"/m.hcs": `root { a = 1; }`}, "/m.hcs")
	d.Cache().Put("/m.hcs", []byte(`root { a = 1; a = 2; }`))
	err := d.Parse()
	if !errors.Is(err, resolve.ErrRedefinition) || !errors.Is(d.LastError(), resolve.ErrRedefinition) {
		t.Fatalf("expected redefinition, got %v", err)
	}
	if d.Resolved() != nil {
		t.Error("refused batch must not resolve")
	}
	diags := d.Diagnostics()
	if len(diags) != 1 || diags[0].Diagnostic != "redefinition of 'a'" {
		t.Errorf("diagnostics %v", diags)
	}
}

func TestSyntaxErrorKeepsTrees(t *testing.T) {
	d := load(t, map[string]string{"/m.hcs": `root { a = 1; }`}, "/m.hcs")
	prev := d.Resolved()
	d.Cache().Put("/m.hcs", []byte(`root { a = 1 }`))
	if err := d.Parse(); !errors.Is(err, parse.ErrSyntax) {
		t.Fatalf("expected syntax error, got %v", err)
	}
	if !errors.Is(d.LastError(), parse.ErrSyntax) {
		t.Errorf("last error %v", d.LastError())
	}
	if d.Resolved() != prev {
		t.Error("previous resolution should be kept")
	}
}

func TestLastErrorCleared(t *testing.T) {
	d := load(t, map[string]string{"/m.hcs": `root { a { } b : nope { } }`}, "/m.hcs")
	if !errors.Is(d.LastError(), resolve.ErrUnresolvedTarget) {
		t.Fatalf("last error %v", d.LastError())
	}
	if err := d.SetTarget("/m.hcs", "b", "a"); err != nil {
		t.Fatal(err)
	}
	if d.LastError() != nil {
		t.Errorf("last error should be cleared, got %v", d.LastError())
	}
}

func TestGenerate(t *testing.T) {
	d := load(t, batch, "/r/main.hcs")
	got, err := d.Generate("/r/main.hcs")
	if err != nil {
		t.Fatal(err)
	}
	want := `#include "./a.hcs"
#include "./sub/b.hcs"
root {
    m = 1;
    a {
        x = 2;
    }
}
`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if _, err := d.Generate("/r/none.hcs"); !errors.Is(err, ErrNoSuchFile) {
		t.Errorf("expected no such file, got %v", err)
	}
}

func TestFlushKeepsEdits(t *testing.T) {
	d := load(t, batch, "/r/main.hcs")
	if _, err := d.AddNode("/r/sub/b.hcs", ""); err != nil {
		t.Fatal(err)
	}
	names, err := d.Flush()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"/r/sub/b.hcs"}, names); diff != "" {
		t.Errorf("flushed (-want +got):\n%s", diff)
	}
	if err := d.Parse(); err != nil {
		t.Fatal(err)
	}
	if d.Resolved().Get("node_1") == nil {
		t.Error("edit lost on reparse")
	}
}

func TestLocate(t *testing.T) {
	d := load(t, batch, "/r/main.hcs")
	f, n := d.Locate(d.Resolved().Get("a.x"))
	if f == nil || f.Name != "/r/main.hcs" || n.Path() != "root.a.x" {
		t.Errorf("a.x located at %v", f)
	}
	f, _ = d.Locate(d.Resolved().Get("a.y"))
	if f == nil || f.Name != "/r/a.hcs" {
		t.Errorf("a.y located at %v", f)
	}
	f, _ = d.Locate(d.Resolved().Get("b"))
	if f == nil || f.Name != "/r/sub/b.hcs" {
		t.Errorf("b located at %v", f)
	}
}

func TestTypeConflictDiagnostics(t *testing.T) {
	d := load(t, map[string]string{
		"/r/main.hcs": "#include \"base.hcs\"\nroot {\n    x { k = 1; }\n}\n",
		"/r/base.hcs": "root { x = 1; }\n",
	}, "/r/main.hcs")
	if !errors.Is(d.LastError(), resolve.ErrTypeConflict) {
		t.Fatalf("last error %v", d.LastError())
	}
	diags := d.Diagnostics()
	if len(diags) != 1 || diags[0].Path() != "root.x" {
		t.Fatalf("diagnostics %v", diags)
	}
	want := "type conflict: 'x' is a node, already defined as an attribute"
	if diags[0].Diagnostic != want {
		t.Errorf("got %q", diags[0].Diagnostic)
	}
	f, err := d.File("/r/main.hcs")
	if err != nil {
		t.Fatal(err)
	}
	if f.Root.Get("x").Diagnostic != want {
		t.Errorf("per-file node diagnostic %q", f.Root.Get("x").Diagnostic)
	}
}
