package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/openharmony/go-hcs/format"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, src := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(src), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestLoadDoc(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"main.hcs": "#include \"base.hcs\"\nroot { a = 2; }\n",
		"base.hcs": "root { a = 1; b = \"x\"; }\n",
	})
	cfg := &MainConfig{}
	doc, err := loadDoc(cfg, filepath.Join(dir, "main.hcs"))
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Files()) != 2 {
		t.Fatalf("files %v", doc.Files())
	}
	f := format.JSONFormat
	cfg.OutFormat = &f
	buf := bytes.NewBuffer(nil)
	if err := writeNode(cfg, buf, doc.Resolved(), false); err != nil {
		t.Fatal(err)
	}
	want := `{
  "a": 2,
  "b": "x"
}`
	if diff := cmp.Diff(want, strings.TrimSpace(buf.String())); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestLoadDocMissingInclude(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"main.hcs": "#include \"gone.hcs\"\nroot { }\n",
	})
	if _, err := loadDoc(&MainConfig{}, filepath.Join(dir, "main.hcs")); err == nil {
		t.Error("expected an error for a missing include")
	}
}

func TestLoadDocRefused(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"main.hcs": "root { a = 1; a = 2; }\n",
	})
	doc, err := loadDoc(&MainConfig{}, filepath.Join(dir, "main.hcs"))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Resolved() != nil || doc.LastError() == nil {
		t.Errorf("refused batch resolved to %v, last error %v", doc.Resolved(), doc.LastError())
	}
}

func TestRootName(t *testing.T) {
	name, err := rootName("a/../b.hcs")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(name, "/b.hcs") || strings.Contains(name, "..") {
		t.Errorf("got %q", name)
	}
}

func TestExportName(t *testing.T) {
	got := exportName("/a/b/main.hcs", format.JSONFormat)
	if want := filepath.FromSlash("/a/b/main.json"); got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if got := exportName("/a/noext", format.YAMLFormat); got != filepath.FromSlash("/a/noext.yaml") {
		t.Errorf("got %q", got)
	}
}

func TestSearcherPattern(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"main.hcs": "root {\n    u0 { mode = \"fifo\"; id = 0; }\n    u1 { mode = \"dma\"; }\n}\n",
		"pat.hcs":  "root { mode = \"fifo\"; }\n",
	})
	cfg := &FindConfig{MainConfig: &MainConfig{}, Match: true}
	search, err := searcher(cfg, filepath.Join(dir, "pat.hcs"))
	if err != nil {
		t.Fatal(err)
	}
	doc, err := loadDoc(cfg.MainConfig, filepath.Join(dir, "main.hcs"))
	if err != nil {
		t.Fatal(err)
	}
	found, err := search(doc)
	if err != nil {
		t.Fatal(err)
	}
	if len(found) != 1 || found[0].Path() != "root.u0" {
		t.Errorf("got %v", found)
	}
	cfg.Trim = true
	found, _ = search(doc)
	buf := bytes.NewBuffer(nil)
	if err := writeNode(cfg.MainConfig, buf, found[0], false); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("u0 {\n    mode = \"fifo\";\n}\n", buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
