package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func wait(t *testing.T, p Provider, name string) Delivery {
	t.Helper()
	ch := make(chan Delivery, 1)
	p.Request(context.Background(), name, func(d Delivery) { ch <- d })
	return <-ch
}

func TestCache(t *testing.T) {
	c := NewCache()
	c.Put("/a/./b.hcs", []byte("x"))
	c.Put(`\a\c.hcs`, []byte("y"))
	if d, ok := c.Get("/a/b.hcs"); !ok || string(d) != "x" {
		t.Errorf("got %q %v", d, ok)
	}
	if diff := cmp.Diff([]string{"/a/b.hcs", "/a/c.hcs"}, c.Names()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	c.Delete("/a/b.hcs")
	if _, ok := c.Get("/a/b.hcs"); ok {
		t.Error("deleted name still cached")
	}
	var zero Cache
	zero.Put("/z", nil)
	if _, ok := zero.Get("/z"); !ok {
		t.Error("zero cache")
	}
}

func TestDirProvider(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "main.hcs"), []byte("root { }"), 0o644); err != nil {
		t.Fatal(err)
	}
	p := DirProvider{Root: dir}
	d := wait(t, p, "/main.hcs")
	if d.Err != nil || string(d.Data) != "root { }" {
		t.Errorf("got %q %v", d.Data, d.Err)
	}
	d = wait(t, p, "/missing.hcs")
	if !errors.Is(d.Err, ErrNotFound) {
		t.Errorf("expected not found, got %v", d.Err)
	}
	abs := DirProvider{}
	d = wait(t, abs, filepath.ToSlash(filepath.Join(dir, "main.hcs")))
	if d.Err != nil {
		t.Errorf("absolute read: %v", d.Err)
	}
}

func TestMapProviderAndOverlay(t *testing.T) {
	m := MapProvider{"/a.hcs": "disk"}
	if d := wait(t, m, "/a.hcs"); string(d.Data) != "disk" {
		t.Errorf("got %q", d.Data)
	}
	if d := wait(t, m, "/b.hcs"); !errors.Is(d.Err, ErrNotFound) {
		t.Errorf("expected not found, got %v", d.Err)
	}
	c := NewCache()
	c.Put("/a.hcs", []byte("buffer"))
	o := Overlay{Cache: c, Fallback: m}
	if d := wait(t, o, "/a.hcs"); string(d.Data) != "buffer" {
		t.Errorf("overlay should prefer the cache, got %q", d.Data)
	}
	c.Delete("/a.hcs")
	if d := wait(t, o, "/a.hcs"); string(d.Data) != "disk" {
		t.Errorf("overlay fallback got %q", d.Data)
	}
	if d := wait(t, Overlay{Cache: c}, "/a.hcs"); !errors.Is(d.Err, ErrNotFound) {
		t.Errorf("expected not found, got %v", d.Err)
	}
}

func TestCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ch := make(chan Delivery, 1)
	MapProvider{"/a": ""}.Request(ctx, "/a", func(d Delivery) { ch <- d })
	if d := <-ch; !errors.Is(d.Err, context.Canceled) {
		t.Errorf("got %v", d.Err)
	}
}
