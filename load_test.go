package hcs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/openharmony/go-hcs/source"
)

// slowProvider delays deliveries per file so they arrive out of order.
type slowProvider struct {
	files  source.MapProvider
	delays map[string]time.Duration

	mu       sync.Mutex
	requests []string
}

func (p *slowProvider) Request(ctx context.Context, name string, deliver func(source.Delivery)) {
	p.mu.Lock()
	p.requests = append(p.requests, name)
	p.mu.Unlock()
	go func() {
		time.Sleep(p.delays[name])
		p.files.Request(ctx, name, deliver)
	}()
}

type silentProvider struct{}

func (silentProvider) Request(context.Context, string, func(source.Delivery)) {}

func TestLoadOutOfOrder(t *testing.T) {
	p := &slowProvider{
		files:  source.MapProvider(batch),
		delays: map[string]time.Duration{"/r/a.hcs": 50 * time.Millisecond},
	}
	d, err := Load(context.Background(), "/r/main.hcs", p)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"/r/main.hcs", "/r/a.hcs", "/r/sub/b.hcs"}
	if diff := cmp.Diff(want, p.requests); diff != "" {
		t.Errorf("each file is requested once (-want +got):\n%s", diff)
	}
	eager := load(t, batch, "/r/main.hcs")
	if diff := cmp.Diff(text(t, eager.Resolved()), text(t, d.Resolved())); diff != "" {
		t.Errorf("(-eager +async):\n%s", diff)
	}
	if diff := cmp.Diff(want, d.Files()); diff != "" {
		t.Errorf("files (-want +got):\n%s", diff)
	}
}

func TestLoadMap(t *testing.T) {
	d, err := Load(context.Background(), "/r/main.hcs", source.MapProvider(batch))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(batchResolved, text(t, d.Resolved())); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestLoadMissing(t *testing.T) {
	files := map[string]string{"/r/main.hcs": batch["/r/main.hcs"], "/r/a.hcs": batch["/r/a.hcs"]}
	d, err := Load(context.Background(), "/r/main.hcs", source.MapProvider(files))
	if !errors.Is(err, source.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if !errors.Is(d.LastError(), source.ErrNotFound) {
		t.Errorf("last error %v", d.LastError())
	}
}

func TestLoadCanceled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := Load(ctx, "/r/main.hcs", silentProvider{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("got %v", err)
	}
}
