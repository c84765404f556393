package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var ErrNotFound = errors.New("file not found")

// Delivery carries the content of one requested file, or the reason it
// could not be read.
type Delivery struct {
	Name string
	Data []byte
	Err  error
}

// Provider fetches file content on request. Request must not block on the
// fetch itself: deliver is called exactly once per request, possibly from
// another goroutine and in any order relative to other requests.
type Provider interface {
	Request(ctx context.Context, name string, deliver func(Delivery))
}

// DirProvider reads files from the local file system. Names are the
// slash-separated absolute names include resolution produces; when Root is
// set they are taken relative to it.
type DirProvider struct {
	Root string
}

func (p DirProvider) Request(ctx context.Context, name string, deliver func(Delivery)) {
	go func() {
		if err := ctx.Err(); err != nil {
			deliver(Delivery{Name: name, Err: err})
			return
		}
		d, err := os.ReadFile(p.path(name))
		switch {
		case errors.Is(err, os.ErrNotExist):
			err = fmt.Errorf("%w: %s", ErrNotFound, name)
		case err != nil:
			err = fmt.Errorf("could not read %s: %w", name, err)
		}
		deliver(Delivery{Name: name, Data: d, Err: err})
	}()
}

func (p DirProvider) path(name string) string {
	name = CleanPath(name)
	if p.Root == "" {
		return filepath.FromSlash(name)
	}
	return filepath.Join(p.Root, filepath.FromSlash(strings.TrimPrefix(name, "/")))
}

// MapProvider serves in-memory content keyed by cleaned name. Deliveries
// happen on their own goroutine, like those of DirProvider.
type MapProvider map[string]string

func (m MapProvider) Request(ctx context.Context, name string, deliver func(Delivery)) {
	s, ok := m[CleanPath(name)]
	go func() {
		switch {
		case ctx.Err() != nil:
			deliver(Delivery{Name: name, Err: ctx.Err()})
		case !ok:
			deliver(Delivery{Name: name, Err: fmt.Errorf("%w: %s", ErrNotFound, name)})
		default:
			deliver(Delivery{Name: name, Data: []byte(s)})
		}
	}()
}

// Overlay serves files present in Cache directly and forwards everything
// else to Fallback. Editors use it to prefer unsaved buffers over disk.
type Overlay struct {
	Cache    *Cache
	Fallback Provider
}

func (o Overlay) Request(ctx context.Context, name string, deliver func(Delivery)) {
	if d, ok := o.Cache.Get(name); ok {
		go deliver(Delivery{Name: name, Data: d})
		return
	}
	if o.Fallback == nil {
		go deliver(Delivery{Name: name, Err: fmt.Errorf("%w: %s", ErrNotFound, name)})
		return
	}
	o.Fallback.Request(ctx, name, deliver)
}
