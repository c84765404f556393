package hcs

import (
	"context"
	"errors"
	"fmt"

	"github.com/openharmony/go-hcs/debug"
	"github.com/openharmony/go-hcs/source"
	"github.com/openharmony/go-hcs/token"
)

// Load creates a document for root and loads it from p.
func Load(ctx context.Context, root string, p source.Provider, opts ...Option) (*Document, error) {
	d := New(root, opts...)
	if err := d.Load(ctx, p); err != nil {
		return d, err
	}
	return d, nil
}

// Load fetches the include closure of the document through p. Each missing
// file is requested once, as soon as it is discovered; every delivery is
// stored in the cache by name and the whole batch is parsed again. Load
// returns once the batch parses without missing files, on the first lex,
// syntax, redefinition or delivery error, or when ctx is done.
func (d *Document) Load(ctx context.Context, p source.Provider) error {
	arrived := make(chan source.Delivery)
	done := make(chan struct{})
	defer close(done)
	deliver := func(dl source.Delivery) {
		select {
		case arrived <- dl:
		case <-done:
		}
	}
	requested := map[string]bool{}
	inflight := 0
	for {
		err := d.Parse()
		if !errors.Is(err, token.ErrUnavailable) {
			return err
		}
		if debug.Load() {
			debug.LogAny(map[string]any{"root": d.root, "pending": d.pending, "inflight": inflight})
		}
		for _, name := range d.pending {
			if requested[name] {
				continue
			}
			requested[name] = true
			inflight++
			if debug.Load() {
				debug.Logf("request %s\n", name)
			}
			d.log.Debug("request", "file", name)
			p.Request(ctx, name, deliver)
		}
		if inflight == 0 {
			// pending files were delivered, then dropped from the cache
			return err
		}
		select {
		case <-ctx.Done():
			d.lastErr = ctx.Err()
			return ctx.Err()
		case dl := <-arrived:
			inflight--
			if dl.Err != nil {
				d.lastErr = fmt.Errorf("could not load %s: %w", dl.Name, dl.Err)
				return d.lastErr
			}
			d.log.Debug("delivered", "file", dl.Name, "size", len(dl.Data))
			d.cache.Put(dl.Name, dl.Data)
		}
	}
}
