package main

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"

	hcs "github.com/openharmony/go-hcs"
	"github.com/openharmony/go-hcs/source"
)

// workspace holds the open buffers. Every open file is the root of its own
// batch; buffers shadow disk content for all batches through the shared
// cache.
type workspace struct {
	mu    sync.Mutex
	cache *source.Cache
	open  map[string]*openFile
	disk  source.Provider
	log   *slog.Logger
}

type openFile struct {
	uri     protocol.DocumentURI
	name    string
	content string
	version int32
	doc     *hcs.Document
}

func newWorkspace(log *slog.Logger) *workspace {
	return &workspace{
		cache: source.NewCache(),
		open:  map[string]*openFile{},
		disk:  source.DirProvider{},
		log:   log,
	}
}

// fileName maps a document uri to the name used by include resolution.
func fileName(u protocol.DocumentURI) string {
	return source.CleanPath(uri.URI(u).Filename())
}

func (ws *workspace) get(u protocol.DocumentURI) *openFile {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return ws.open[fileName(u)]
}

// put stores a buffer and reloads every open batch that uses it. It returns
// the reloaded files.
func (ws *workspace) put(ctx context.Context, u protocol.DocumentURI, content string, version int32) []*openFile {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	name := fileName(u)
	ws.cache.Put(name, []byte(content))
	f := ws.open[name]
	if f == nil {
		f = &openFile{uri: u, name: name}
		f.doc = hcs.New(name, hcs.WithCache(ws.cache), hcs.WithLogger(ws.log))
		ws.open[name] = f
	}
	f.content, f.version = content, version
	return ws.reload(ctx, name)
}

// remove closes a buffer. Its name is dropped from the cache so that batches
// including it read the file from disk again.
func (ws *workspace) remove(ctx context.Context, u protocol.DocumentURI) []*openFile {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	name := fileName(u)
	delete(ws.open, name)
	ws.cache.Delete(name)
	return ws.reload(ctx, name)
}

// changed forgets the disk content of names which are not open.
func (ws *workspace) changed(ctx context.Context, names []string) []*openFile {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	var res []*openFile
	for _, name := range names {
		if ws.open[name] != nil {
			continue
		}
		ws.cache.Delete(name)
		for _, f := range ws.reload(ctx, name) {
			if !slices.Contains(res, f) {
				res = append(res, f)
			}
		}
	}
	return res
}

func (ws *workspace) reload(ctx context.Context, name string) []*openFile {
	var res []*openFile
	p := source.Overlay{Cache: ws.cache, Fallback: ws.disk}
	for _, f := range ws.open {
		if f.name != name && !slices.Contains(f.doc.Files(), name) && !slices.Contains(f.doc.Pending(), name) {
			continue
		}
		if err := f.doc.Load(ctx, p); err != nil {
			ws.log.Debug("load", "root", f.name, "err", err)
		}
		res = append(res, f)
	}
	return res
}
