package hcs

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"

	"github.com/openharmony/go-hcs/debug"
	"github.com/openharmony/go-hcs/encode"
	"github.com/openharmony/go-hcs/ir"
	"github.com/openharmony/go-hcs/parse"
	"github.com/openharmony/go-hcs/resolve"
	"github.com/openharmony/go-hcs/source"
	"github.com/openharmony/go-hcs/token"
)

// File is the per-file tree of one source of the batch. Root is nil for an
// empty file.
type File struct {
	Name     string
	Root     *ir.Node
	Includes []string

	dirty bool
}

type Document struct {
	root   string
	cache  *source.Cache
	parser *parse.Parser
	log    *slog.Logger

	order    []string
	files    map[string]*File
	pending  []string
	resolved *ir.Node
	report   *resolve.Report
	lastErr  error

	parseOpts []parse.ParseOption
}

type Option func(*Document)

func WithLogger(l *slog.Logger) Option {
	return func(d *Document) { d.log = l }
}

// WithCache shares c, typically holding editor buffers, with the document.
func WithCache(c *source.Cache) Option {
	return func(d *Document) { d.cache = c }
}

func WithParseOptions(opts ...parse.ParseOption) Option {
	return func(d *Document) { d.parseOpts = append(d.parseOpts, opts...) }
}

// New creates a document for the root file named root. Nothing is parsed
// until Parse or Load.
func New(root string, opts ...Option) *Document {
	d := &Document{
		root:   source.CleanPath(root),
		files:  map[string]*File{},
		report: &resolve.Report{},
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.cache == nil {
		d.cache = source.NewCache()
	}
	d.parser = parse.NewParser(d.cache, d.parseOpts...)
	return d
}

func (d *Document) Root() string {
	return d.root
}

func (d *Document) Cache() *source.Cache {
	return d.cache
}

// Resolved returns the resolved tree of the last check, or nil if the
// batch was refused.
func (d *Document) Resolved() *ir.Node {
	return d.resolved
}

func (d *Document) Report() *resolve.Report {
	return d.report
}

// LastError returns the most recent error of the last parse or check. It is
// cleared when a new one starts.
func (d *Document) LastError() error {
	return d.lastErr
}

// Pending returns the files the last parse found without content.
func (d *Document) Pending() []string {
	return d.pending
}

// Files returns the names of the batch, root first, in include order.
func (d *Document) Files() []string {
	return d.order
}

// Diagnostics returns the nodes carrying a diagnostic: those of the
// resolved tree or, when the batch was refused, those of the per-file trees.
func (d *Document) Diagnostics() []*ir.Node {
	if d.resolved != nil {
		return d.resolved.Diagnostics()
	}
	var res []*ir.Node
	for _, name := range d.order {
		if f := d.files[name]; f.Root != nil {
			res = append(res, f.Root.Diagnostics()...)
		}
	}
	return res
}

func (d *Document) File(name string) (*File, error) {
	f, ok := d.files[source.CleanPath(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchFile, name)
	}
	return f, nil
}

// Parse re-parses the whole batch from the cache. When some files have no
// content yet it returns a *token.UnavailableError, records them in
// Pending and keeps the previous trees. Lex and syntax errors also keep
// the previous trees. Otherwise the per-file trees are replaced, unsaved
// edits included, and the batch is checked.
func (d *Document) Parse() error {
	d.lastErr = nil
	b, err := d.parser.ParseBatch(d.root)
	d.pending = b.Missing
	if err != nil {
		if !errors.Is(err, token.ErrUnavailable) {
			d.lastErr = err
		}
		d.log.Debug("parse", "root", d.root, "err", err)
		return err
	}
	d.order = b.Order
	d.files = make(map[string]*File, len(b.Order))
	for _, name := range b.Order {
		pf := b.Files[name]
		d.files[name] = &File{Name: name, Root: pf.Tree.ToIR(), Includes: pf.Includes}
	}
	return d.Check()
}

// Deliver stores the content of name and re-parses the batch.
func (d *Document) Deliver(name string, data []byte) error {
	d.cache.Put(name, data)
	return d.Parse()
}

// Check resolves the current per-file trees. It returns an error only when
// the batch is refused for a redefinition; every other problem is a
// diagnostic in Report.
func (d *Document) Check() error {
	d.lastErr = nil
	files := make([]*ir.Node, len(d.order))
	for i, name := range d.order {
		files[i] = d.files[name].Root
	}
	root, rep, err := resolve.Run(files, resolve.WithLogger(d.log))
	d.resolved, d.report = root, rep
	if err != nil {
		d.lastErr = err
		return err
	}
	d.lastErr = rep.Last()
	if debug.Load() {
		debug.Logf("checked %s: %d files, %d diagnostics\n", d.root, len(files), rep.Len())
	}
	return nil
}

// Generate renders the per-file tree of name with its include header.
func (d *Document) Generate(name string, opts ...encode.EncodeOption) ([]byte, error) {
	f, err := d.File(name)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.EncodeFile(f.Root, f.Includes, f.Name, buf, opts...); err != nil {
		return nil, fmt.Errorf("could not generate %s: %w", f.Name, err)
	}
	return buf.Bytes(), nil
}

// Flush writes the generated text of every edited file into the cache so
// that the next Parse keeps the edits. It returns the names written.
func (d *Document) Flush() ([]string, error) {
	var res []string
	for _, name := range d.order {
		f := d.files[name]
		if !f.dirty {
			continue
		}
		data, err := d.Generate(name)
		if err != nil {
			return res, err
		}
		d.cache.Put(name, data)
		f.dirty = false
		res = append(res, name)
	}
	return res, nil
}

// Locate maps a node of the resolved tree to the per-file node it was
// derived from, and the file holding it.
func (d *Document) Locate(n *ir.Node) (*File, *ir.Node) {
	o := n
	for o != nil && o.Origin != nil && o.Origin != o {
		o = o.Origin
	}
	if o == nil {
		return nil, nil
	}
	top := o.Root()
	for _, name := range d.order {
		if f := d.files[name]; f.Root != nil && f.Root == top {
			return f, o
		}
	}
	return nil, nil
}
