package resolve

import (
	"fmt"
	"log/slog"

	"github.com/openharmony/go-hcs/debug"
	"github.com/openharmony/go-hcs/ir"
)

type Resolver struct {
	report *Report
	log    *slog.Logger
	// inherit nodes already flagged for their target's relation
	badInherit map[*ir.Node]bool
}

type Option func(*Resolver)

func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) { r.log = l }
}

func New(opts ...Option) *Resolver {
	r := &Resolver{
		report:     &Report{},
		log:        slog.New(slog.DiscardHandler),
		badInherit: map[*ir.Node]bool{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Resolver) Report() *Report {
	return r.report
}

func (r *Resolver) fail(n *ir.Node, err error, msg string) {
	n.SetDiagnostic(msg)
	e := newNodeError(n, err, msg)
	r.report.add(e)
	r.log.Debug("diagnostic", "path", e.Path, "pos", e.Pos.String(), "msg", msg)
}

// MergeOrder returns files with the first one, the requested root file,
// moved to the end.
func MergeOrder(files []*ir.Node) []*ir.Node {
	if len(files) < 2 {
		return files
	}
	res := make([]*ir.Node, 0, len(files))
	res = append(res, files[1:]...)
	return append(res, files[0])
}

// Run resolves the per-file trees of an include batch, given root file
// first. Nil entries stand for empty files. Diagnostics left by a previous
// run are cleared first. The returned error is non-nil only when a
// redefinition refuses the batch; other problems are in the Report.
func Run(files []*ir.Node, opts ...Option) (*ir.Node, *Report, error) {
	r := New(opts...)
	ok := true
	for _, f := range files {
		if f == nil {
			continue
		}
		f.ClearDiagnostics()
		if !r.RedefineCheck(f) {
			ok = false
		}
	}
	if !ok {
		return nil, r.report, fmt.Errorf("%w: %w", ErrRedefinition, r.report.Last())
	}
	root := r.Merge(MergeOrder(files))
	if debug.Merge() {
		debug.Logf("merged:\n%v", root)
	}
	r.ExpandNodes(root)
	r.ExpandInherit(root)
	r.CheckNesting(root)
	if debug.Expand() {
		debug.Logf("expanded:\n%v", root)
	}
	return root, r.report, nil
}
