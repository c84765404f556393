package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/scott-cotton/cli"

	hcs "github.com/openharmony/go-hcs"
	"github.com/openharmony/go-hcs/encode"
	"github.com/openharmony/go-hcs/format"
	"github.com/openharmony/go-hcs/ir"
	"github.com/openharmony/go-hcs/parse"
	"github.com/openharmony/go-hcs/resolve"
	"github.com/openharmony/go-hcs/source"
)

// rootName turns a command line path into the absolute slash separated
// name include resolution works with.
func rootName(file string) (string, error) {
	abs, err := filepath.Abs(file)
	if err != nil {
		return "", err
	}
	return source.CleanPath(filepath.ToSlash(abs)), nil
}

// loadDoc loads the batch rooted at file from disk. Diagnostics, and the
// refusal of a batch for redefinitions, are not errors here; callers inspect
// the document's report and LastError.
func loadDoc(cfg *MainConfig, file string) (*hcs.Document, error) {
	name, err := rootName(file)
	if err != nil {
		return nil, err
	}
	ctx := context.Background()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}
	doc, err := hcs.Load(ctx, name, source.DirProvider{},
		hcs.WithLogger(cfg.logger()),
		hcs.WithParseOptions(parse.WithTrace(cfg.Trace)))
	if err != nil && !errors.Is(err, resolve.ErrRedefinition) {
		return nil, fmt.Errorf("could not load %q: %w", file, err)
	}
	return doc, nil
}

// eachDoc loads every file in turn and hands the documents to fn, writing
// a separator between outputs.
func eachDoc(cfg *MainConfig, cc *cli.Context, files []string, fn func(*hcs.Document) error) error {
	if len(files) == 0 {
		return fmt.Errorf("%w: no files given", cli.ErrUsage)
	}
	for i, file := range files {
		if i > 0 && cfg.format().IsHCS() {
			if _, err := cc.Out.Write([]byte("\n")); err != nil {
				return err
			}
		}
		doc, err := loadDoc(cfg, file)
		if err != nil {
			return err
		}
		if err := fn(doc); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

func writeNode(cfg *MainConfig, w io.Writer, n *ir.Node, diags bool) error {
	switch cfg.format() {
	case format.YAMLFormat:
		return encode.ToYAML(n, w)
	case format.JSONFormat:
		return encode.ToJSON(n, w)
	}
	opts := append(cfg.encOpts(w), encode.EncodeDiagnostics(diags))
	return encode.Encode(n, w, opts...)
}
