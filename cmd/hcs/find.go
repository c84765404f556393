package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	hcs "github.com/openharmony/go-hcs"
	"github.com/openharmony/go-hcs/ir"
	"github.com/openharmony/go-hcs/parse"
	"github.com/openharmony/go-hcs/query"
)

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		cfg.Find.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: find requires a query and at least one file", cli.ErrUsage)
	}
	search, err := searcher(cfg, args[0])
	if err != nil {
		return err
	}
	for _, file := range args[1:] {
		doc, err := loadDoc(cfg.MainConfig, file)
		if err != nil {
			return err
		}
		if doc.Resolved() == nil {
			return doc.LastError()
		}
		found, err := search(doc)
		if err != nil {
			return err
		}
		if err := printFound(cfg, cc, found); err != nil {
			return err
		}
	}
	return nil
}

func searcher(cfg *FindConfig, arg string) (func(*hcs.Document) ([]*ir.Node, error), error) {
	if !cfg.Match {
		q, err := query.Compile(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		return func(doc *hcs.Document) ([]*ir.Node, error) {
			return q.Find(doc.Resolved())
		}, nil
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	f, err := parse.ParseFile(arg, d)
	if err != nil {
		return nil, fmt.Errorf("error parsing pattern: %w", err)
	}
	pattern := f.Tree.ToIR()
	return func(doc *hcs.Document) ([]*ir.Node, error) {
		found := doc.FindMatches(pattern)
		if cfg.Trim {
			for i := range found {
				found[i] = hcs.Trim(pattern, found[i])
			}
		}
		return found, nil
	}, nil
}

func printFound(cfg *FindConfig, cc *cli.Context, found []*ir.Node) error {
	for _, n := range found {
		switch {
		case cfg.Trim:
			if err := writeNode(cfg.MainConfig, cc.Out, n, false); err != nil {
				return err
			}
		case cfg.Pos:
			fmt.Fprintf(cc.Out, "%s: %s\n", n.Position(), n.Path())
		default:
			fmt.Fprintln(cc.Out, n.Path())
		}
	}
	return nil
}
