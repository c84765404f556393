package main

import (
	"bytes"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/openharmony/go-hcs/encode"
	"github.com/openharmony/go-hcs/ir"
	"github.com/openharmony/go-hcs/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	var roots [2]*ir.Node
	for i, file := range args {
		doc, err := loadDoc(cfg.MainConfig, file)
		if err != nil {
			return err
		}
		if roots[i] = doc.Resolved(); roots[i] == nil {
			return fmt.Errorf("error resolving %s: %w", file, doc.LastError())
		}
	}
	differs, err := diffInputs(cfg, cc, args, roots[0], roots[1])
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffInputs(cfg *DiffConfig, cc *cli.Context, names []string, a, b *ir.Node) (bool, error) {
	if cfg.Reverse {
		a, b = b, a
		names = []string{names[1], names[0]}
	}
	w := cc.Out
	if cfg.Text {
		var ta, tb bytes.Buffer
		if err := encode.Encode(a, &ta, cfg.textOpts()...); err != nil {
			return false, err
		}
		if err := encode.Encode(b, &tb, cfg.textOpts()...); err != nil {
			return false, err
		}
		d := libdiff.Lines(names[0], names[1], ta.String(), tb.String())
		if d == "" {
			return false, nil
		}
		_, err := w.Write([]byte(d))
		return true, err
	}
	changes := libdiff.Diff(a, b)
	if len(changes) == 0 {
		return false, nil
	}
	for i := range changes {
		if _, err := fmt.Fprintln(w, changes[i].String()); err != nil {
			return false, err
		}
	}
	return true, nil
}
