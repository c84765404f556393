package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/openharmony/go-hcs/encode"
	"github.com/openharmony/go-hcs/libdiff"
	"github.com/openharmony/go-hcs/parse"
)

// hcsFmt rewrites single files without following their includes.
func hcsFmt(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: fmt requires at least one file", cli.ErrUsage)
	}
	differs := false
	for _, file := range args {
		name, err := rootName(file)
		if err != nil {
			return err
		}
		in, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("could not read %q: %w", file, err)
		}
		f, err := parse.ParseFile(name, in)
		if err != nil {
			return err
		}
		buf := bytes.NewBuffer(nil)
		if err := encode.EncodeFile(f.Tree.ToIR(), f.Includes, name, buf, cfg.textOpts()...); err != nil {
			return fmt.Errorf("error formatting %s: %w", file, err)
		}
		out := buf.Bytes()
		switch {
		case cfg.Diff:
			d := libdiff.Lines(file, file+" (formatted)", string(in), string(out))
			if d != "" {
				differs = true
				fmt.Fprint(cc.Out, d)
			}
		case cfg.Write:
			if bytes.Equal(in, out) {
				continue
			}
			if err := os.WriteFile(file, out, 0644); err != nil {
				return fmt.Errorf("could not write %q: %w", file, err)
			}
			cfg.logger().Info("formatted", "file", file)
		default:
			if _, err := cc.Out.Write(out); err != nil {
				return err
			}
		}
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}
