package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a json patch, and a root file whose batch to patch", cli.ErrUsage)
	}
	p, err := getPatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	doc, err := loadDoc(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	target := doc.Root()
	if cfg.File != "" {
		if target, err = rootName(cfg.File); err != nil {
			return err
		}
	}
	if err := doc.Patch(target, p); err != nil {
		return fmt.Errorf("error patching %s: %w", target, err)
	}
	for _, e := range doc.Report().Errors() {
		cfg.logger().Warn("diagnostic", "err", e.Error())
	}
	out, err := doc.Generate(target)
	if err != nil {
		return err
	}
	if !cfg.Write {
		_, err := cc.Out.Write(out)
		return err
	}
	if err := os.WriteFile(filepath.FromSlash(target), out, 0644); err != nil {
		return fmt.Errorf("could not write %q: %w", target, err)
	}
	return nil
}

// getPatch reads the patch from the file named arg, stdin for "-", or arg
// itself with -s.
func getPatch(cfg *PatchConfig, cc *cli.Context, arg string) ([]byte, error) {
	if cfg.String {
		return []byte(arg), nil
	}
	if arg == "-" {
		return io.ReadAll(cc.In)
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return d, nil
}
