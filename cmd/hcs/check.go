package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

// check prints one line per diagnostic, file:line: path: message, and exits
// with 1 when any file has one.
func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: check requires at least one file", cli.ErrUsage)
	}
	bad := 0
	for _, file := range args {
		doc, err := loadDoc(cfg.MainConfig, file)
		if err != nil {
			return err
		}
		errs := doc.Report().Errors()
		cfg.logger().Debug("checked", "root", doc.Root(), "files", len(doc.Files()), "diagnostics", len(errs))
		if len(errs) == 0 {
			continue
		}
		bad++
		if cfg.Quiet {
			continue
		}
		for _, e := range errs {
			fmt.Fprintln(cc.Out, e.Error())
		}
	}
	if bad > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
