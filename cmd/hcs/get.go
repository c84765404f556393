package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	hcs "github.com/openharmony/go-hcs"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: get requires a node path and at least one file", cli.ErrUsage)
	}
	path := args[0]
	return eachDoc(cfg.MainConfig, cc, args[1:], func(doc *hcs.Document) error {
		root := doc.Resolved()
		if root == nil {
			return doc.LastError()
		}
		n := root.Get(path)
		if n == nil {
			return fmt.Errorf("%w: %s", hcs.ErrNoSuchNode, path)
		}
		return writeNode(cfg.MainConfig, cc.Out, n, false)
	})
}
