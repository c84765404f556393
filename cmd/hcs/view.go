package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	hcs "github.com/openharmony/go-hcs"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachDoc(cfg.MainConfig, cc, args, func(doc *hcs.Document) error {
		root := doc.Resolved()
		if root == nil {
			return doc.LastError()
		}
		if err := writeNode(cfg.MainConfig, cc.Out, root, !cfg.NoDiag); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		return nil
	})
}
