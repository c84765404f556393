package main

import (
	"encoding/json"
	"fmt"

	"github.com/scott-cotton/cli"

	hcs "github.com/openharmony/go-hcs"
	"github.com/openharmony/go-hcs/ir"
)

// dump writes the json form of the node model, which ir.Node can read back.
func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachDoc(cfg.MainConfig, cc, args, func(doc *hcs.Document) error {
		if !cfg.Files {
			if doc.Resolved() == nil {
				return doc.LastError()
			}
			return dumpNode(cc, doc.Resolved())
		}
		for _, name := range doc.Files() {
			f, err := doc.File(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cc.Out, "// %s\n", name)
			if f.Root == nil {
				continue
			}
			if err := dumpNode(cc, f.Root); err != nil {
				return err
			}
		}
		return nil
	})
}

func dumpNode(cc *cli.Context, n *ir.Node) error {
	j, err := json.MarshalIndent(n, "", "  ")
	if err != nil {
		return fmt.Errorf("internal error: %w", err)
	}
	_, err = cc.Out.Write(append(j, '\n'))
	return err
}
