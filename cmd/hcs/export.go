package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/scott-cotton/cli"

	hcs "github.com/openharmony/go-hcs"
	"github.com/openharmony/go-hcs/encode"
	"github.com/openharmony/go-hcs/format"
)

func export(cfg *ExportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Export.Parse(cc, args)
	if err != nil {
		return err
	}
	f := format.YAMLFormat
	if cfg.format().IsJSON() {
		f = format.JSONFormat
	}
	return eachDoc(cfg.MainConfig, cc, args, func(doc *hcs.Document) error {
		root := doc.Resolved()
		if root == nil {
			return doc.LastError()
		}
		if !cfg.Write {
			return exportTo(f, cc.Out, doc)
		}
		buf := bytes.NewBuffer(nil)
		if err := exportTo(f, buf, doc); err != nil {
			return err
		}
		return os.WriteFile(exportName(doc.Root(), f), buf.Bytes(), 0644)
	})
}

func exportTo(f format.Format, w io.Writer, doc *hcs.Document) error {
	if f.IsJSON() {
		return encode.ToJSON(doc.Resolved(), w)
	}
	return encode.ToYAML(doc.Resolved(), w)
}

// exportName replaces the extension of root with the suffix of f.
func exportName(root string, f format.Format) string {
	p := filepath.FromSlash(root)
	return strings.TrimSuffix(p, filepath.Ext(p)) + f.Suffix()
}
