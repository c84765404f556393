package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/openharmony/go-hcs/encode"
	"github.com/openharmony/go-hcs/format"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Verbose bool `cli:"name=v aliases=verbose desc='log debug messages'"`
	Indent  int  `cli:"name=indent desc='indentation width of hcs output'"`
	Trace   bool `cli:"name=trace desc='print the tokens of every parsed file'"`
	Timeout time.Duration

	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`
	J bool `cli:"name=j aliases=json desc='output json'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command

	log *slog.Logger
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) mkTimeout() func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		d, err := time.ParseDuration(a)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.Timeout = d
		return d, nil
	}
}

func (cfg *MainConfig) format() format.Format {
	switch {
	case cfg.OutFormat != nil:
		return *cfg.OutFormat
	case cfg.Y:
		return format.YAMLFormat
	case cfg.J:
		return format.JSONFormat
	}
	return format.HCSFormat
}

func (cfg *MainConfig) logger() *slog.Logger {
	if cfg.log == nil {
		cfg.log = newLog(cfg.Verbose)
	}
	return cfg.log
}

// textOpts are the options for hcs text written back to files: no color.
func (cfg *MainConfig) textOpts() []encode.EncodeOption {
	if cfg.Indent > 0 {
		return []encode.EncodeOption{encode.Indent(cfg.Indent)}
	}
	return nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := cfg.textOpts()
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	if cfg.Main == nil {
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	NoDiag bool `cli:"name=n desc='omit diagnostics'"`
	View   *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='only set the exit code'"`
	Check *cli.Command
}

type FmtConfig struct {
	*MainConfig

	Diff  bool `cli:"name=d desc='show a diff instead of the formatted text'"`
	Write bool `cli:"name=w desc='write the result back to the file'"`
	Fmt   *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type FindConfig struct {
	*MainConfig

	Pos   bool `cli:"name=p desc='print source positions'"`
	Match bool `cli:"name=m desc='the query is an hcs pattern file matched against nodes'"`
	Trim  bool `cli:"name=trim desc='with -m, print matches trimmed to the pattern'"`

	Find *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Text    bool `cli:"name=t desc='diff the generated text instead of the trees'"`

	Diff *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Files bool `cli:"name=f desc='dump the per-file trees instead of the resolved tree'"`
	Dump  *cli.Command
}

type ExportConfig struct {
	*MainConfig
	Write  bool `cli:"name=w desc='write each export next to its root file'"`
	Export *cli.Command
}

type PatchConfig struct {
	*MainConfig
	File   string `cli:"name=file desc='the file of the batch to patch (default the root)'"`
	String bool   `cli:"name=s desc='patch arg as string'"`
	Write  bool   `cli:"name=w desc='write the patched file back'"`

	Patch *cli.Command
}
