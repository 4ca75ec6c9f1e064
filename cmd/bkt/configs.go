package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/bracket/encode"
	"github.com/signadot/bracket/format"
	"github.com/signadot/bracket/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color     bool `cli:"name=color desc='encode with color'"`
	WireOut   bool `cli:"name=wire desc='output in compact format'"`
	SpaceOnly bool `cli:"name=s desc='only space and comma separate tokens'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	fmat := format.BracketFormat
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	res := []parse.ParseOption{
		parse.ParseFormat(fmat),
	}
	if cfg.SpaceOnly {
		res = append(res, parse.ParseSpaceOnly())
	}
	return res
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.BracketFormat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// useColor is true with -color, or when -color was not given and w is
// a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			if opt.Value != nil {
				return false
			}
			break
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='report nothing, only the exit status'"`
	Check *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	Trim   bool `cli:"name=trim desc='trim the results to the match'"`
	Prefix bool `cli:"name=prefix desc='let branches match on their leading children'"`
	String bool `cli:"name=s desc='consider match a string argument'"`
	File   bool `cli:"name=f desc='consider match a file path'"`
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Apply   bool `cli:"name=a desc='apply the diff to the first input and print the result'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as string'"`
	File   bool `cli:"name=f desc='patch arg as file'"`

	Patch *cli.Command
}

type SelectConfig struct {
	*MainConfig
	Filter bool `cli:"name=f desc='print the tree pruned to selected leaves'"`
	Paths  bool `cli:"name=p desc='prefix each selected leaf with its path'"`

	Select *cli.Command
}
