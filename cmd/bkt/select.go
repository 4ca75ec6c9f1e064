package main

import (
	"fmt"
	"io"

	"github.com/signadot/bracket/encode"
	"github.com/signadot/bracket/eval"
	"github.com/signadot/bracket/ir"

	"github.com/scott-cotton/cli"
)

func selectLeaves(cfg *SelectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Select.Parse(cc, args)
	if err != nil {
		cfg.Select.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: select requires an expression", cli.ErrUsage)
	}
	code := args[0]
	n := 0
	return eachFile(cfg.MainConfig, cc, args[1:], func(file string, docs []ir.Bracket) error {
		for _, doc := range docs {
			if cfg.Filter {
				res, err := eval.Filter(doc, code)
				if err != nil {
					return fmt.Errorf("%s: %w", file, err)
				}
				if err := writeDoc(cfg.MainConfig, cc.Out, res, n > 0); err != nil {
					return err
				}
				n++
				continue
			}
			ms, err := eval.Select(doc, code)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			if err := writeMatches(cc.Out, ms, cfg.Paths); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeMatches writes one selected leaf per line in bracket notation.
func writeMatches(w io.Writer, ms []eval.Match, paths bool) error {
	for _, m := range ms {
		var err error
		if paths {
			_, err = fmt.Fprintf(w, "%s %s\n", m.Path, encode.MustString(m.Leaf))
		} else {
			_, err = fmt.Fprintln(w, encode.MustString(m.Leaf))
		}
		if err != nil {
			return err
		}
	}
	return nil
}
