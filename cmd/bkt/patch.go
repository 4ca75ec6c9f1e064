package main

import (
	"fmt"

	"github.com/signadot/bracket"
	"github.com/signadot/bracket/ir"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a JSON patch and optionally files to which to apply it", cli.ErrUsage)
	}
	ops, err := getish(cfg.String, cfg.File, cc, args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	n := 0
	return eachFile(cfg.MainConfig, cc, args[1:], func(file string, docs []ir.Bracket) error {
		for _, doc := range docs {
			res, err := bracket.Patch(doc, ops)
			if err != nil {
				return fmt.Errorf("error patching %s: %w", file, err)
			}
			if err := writeDoc(cfg.MainConfig, cc.Out, res, n > 0); err != nil {
				return fmt.Errorf("error encoding result: %w", err)
			}
			n++
		}
		return nil
	})
}
