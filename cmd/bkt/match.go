package main

import (
	"fmt"

	"github.com/signadot/bracket"
	"github.com/signadot/bracket/ir"
	"github.com/signadot/bracket/parse"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, a pattern", cli.ErrUsage)
	}
	d, err := getish(cfg.String, cfg.File, cc, args[0])
	if err != nil {
		return err
	}
	pattern, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding pattern: %w", err)
	}
	n := 0
	return eachFile(cfg.MainConfig, cc, args[1:], func(file string, docs []ir.Bracket) error {
		for _, doc := range docs {
			if !bracket.Match(doc, pattern, bracket.MatchPrefix(cfg.Prefix)) {
				continue
			}
			if cfg.Trim {
				doc = bracket.Trim(pattern, doc)
			}
			if err := writeDoc(cfg.MainConfig, cc.Out, doc, n > 0); err != nil {
				return fmt.Errorf("error encoding output: %w", err)
			}
			n++
		}
		return nil
	})
}
