package main

import (
	"fmt"
	"io"

	"github.com/signadot/bracket/encode"
	"github.com/signadot/bracket/ir"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	n := 0
	return eachFile(cfg.MainConfig, cc, args, func(file string, docs []ir.Bracket) error {
		for _, doc := range docs {
			if err := writeDoc(cfg.MainConfig, cc.Out, doc, n > 0); err != nil {
				return fmt.Errorf("error encoding %s: %w", file, err)
			}
			n++
		}
		return nil
	})
}

// writeDoc encodes doc in the output format, preceded by a '---' line
// when sep is set and the format is textual.
func writeDoc(cfg *MainConfig, w io.Writer, doc ir.Bracket, sep bool) error {
	opts := cfg.encOpts(w)
	if sep && !encode.FormatFromOpts(opts...).IsBinary() {
		if err := writeSep(w); err != nil {
			return err
		}
	}
	return encode.Encode(doc, w, opts...)
}
