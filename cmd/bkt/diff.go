package main

import (
	"fmt"
	"io"

	"github.com/signadot/bracket"
	"github.com/signadot/bracket/encode"
	"github.com/signadot/bracket/libdiff"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	from, err := getObjFile(cc, cfg.MainConfig, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	to, err := getObjFile(cc, cfg.MainConfig, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	cs := bracket.Diff(from, to)
	if cfg.Reverse {
		cs = libdiff.Reverse(cs)
		from = to
	}
	if cfg.Apply {
		res, err := bracket.ApplyDiff(from, cs)
		if err != nil {
			return err
		}
		return writeDoc(cfg.MainConfig, cc.Out, res, false)
	}
	if len(cs) == 0 {
		return nil
	}
	if err := writeChanges(cc.Out, cs, cfg.useColor(cc.Out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

var (
	insColor = color.New(color.FgGreen).SprintFunc()
	delColor = color.New(color.FgRed).SprintFunc()
	repColor = color.New(color.FgYellow).SprintFunc()
)

// writeChanges writes one change per line.
func writeChanges(w io.Writer, cs []libdiff.Change, colored bool) error {
	for i := range cs {
		c := &cs[i]
		line := c.String()
		if colored {
			line = colorChange(c)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func colorChange(c *libdiff.Change) string {
	switch c.Kind {
	case libdiff.Insert:
		return fmt.Sprintf("%s %s", c.Path, insColor("+ "+encode.MustString(c.To)))
	case libdiff.Delete:
		return fmt.Sprintf("%s %s", c.Path, delColor("- "+encode.MustString(c.From)))
	case libdiff.Text:
		return fmt.Sprintf("%s %s", c.Path, diffpatch.New().DiffPrettyText(c.Diffs))
	default:
		return fmt.Sprintf("%s %s -> %s", c.Path, repColor(encode.MustString(c.From)), repColor(encode.MustString(c.To)))
	}
}
