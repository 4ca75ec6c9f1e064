package main

import (
	"fmt"
	"strings"

	"github.com/signadot/bracket/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	if _, err := ir.ParsePath(path); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	n := 0
	return eachFile(cfg.MainConfig, cc, args[1:], func(file string, docs []ir.Bracket) error {
		for _, doc := range docs {
			res, err := query(doc, path)
			if err != nil {
				return fmt.Errorf("error querying %s with %s: %w", file, path, err)
			}
			for _, r := range res {
				if err := writeDoc(cfg.MainConfig, cc.Out, r, n > 0); err != nil {
					return fmt.Errorf("error encoding result: %w", err)
				}
				n++
			}
		}
		return nil
	})
}

// query gets the node at a plain index path, or lists the nodes
// matched by a path with [*] or "..".  Missing nodes yield nothing.
func query(doc ir.Bracket, path string) ([]ir.Bracket, error) {
	if strings.Contains(path, "*") || strings.Contains(path, "..") {
		return doc.ListPath(nil, path)
	}
	res, err := doc.GetPath(path)
	if err != nil {
		return nil, err
	}
	if res.IsEmpty() {
		return nil, nil
	}
	return []ir.Bracket{res}, nil
}
