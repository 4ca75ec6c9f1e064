package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/bracket/format"
	"github.com/signadot/bracket/ir"
	"github.com/signadot/bracket/parse"
	"github.com/signadot/bracket/token"

	"github.com/scott-cotton/cli"
)

var docSep = []byte("\n---\n")

func readArg(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// splitDocs splits text input on '---' lines.  In bracket input a
// '---' line inside quotes does not split.  Binary input is one
// document.
func splitDocs(d []byte, f format.Format) [][]byte {
	switch {
	case f.IsBinary():
		return [][]byte{d}
	case f == format.BracketFormat:
		return splitBracketDocs(d)
	default:
		return bytes.Split(d, docSep)
	}
}

func splitBracketDocs(d []byte) [][]byte {
	var (
		res   [][]byte
		start int
		quote byte
	)
	for i := 0; i < len(d); i++ {
		c := d[i]
		switch {
		case quote != 0 && c == token.Escape:
			i++
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case token.IsQuote(rune(c)):
			quote = c
		case bytes.HasPrefix(d[i:], docSep):
			res = append(res, d[start:i])
			start = i + len(docSep)
			i = start - 1
		}
	}
	return append(res, d[start:])
}

// fileFormat is the -I format, else the one named by the suffix of
// file, else bracket.
func (cfg *MainConfig) fileFormat(file string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	for _, f := range format.AllFormats() {
		if strings.HasSuffix(file, f.Suffix()) {
			return f
		}
	}
	return format.BracketFormat
}

func (cfg *MainConfig) parseOptsFor(file string) []parse.ParseOption {
	return append(cfg.parseOpts(), parse.ParseFormat(cfg.fileFormat(file)))
}

func parseDocs(cfg *MainConfig, file string, d []byte) ([]ir.Bracket, error) {
	docs := splitDocs(d, cfg.fileFormat(file))
	res := make([]ir.Bracket, 0, len(docs))
	for i, doc := range docs {
		b, err := parse.Parse(doc, cfg.parseOptsFor(file)...)
		if err != nil {
			return nil, fmt.Errorf("error decoding document %d: %w", i, err)
		}
		res = append(res, b)
	}
	return res, nil
}

func getObjFile(cc *cli.Context, cfg *MainConfig, path string) (ir.Bracket, error) {
	d, err := readArg(cc, path)
	if err != nil {
		return ir.Bracket{}, err
	}
	return parse.Parse(d, cfg.parseOptsFor(path)...)
}

func getish(s, f bool, cc *cli.Context, arg string) ([]byte, error) {
	if s == f && s {
		return nil, fmt.Errorf("%w: only one of -s, -f may be specified", cli.ErrUsage)
	}
	if f {
		return readArg(cc, arg)
	}
	return []byte(arg), nil
}

// eachFile runs f on the documents of each file, or of the standard
// input when files is empty.
func eachFile(cfg *MainConfig, cc *cli.Context, files []string, f func(file string, docs []ir.Bracket) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		d, err := readArg(cc, file)
		if err != nil {
			return fmt.Errorf("could not read %q: %w", file, err)
		}
		docs, err := parseDocs(cfg, file, d)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if err := f(file, docs); err != nil {
			return err
		}
	}
	return nil
}

func writeSep(w io.Writer) error {
	_, err := w.Write(docSep[1:])
	return err
}
