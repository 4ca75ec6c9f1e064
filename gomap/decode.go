// Package gomap loads bracket documents into Go values and dumps Go
// values as bracket documents.
//
// Values without their own mapping go through the JSON view of a
// tree, so a branch fills a slice or array, a leaf fills a string and
// Empty leaves the target alone.
package gomap

import (
	"encoding/json"

	"github.com/signadot/bracket/format"
	"github.com/signadot/bracket/ir"
	"github.com/signadot/bracket/parse"
)

type fromOpts struct {
	spaceOnly bool
	format    format.Format
}

func (do *fromOpts) parseOpts() []parse.ParseOption {
	res := []parse.ParseOption{
		parse.ParseFormat(do.format),
	}
	if do.spaceOnly {
		res = append(res, parse.ParseSpaceOnly())
	}
	return res
}

type FromOption func(*fromOpts)

func LoadSpaceOnly(v bool) FromOption       { return func(o *fromOpts) { o.spaceOnly = v } }
func LoadFormat(f format.Format) FromOption { return func(o *fromOpts) { o.format = f } }

type BracketFromer interface {
	FromBracket(ir.Bracket) error
}

// Load parses d and stores the result in the value pointed to by p.
func Load(d []byte, p any, opts ...FromOption) error {
	do := &fromOpts{}
	for _, f := range opts {
		f(do)
	}
	node, err := parse.Parse(d, do.parseOpts()...)
	if err != nil {
		return err
	}
	return FromBracket(node, p)
}

// FromBracket stores b in the value pointed to by p.
func FromBracket(b ir.Bracket, p any) error {
	if x, ok := p.(BracketFromer); ok {
		return x.FromBracket(b)
	}
	j, err := ir.ToJSON(b)
	if err != nil {
		return err
	}
	return json.Unmarshal(j, p)
}
