package gomap

import (
	"encoding/json"

	"github.com/signadot/bracket/encode"
	"github.com/signadot/bracket/format"
	"github.com/signadot/bracket/ir"
)

type toOpts struct {
	format format.Format
}

type ToOption func(*toOpts)

func DumpFormat(f format.Format) ToOption { return func(o *toOpts) { o.format = f } }

type BracketToer interface {
	ToBracket() (ir.Bracket, error)
}

// Dump encodes v, without a trailing newline.
func Dump(v any, opts ...ToOption) ([]byte, error) {
	to := &toOpts{}
	for _, f := range opts {
		f(to)
	}
	b, err := ToBracket(v)
	if err != nil {
		return nil, err
	}
	s, err := encode.EncodeString(b, encode.EncodeFormat(to.format))
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// ToBracket converts v to a tree.  Numbers and booleans become leaves
// holding their JSON text; maps and structs are rejected.
func ToBracket(v any) (ir.Bracket, error) {
	if x, ok := v.(BracketToer); ok {
		return x.ToBracket()
	}
	j, err := json.Marshal(v)
	if err != nil {
		return ir.Bracket{}, err
	}
	return ir.FromJSON(j)
}
