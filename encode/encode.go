package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/signadot/bracket/format"
	"github.com/signadot/bracket/ir"

	"github.com/goccy/go-yaml"
)

// EmptyPlaceholder is how the empty node is written in bracket notation.
const EmptyPlaceholder = "--EMPTY--"

type EncState struct {
	format format.Format
	wire   bool
	indent string

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes b to w followed by a newline, in bracket notation
// unless another format is selected.
//
// Bracket notation puts a single space between siblings, wraps nested
// branches in [ ] and every leaf in double quotes.  Quotes inside leaf
// text are written as is, so the output only parses back to b when no
// leaf holds a quote character.
func Encode(b ir.Bracket, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: "  ",
	}
	for _, opt := range opts {
		opt(es)
	}
	var (
		d   []byte
		err error
	)
	switch es.format {
	case format.BracketFormat:
		buf := bytes.NewBuffer(nil)
		encodeBracket(b, es, buf)
		buf.WriteByte('\n')
		d = buf.Bytes()
	case format.JSONFormat:
		d, err = encodeJSON(b, es)
	case format.YAMLFormat:
		d, err = yaml.Marshal(ir.ToAny(b))
	case format.CBORFormat:
		d, err = encodeCBOR(b)
	default:
		return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
	}
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", es.format, err)
	}
	_, err = w.Write(d)
	return err
}

func encodeBracket(b ir.Bracket, es *EncState, buf *bytes.Buffer) {
	switch b.Type {
	case ir.BranchType:
		for i := range b.Values {
			c := &b.Values[i]
			if i > 0 {
				buf.WriteByte(' ')
			}
			if c.Type != ir.BranchType {
				encodeBracket(*c, es, buf)
				continue
			}
			buf.WriteString(es.color(ir.BranchType, SepColor, "["))
			encodeBracket(*c, es, buf)
			buf.WriteString(es.color(ir.BranchType, SepColor, "]"))
		}
	case ir.LeafType:
		buf.WriteString(es.color(ir.LeafType, ValueColor, `"`+b.String+`"`))
	default:
		buf.WriteString(es.color(ir.EmptyType, ValueColor, EmptyPlaceholder))
	}
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func encodeJSON(b ir.Bracket, es *EncState) ([]byte, error) {
	var (
		d   []byte
		err error
	)
	if es.wire {
		d, err = json.Marshal(b)
	} else {
		d, err = json.MarshalIndent(b, "", es.indent)
	}
	if err != nil {
		return nil, err
	}
	return append(d, '\n'), nil
}
