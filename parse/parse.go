package parse

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/signadot/bracket/debug"
	"github.com/signadot/bracket/format"
	"github.com/signadot/bracket/ir"
	"github.com/signadot/bracket/token"

	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-yaml"
)

func Parse(d []byte, opts ...ParseOption) (ir.Bracket, error) {
	pOpts := &parseOpts{format: format.BracketFormat}
	for _, f := range opts {
		f(pOpts)
	}
	var (
		res ir.Bracket
		err error
	)
	switch pOpts.format {
	case format.BracketFormat:
		res, err = newWalker(d, pOpts).top()
	case format.JSONFormat:
		res, err = ir.FromJSON(d)
	case format.YAMLFormat:
		res, err = parseYAML(d)
	case format.CBORFormat:
		res, err = parseCBOR(d)
	default:
		err = fmt.Errorf("%w: %d", format.ErrBadFormat, pOpts.format)
	}
	if err != nil {
		return ir.Bracket{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return res, nil
}

func ParseString(s string, opts ...ParseOption) (ir.Bracket, error) {
	return Parse([]byte(s), opts...)
}

func ParseReader(r io.Reader, opts ...ParseOption) (ir.Bracket, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return ir.Bracket{}, err
	}
	return Parse(d, opts...)
}

// walker makes a single left to right pass over its input.  Groups
// recurse on the closing character they wait for, so the Go stack
// grows with bracket nesting depth; there is no explicit limit.
type walker struct {
	d         []byte
	i         int
	doc       *token.PosDoc
	spaceOnly bool
}

func newWalker(d []byte, opts *parseOpts) *walker {
	return &walker{
		d:         d,
		doc:       token.NewPosDoc(d),
		spaceOnly: opts.spaceOnly,
	}
}

func (w *walker) more() bool {
	return w.i < len(w.d)
}

// next decodes the rune at the current offset and advances past it,
// returning the rune and its starting offset.  Bytes that are not
// UTF-8 come back as utf8.RuneError and are kept verbatim by the
// callers, which copy w.d[start:w.i].
func (w *walker) next() (rune, int) {
	start := w.i
	r, n := utf8.DecodeRune(w.d[w.i:])
	w.i += n
	if r == '\n' {
		w.doc.NL(start)
	}
	return r, start
}

func (w *walker) top() (ir.Bracket, error) {
	res := ir.Empty()
	var cur []byte
	for w.more() {
		r, start := w.next()
		if err := w.char(r, start, &cur, &res); err != nil {
			return ir.Bracket{}, err
		}
	}
	res.AddString(string(cur))
	return res, nil
}

// group reads up to delim.  The result is always a branch, even when
// the group holds a single value or none.
func (w *walker) group(open int, delim rune) (ir.Bracket, error) {
	if debug.Parse() {
		debug.Logf("group %q opened at %d\n", delim, open)
	}
	res := ir.Br()
	var cur []byte
	for w.more() {
		r, start := w.next()
		if r == delim {
			res.AddString(string(cur))
			if debug.Parse() {
				debug.Logf("group %q closed at %d: %v\n", delim, start, res)
			}
			return res, nil
		}
		if err := w.char(r, start, &cur, &res); err != nil {
			return ir.Bracket{}, err
		}
	}
	return ir.Bracket{}, &token.UnterminatedErr{Delim: delim, Open: w.doc.Pos(open)}
}

// quoted reads verbatim text up to the next unescaped delim.
func (w *walker) quoted(open int, delim rune) (ir.Bracket, error) {
	var buf bytes.Buffer
	for w.more() {
		r, start := w.next()
		switch r {
		case delim:
			return ir.Lf(buf.String()), nil
		case token.Escape:
			if !w.more() {
				return ir.Bracket{}, token.TruncatedEscapeErr(w.doc.Pos(start))
			}
			_, start = w.next()
			buf.Write(w.d[start:w.i])
		default:
			buf.Write(w.d[start:w.i])
		}
	}
	return ir.Bracket{}, &token.UnterminatedErr{Delim: delim, Open: w.doc.Pos(open)}
}

// char handles one character outside quotes.  cur accumulates the bare
// token being read and res the siblings found so far.
func (w *walker) char(r rune, start int, cur *[]byte, res *ir.Bracket) error {
	if token.IsSeparator(r, w.spaceOnly) {
		flush(cur, res)
		return nil
	}
	if closer, ok := token.Closer(r); ok {
		flush(cur, res)
		sub, err := w.group(start, closer)
		if err != nil {
			return err
		}
		res.AddSibling(sub)
		return nil
	}
	if token.IsQuote(r) {
		flush(cur, res)
		lf, err := w.quoted(start, r)
		if err != nil {
			return err
		}
		res.AddSibling(lf)
		return nil
	}
	*cur = append(*cur, w.d[start:w.i]...)
	return nil
}

func flush(cur *[]byte, res *ir.Bracket) {
	res.AddString(string(*cur))
	*cur = (*cur)[:0]
}

func parseYAML(d []byte) (ir.Bracket, error) {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return ir.Bracket{}, err
	}
	return ir.FromAny(v)
}

func parseCBOR(d []byte) (ir.Bracket, error) {
	var v any
	if err := cbor.Unmarshal(d, &v); err != nil {
		return ir.Bracket{}, err
	}
	return ir.FromAny(v)
}
