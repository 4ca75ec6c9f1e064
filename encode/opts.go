package encode

import "github.com/signadot/bracket/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// EncodeColors colors bracket output.  A nil c leaves output plain.
func EncodeColors(c *Colors) EncodeOption {
	if c == nil {
		return func(*EncState) {}
	}
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeWire selects compact JSON output.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}

// EncodeIndent sets the indent of non-wire JSON output.
func EncodeIndent(s string) EncodeOption {
	return func(es *EncState) { es.indent = s }
}
