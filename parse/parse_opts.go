package parse

import (
	"github.com/signadot/bracket/format"
)

type parseOpts struct {
	format    format.Format
	spaceOnly bool
}

type ParseOption func(*parseOpts)

func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseCBOR() ParseOption {
	return ParseFormat(format.CBORFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ParseSpaceOnly makes ' ' and ',' the only separators.  Other white
// space, such as tabs and newlines, then becomes part of bare tokens.
func ParseSpaceOnly() ParseOption {
	return func(o *parseOpts) { o.spaceOnly = true }
}
