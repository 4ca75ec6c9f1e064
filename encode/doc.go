// Package encode writes bracket trees as text.
//
// # Usage
//
//	// bracket notation
//	err := encode.Encode(node, os.Stdout)
//
//	// as a string, without the trailing newline
//	s := encode.MustString(node)
//
//	// other formats
//	err := encode.Encode(node, w, encode.EncodeFormat(format.JSONFormat), encode.EncodeWire(true))
//
// Bracket notation is meant for reading, not for storage: leaf text is
// quoted but never escaped.  Use JSON, YAML or CBOR when the output must
// be read back exactly.
//
// # Related Packages
//
//   - github.com/signadot/bracket/ir - tree representation
//   - github.com/signadot/bracket/parse - reads text into trees
package encode
