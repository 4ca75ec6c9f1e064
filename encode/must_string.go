package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/bracket/ir"
)

// EncodeString returns the encoding of b without the trailing newline.
func EncodeString(b ir.Bracket, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(b, buf, opts...); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func MustString(b ir.Bracket, opts ...EncodeOption) string {
	s, err := EncodeString(b, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
