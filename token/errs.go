package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminated    = errors.New("unterminated")
	ErrTruncatedEscape = errors.New("escape sequence truncated at end of input")
)

// UnterminatedErr reports a group or quote whose closer never came.
type UnterminatedErr struct {
	Delim rune
	Open  *Pos
}

func (e *UnterminatedErr) Unwrap() error {
	return ErrUnterminated
}

func (e *UnterminatedErr) Error() string {
	if e.Open == nil {
		return fmt.Sprintf("closing delimiter %q not found", e.Delim)
	}
	return fmt.Sprintf("closing delimiter %q not found for %s", e.Delim, e.Open)
}

func TruncatedEscapeErr(pos *Pos) error {
	return fmt.Errorf("%w: %s", ErrTruncatedEscape, pos)
}
