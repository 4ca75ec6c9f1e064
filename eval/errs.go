package eval

import "errors"

var (
	ErrCompile = errors.New("cannot compile expression")
	ErrNotBool = errors.New("expression did not yield a bool")
)
