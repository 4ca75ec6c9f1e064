package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Empty sorts before leaves, which sort before branches. Branches
// compare child by child, then by length.
func Compare(a, b Bracket) int {
	if a.Type != b.Type {
		return cmp.Compare(a.Type, b.Type)
	}
	switch a.Type {
	case LeafType:
		return strings.Compare(a.String, b.String)
	case BranchType:
		n := min(len(a.Values), len(b.Values))
		for i := 0; i < n; i++ {
			if c := Compare(a.Values[i], b.Values[i]); c != 0 {
				return c
			}
		}
		return cmp.Compare(len(a.Values), len(b.Values))
	}
	return 0
}

// Equal reports whether a and b have the same shape and text.
func Equal(a, b Bracket) bool {
	return Compare(a, b) == 0
}

// Equal is Equal(b, o); go-cmp picks it up.
func (b Bracket) Equal(o Bracket) bool {
	return Equal(b, o)
}
