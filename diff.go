package bracket

import (
	"github.com/signadot/bracket/ir"
	"github.com/signadot/bracket/libdiff"
)

// Diff returns the changes turning from into to.
func Diff(from, to ir.Bracket) []libdiff.Change {
	return libdiff.Diff(from, to)
}

// ApplyDiff applies changes computed by Diff.
func ApplyDiff(doc ir.Bracket, cs []libdiff.Change) (ir.Bracket, error) {
	return libdiff.Apply(doc, cs)
}
