package libdiff

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Reverse returns the changes undoing cs.
func Reverse(cs []Change) []Change {
	res := make([]Change, len(cs))
	for i := range cs {
		c := cs[i]
		c.From, c.To = c.To, c.From
		switch c.Kind {
		case Insert:
			c.Kind = Delete
		case Delete:
			c.Kind = Insert
		case Text:
			c.Diffs = reverseDiffs(c.Diffs)
		}
		res[i] = c
	}
	return res
}

func reverseDiffs(ds []diffpatch.Diff) []diffpatch.Diff {
	res := make([]diffpatch.Diff, len(ds))
	for i, d := range ds {
		switch d.Type {
		case diffpatch.DiffInsert:
			d.Type = diffpatch.DiffDelete
		case diffpatch.DiffDelete:
			d.Type = diffpatch.DiffInsert
		}
		res[i] = d
	}
	return res
}
