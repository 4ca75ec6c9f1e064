package libdiff

import (
	"fmt"
	"strings"

	"github.com/signadot/bracket/encode"
	"github.com/signadot/bracket/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Change is one difference between two trees.  Path addresses the node
// in the "from" tree, or for an Insert the position it takes in the
// "to" tree.
type Change struct {
	Path string
	Kind Kind
	From ir.Bracket
	To   ir.Bracket

	// Diffs holds the text edits of a Text change.
	Diffs []diffpatch.Diff
}

// Diff returns the changes turning from into to, nil when they are
// equal.  Branches are compared child by child at equal offsets;
// children past the end of the shorter branch are inserted or deleted.
func Diff(from, to ir.Bracket) []Change {
	return diff(nil, nil, from, to)
}

func diff(dst []Change, at []int, from, to ir.Bracket) []Change {
	// Insert and Delete below the root only ever name trailing children,
	// so an Empty child at a shared offset is replaced.
	switch {
	case from.Type == ir.EmptyType && to.Type == ir.EmptyType:
		return dst
	case len(at) != 0 && (from.IsEmpty() || to.IsEmpty()):
		return append(dst, Change{Path: ir.IndexPath(at...), Kind: Replace, From: from, To: to})
	case from.IsEmpty():
		return append(dst, Change{Path: ir.IndexPath(at...), Kind: Insert, To: to})
	case to.IsEmpty():
		return append(dst, Change{Path: ir.IndexPath(at...), Kind: Delete, From: from})
	case from.Type != to.Type:
		return append(dst, Change{Path: ir.IndexPath(at...), Kind: Replace, From: from, To: to})
	case from.IsLeaf():
		if from.String == to.String {
			return dst
		}
		return append(dst, Change{
			Path:  ir.IndexPath(at...),
			Kind:  Text,
			From:  from,
			To:    to,
			Diffs: DiffString(from.String, to.String),
		})
	}
	n := min(len(from.Values), len(to.Values))
	for i := 0; i < n; i++ {
		dst = diff(dst, append(at[:len(at):len(at)], i), from.Values[i], to.Values[i])
	}
	for i := n; i < len(to.Values); i++ {
		dst = append(dst, Change{Path: ir.IndexPath(append(at[:len(at):len(at)], i)...), Kind: Insert, To: to.Values[i]})
	}
	for i := n; i < len(from.Values); i++ {
		dst = append(dst, Change{Path: ir.IndexPath(append(at[:len(at):len(at)], i)...), Kind: Delete, From: from.Values[i]})
	}
	return dst
}

func (c *Change) String() string {
	switch c.Kind {
	case Insert:
		return fmt.Sprintf("%s %s %s", c.Path, c.Kind, encode.MustString(c.To))
	case Delete:
		return fmt.Sprintf("%s %s %s", c.Path, c.Kind, encode.MustString(c.From))
	case Text:
		return fmt.Sprintf("%s %s %s", c.Path, c.Kind, TextMarkup(c.Diffs))
	default:
		return fmt.Sprintf("%s %s %s -> %s", c.Path, c.Kind, encode.MustString(c.From), encode.MustString(c.To))
	}
}

// TextMarkup writes text edits inline as {-deleted-} and {+inserted+}.
func TextMarkup(diffs []diffpatch.Diff) string {
	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			sb.WriteString("{-" + d.Text + "-}")
		case diffpatch.DiffInsert:
			sb.WriteString("{+" + d.Text + "+}")
		default:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}
