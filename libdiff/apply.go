package libdiff

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/bracket/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

var ErrApply = errors.New("cannot apply change")

// Apply returns doc with cs applied.  cs is expected in the order Diff
// produces it; doc itself is not modified.
func Apply(doc ir.Bracket, cs []Change) (ir.Bracket, error) {
	res := doc.Clone()
	for i := range cs {
		if err := apply(&res, &cs[i]); err != nil {
			return ir.Bracket{}, err
		}
	}
	return res, nil
}

func apply(root *ir.Bracket, c *Change) error {
	at, err := indices(c.Path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrApply, err)
	}
	if len(at) == 0 {
		return applyAt(root, c)
	}
	parent := root
	for _, i := range at[:len(at)-1] {
		if parent.Type != ir.BranchType || i >= len(parent.Values) {
			return fmt.Errorf("%w: %s: no such node", ErrApply, c.Path)
		}
		parent = &parent.Values[i]
	}
	if parent.Type != ir.BranchType {
		return fmt.Errorf("%w: %s: parent is a %s", ErrApply, c.Path, parent.Type)
	}
	last := at[len(at)-1]
	switch c.Kind {
	case Insert:
		if last != len(parent.Values) {
			return fmt.Errorf("%w: %s: insert at %d into %d children", ErrApply, c.Path, last, len(parent.Values))
		}
		parent.Values = append(parent.Values, c.To.Clone())
		return nil
	case Delete:
		// deletions are trailing; the first one truncates the rest
		if last < len(parent.Values) {
			parent.Values = parent.Values[:last]
		}
		return nil
	}
	if last >= len(parent.Values) {
		return fmt.Errorf("%w: %s: no such node", ErrApply, c.Path)
	}
	return applyAt(&parent.Values[last], c)
}

func applyAt(n *ir.Bracket, c *Change) error {
	switch c.Kind {
	case Insert, Replace:
		*n = c.To.Clone()
	case Delete:
		*n = ir.Empty()
	case Text:
		if n.Type != ir.LeafType {
			return fmt.Errorf("%w: %s: text change on a %s", ErrApply, c.Path, n.Type)
		}
		s, err := PatchString(n.String, c.Diffs)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrApply, c.Path, err)
		}
		*n = ir.Lf(s)
	default:
		return fmt.Errorf("%w: %s", ErrApply, c.Kind)
	}
	return nil
}

// PatchString applies text edits to s, checking that deleted and
// retained text match.
func PatchString(s string, diffs []diffpatch.Diff) (string, error) {
	var sb strings.Builder
	rest := s
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			sb.WriteString(d.Text)
		case diffpatch.DiffDelete, diffpatch.DiffEqual:
			if !strings.HasPrefix(rest, d.Text) {
				return "", fmt.Errorf("unexpected text %q, expected %q", rest, d.Text)
			}
			rest = rest[len(d.Text):]
			if d.Type == diffpatch.DiffEqual {
				sb.WriteString(d.Text)
			}
		}
	}
	if rest != "" {
		return "", fmt.Errorf("trailing text %q", rest)
	}
	return sb.String(), nil
}

func indices(p string) ([]int, error) {
	bp, err := ir.ParsePath(p)
	if err != nil {
		return nil, err
	}
	var res []int
	for x := bp; x != nil; x = x.Next {
		switch {
		case x.Index != nil:
			res = append(res, *x.Index)
		case x.IndexAll, x.Subtree:
			return nil, fmt.Errorf("change path %s is not a plain index path", p)
		}
	}
	return res, nil
}
