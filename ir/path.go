package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path is a parsed position query such as "$[1][0]", "$[*]" or "$..[0]".
type Path struct {
	IndexAll bool
	Index    *int
	Subtree  bool
	Next     *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	x := p
	for x != nil {
		switch {
		case x.Subtree:
			buf.WriteString("..")
		case x.IndexAll:
			buf.WriteString("[*]")
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
		x = x.Next
	}
	return buf.String()
}

// IndexPath returns the path string of a child reached by the given
// offsets from the root.
func IndexPath(is ...int) string {
	var sb strings.Builder
	sb.WriteByte('$')
	for _, i := range is {
		sb.WriteByte('[')
		sb.WriteString(strconv.Itoa(i))
		sb.WriteByte(']')
	}
	return sb.String()
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: path %q should start with '$'", ErrPath, p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrPath, p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	switch frag[0] {
	case '.':
		if len(frag) < 2 || frag[1] != '.' {
			return fmt.Errorf("expected '..'")
		}
		parent.Subtree = true
		next := &Path{}
		if err := parseFrag(frag[2:], next); err != nil {
			return err
		}
		parent.Next = next
		return nil
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, all, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.IndexAll = all
		if !all {
			parent.Index = &index
		}
		if len(frag) == i+2 {
			return nil
		}
		next := &Path{}
		if err := parseFrag(frag[i+2:], next); err != nil {
			return err
		}
		parent.Next = next
		return nil
	default:
		return fmt.Errorf("expected '..' or '['")
	}
}

func parseIndex(is string) (index int, all bool, err error) {
	if len(is) == 1 && is[0] == '*' {
		return 0, true, nil
	}
	u64, err := strconv.ParseUint(is, 10, 31)
	if err != nil {
		return 0, false, err
	}
	return int(u64), false, nil
}

// GetPath returns the node at a path made only of indices.  Like
// TailH, a missing node is Empty rather than an error.
func (b Bracket) GetPath(p string) (Bracket, error) {
	bp, err := ParsePath(p)
	if err != nil {
		return Bracket{}, err
	}
	res := b
	for x := bp; x != nil; x = x.Next {
		switch {
		case x.IndexAll:
			return Bracket{}, fmt.Errorf("%w: any index in get", ErrPath)
		case x.Subtree:
			return Bracket{}, fmt.Errorf("%w: recurse .. in get", ErrPath)
		case x.Index != nil:
			res = res.TailH(*x.Index)
		}
	}
	return res, nil
}

// ListPath appends to dst every node matched by p.
func (b Bracket) ListPath(dst []Bracket, p string) ([]Bracket, error) {
	bp, err := ParsePath(p)
	if err != nil {
		return nil, err
	}
	return b.listPath(dst, bp), nil
}

func (b Bracket) listPath(dst []Bracket, bp *Path) []Bracket {
	if bp == nil {
		return append(dst, b)
	}
	if bp.Subtree {
		Visit(b, func(n Bracket, _ []int) bool {
			dst = n.listPath(dst, bp.Next)
			return true
		})
		return dst
	}
	switch {
	case bp.Index != nil:
		c := b.TailH(*bp.Index)
		if c.Type == EmptyType {
			return dst
		}
		return c.listPath(dst, bp.Next)
	case bp.IndexAll:
		for c := range b.Children() {
			dst = c.listPath(dst, bp.Next)
		}
		return dst
	}
	if bp.Next == nil {
		return append(dst, b)
	}
	return b.listPath(dst, bp.Next)
}

// Visit calls f on b and then on its descendants, depth first, with the
// offsets leading to each node.  Returning false from f skips the
// children of that node.
func Visit(b Bracket, f func(n Bracket, at []int) bool) {
	visit(b, nil, f)
}

func visit(b Bracket, at []int, f func(Bracket, []int) bool) {
	if !f(b, at) {
		return
	}
	for i, c := range b.All() {
		visit(c, append(at[:len(at):len(at)], i), f)
	}
}
