package ir

import "iter"

// Tail is a view over a run of siblings.  It is either resting on a
// non-empty slice of its parent's children or exhausted; the zero
// value is exhausted.  A Tail never copies: it shares the children of
// the branch it came from and is only valid while that branch is left
// unmodified.
type Tail struct {
	rest []Bracket
}

func tailOf(vs []Bracket) Tail {
	if len(vs) == 0 {
		return Tail{}
	}
	return Tail{rest: vs}
}

// Head returns the first child of a branch, or Empty.
func (b Bracket) Head() Bracket {
	if b.Type != BranchType || len(b.Values) == 0 {
		return Bracket{}
	}
	return b.Values[0]
}

// Tail returns the children after the first.
func (b Bracket) Tail() Tail {
	return b.TailN(1)
}

// TailN returns the children starting at offset n.  Any n outside the
// children yields an exhausted Tail.
func (b Bracket) TailN(n int) Tail {
	if b.Type != BranchType || n < 0 || n >= len(b.Values) {
		return Tail{}
	}
	return tailOf(b.Values[n:])
}

// TailH returns the child at offset n, or Empty.
func (b Bracket) TailH(n int) Bracket {
	if b.Type != BranchType || n < 0 || n >= len(b.Values) {
		return Bracket{}
	}
	return b.Values[n]
}

func (b Bracket) HeadTail() (Bracket, Tail) {
	return b.Head(), b.Tail()
}

func (t Tail) Exhausted() bool {
	return len(t.rest) == 0
}

func (t Tail) Len() int {
	return len(t.rest)
}

// Rest returns the borrowed slice under t, nil when exhausted.
func (t Tail) Rest() []Bracket {
	return t.rest
}

func (t Tail) Head() Bracket {
	if len(t.rest) == 0 {
		return Bracket{}
	}
	return t.rest[0]
}

func (t Tail) Tail() Tail {
	return t.TailN(1)
}

func (t Tail) TailN(n int) Tail {
	if n < 0 || n >= len(t.rest) {
		return Tail{}
	}
	return tailOf(t.rest[n:])
}

func (t Tail) TailH(n int) Bracket {
	if n < 0 || n >= len(t.rest) {
		return Bracket{}
	}
	return t.rest[n]
}

func (t Tail) HeadTail() (Bracket, Tail) {
	return t.Head(), t.Tail()
}

// All yields the remaining siblings with their offset in t.
func (t Tail) All() iter.Seq2[int, Bracket] {
	return func(yield func(int, Bracket) bool) {
		for i := range t.rest {
			if !yield(i, t.rest[i]) {
				return
			}
		}
	}
}

// Children yields the remaining siblings.
func (t Tail) Children() iter.Seq[Bracket] {
	return func(yield func(Bracket) bool) {
		for i := range t.rest {
			if !yield(t.rest[i]) {
				return
			}
		}
	}
}
