package ir

import "iter"

// All yields the direct children of a branch with their index.
// Anything but a branch yields nothing.
func (b Bracket) All() iter.Seq2[int, Bracket] {
	return func(yield func(int, Bracket) bool) {
		if b.Type != BranchType {
			return
		}
		for i := range b.Values {
			if !yield(i, b.Values[i]) {
				return
			}
		}
	}
}

// Children yields the direct children of a branch.
func (b Bracket) Children() iter.Seq[Bracket] {
	return func(yield func(Bracket) bool) {
		for _, c := range b.All() {
			if !yield(c) {
				return
			}
		}
	}
}

// Iter is a pull style cursor over the direct children of a node.
type Iter struct {
	n Bracket
	i int
}

func NewIter(b Bracket) *Iter {
	return &Iter{n: b}
}

// Next returns the next child, or false once the children run out.
func (it *Iter) Next() (Bracket, bool) {
	if it.n.Type != BranchType || it.i >= len(it.n.Values) {
		return Bracket{}, false
	}
	it.i++
	return it.n.Values[it.i-1], true
}

// Reset rewinds the cursor to the first child.
func (it *Iter) Reset() {
	it.i = 0
}
