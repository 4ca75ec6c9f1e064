package ir

import "slices"

// Bracket is a node of a parsed tree. The zero value is the Empty node.
//
// Which fields are meaningful depends on Type: Values for BranchType,
// String for LeafType, and neither for EmptyType.
type Bracket struct {
	Type   Type
	Values []Bracket
	String string
}

// Empty returns the empty node.  Navigation returns it whenever
// nothing is found.
func Empty() Bracket {
	return Bracket{}
}

// Lf returns a leaf holding s.
func Lf(s string) Bracket {
	return Bracket{Type: LeafType, String: s}
}

// Br returns a branch holding vs, added with AddSibling.
func Br(vs ...Bracket) Bracket {
	res := Bracket{Type: BranchType}
	for _, v := range vs {
		res.AddSibling(v)
	}
	return res
}

func (b Bracket) IsEmpty() bool  { return b.Type == EmptyType }
func (b Bracket) IsLeaf() bool   { return b.Type == LeafType }
func (b Bracket) IsBranch() bool { return b.Type == BranchType }

// Leaf returns the text of a leaf and whether b is a leaf.
func (b Bracket) Leaf() (string, bool) {
	if b.Type != LeafType {
		return "", false
	}
	return b.String, true
}

// MatchStr returns the text of a leaf, or "" for anything else.
func (b Bracket) MatchStr() string {
	s, _ := b.Leaf()
	return s
}

// Len returns the number of direct children of a branch, 0 otherwise.
func (b Bracket) Len() int {
	if b.Type != BranchType {
		return 0
	}
	return len(b.Values)
}

// AddSibling attaches s to b.
//
// An empty s is dropped. An empty b becomes s. A branch b gets s
// appended. A leaf b is replaced by a branch holding its former text
// followed by s.
//
// Appending may write into spare capacity of b.Values, which copies of
// b made by assignment share.  Only the owner of a branch may call
// AddSibling on it; use Sib or Clone to grow a copy.
func (b *Bracket) AddSibling(s Bracket) {
	if s.Type == EmptyType {
		return
	}
	switch b.Type {
	case BranchType:
		b.Values = append(b.Values, s)
	case EmptyType:
		*b = s
	case LeafType:
		*b = Bracket{
			Type:   BranchType,
			Values: []Bracket{Lf(b.String), s},
		}
	}
}

// AddString adds s as a leaf sibling unless s is "".
func (b *Bracket) AddString(s string) {
	if s == "" {
		return
	}
	b.AddSibling(Lf(s))
}

// Sib is the chaining form of AddSibling.
//
//	ir.Br().SibLeaf("hello").Sib(ir.Br().SibLeaf("peter").SibLeaf("dave"))
//
// The receiver's children are never shared with the result.
func (b Bracket) Sib(s Bracket) Bracket {
	b.Values = slices.Clip(b.Values)
	b.AddSibling(s)
	return b
}

// SibLeaf is Sib(Lf(s)).
func (b Bracket) SibLeaf(s string) Bracket {
	return b.Sib(Lf(s))
}

func (b Bracket) Clone() Bracket {
	if b.Type != BranchType {
		return b
	}
	res := Bracket{Type: BranchType}
	if b.Values != nil {
		res.Values = make([]Bracket, len(b.Values))
		for i := range b.Values {
			res.Values[i] = b.Values[i].Clone()
		}
	}
	return res
}
