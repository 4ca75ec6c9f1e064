// Package ir provides the tree representation for bracket notation.
//
// # Node Structure
//
// A Bracket is a recursive tagged union with exactly three shapes,
// selected by its Type field:
//
//   - EmptyType: nothing. The zero Bracket.
//   - LeafType: a text value held in String.
//   - BranchType: an ordered list of children held in Values.
//
// A branch never holds an Empty child.  Children keep input order, and
// order is meaningful: positional access is how trees are queried.
//
// # Building Trees
//
// All shape decisions go through AddSibling:
//
//	b := ir.Empty()
//	b.AddSibling(ir.Lf("a"))  // b is the leaf "a"
//	b.AddSibling(ir.Lf("b"))  // b is the branch ["a" "b"]
//	b.AddSibling(ir.Empty())  // no-op
//
// The parser uses the same primitive, so a tree built by chaining
//
//	ir.Br().SibLeaf("hello").Sib(ir.Br().SibLeaf("peter").SibLeaf("dave"))
//
// is Equal to the parse of `hello(peter,dave)`.
//
// # Navigating Trees
//
// Head, Tail, TailN, TailH and HeadTail never fail: anything missing is
// the Empty node or an exhausted Tail.  A Tail is a window on the
// children of the branch it came from and copies nothing.
//
//	h, t := b.HeadTail()
//	third := t.TailH(1)
//	for c := range t.Children() {
//	    ...
//	}
//
// Paths such as "$[1][0]", "$[*]" and "$..[0]" select nodes by position;
// see GetPath and ListPath.
//
// # Thread Safety
//
// Trees are not synchronised.  Once built they are only read by the
// navigation methods, so sharing a finished tree between goroutines is
// fine as long as nobody calls AddSibling on it.
package ir
