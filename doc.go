// Package bracket holds operations over whole trees: structural
// matching, diffs and JSON patches.
//
// Trees are built by [github.com/signadot/bracket/parse] from text such
// as
//
//	hello (peter dave) "a quoted, leaf" [x {y}]
//
// and written back by [github.com/signadot/bracket/encode].
package bracket
