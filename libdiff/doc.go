// Package libdiff computes and applies differences between bracket
// trees.
//
// A diff is a flat list of [Change] values addressed by index paths
// such as "$[1][0]".  Leaf text changes carry character edits from
// [github.com/sergi/go-diff/diffmatchpatch].
package libdiff
