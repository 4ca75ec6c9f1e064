// Package parse parses bracket notation into ir trees.
//
// # Usage
//
//	node, err := parse.ParseString(`hello(peter,dave)`)
//	if err != nil {
//	    return err
//	}
//	// node is the branch ["hello" ["peter" "dave"]]
//
//	// JSON, YAML or CBOR input mapped onto the same tree shape
//	node, err := parse.Parse(data, parse.ParseJSON())
//
// # Notation
//
// Bare tokens are ended by white space or commas, which carry no other
// meaning.  '(', '{' and '[' open a group closed by ')', '}' and ']'
// respectively; all three give the same kind of branch, so which one
// was used is not recorded.  A '"' or '\'' starts quoted text that runs
// to the next matching quote; inside it a backslash makes the next
// character literal.  A quote also ends a bare token directly before
// it, so matt"dave" is two leaves.
//
// The top level starts out empty: one value yields that value itself,
// two or more yield a branch.  Groups always yield a branch, so "()"
// is a branch with no children.
//
// A closing character only means something to the group waiting for
// it.  Anywhere else, ")" or "]" is an ordinary token character.
//
// # Errors
//
// A group or quote that is never closed yields a *token.UnterminatedErr,
// and a backslash ending the input inside quotes yields
// token.ErrTruncatedEscape.  Both are wrapped in ErrParse; no partial
// tree is returned.
//
// # Related Packages
//
//   - github.com/signadot/bracket/ir - tree representation
//   - github.com/signadot/bracket/encode - writes trees back out
//   - github.com/signadot/bracket/token - character classes and positions
package parse
