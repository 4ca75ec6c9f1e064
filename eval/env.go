package eval

import "github.com/signadot/bracket/ir"

// Env is the set of variables an expression sees for one leaf.
//
//	text   the leaf text
//	index  offset of the leaf in its parent branch
//	depth  number of branches enclosing the leaf
//	path   the leaf's index path, e.g. "$[1][0]"
type Env = map[string]any

func leafEnv(leaf ir.Bracket, at []int) Env {
	index := 0
	if len(at) != 0 {
		index = at[len(at)-1]
	}
	return Env{
		"text":  leaf.String,
		"index": index,
		"depth": len(at),
		"path":  ir.IndexPath(at...),
	}
}

// protoEnv fixes the variable types for the compiler.
var protoEnv = Env{
	"text":  "",
	"index": 0,
	"depth": 0,
	"path":  "",
}
