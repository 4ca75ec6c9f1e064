package bracket

import (
	"errors"
	"fmt"

	"github.com/signadot/bracket/debug"
	"github.com/signadot/bracket/ir"
	"github.com/signadot/bracket/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

var ErrPatch = errors.New("cannot patch")

// Patch applies an RFC 6902 JSON patch to the JSON view of doc, where
// branches are arrays and leaves are strings.  Paths in the patch are
// array offsets such as "/1/0".
func Patch(doc ir.Bracket, patch []byte) (ir.Bracket, error) {
	if doc.Type != ir.BranchType {
		return ir.Bracket{}, fmt.Errorf("%w: patch target must be a branch, got %s", ErrPatch, doc.Type)
	}
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return ir.Bracket{}, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if debug.Patch() {
		debug.Logf("applying %d json patch ops to %v\n", len(ops), doc)
	}
	d, err := ir.ToJSON(doc)
	if err != nil {
		return ir.Bracket{}, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return ir.Bracket{}, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	res, err := parse.Parse(out, parse.ParseJSON())
	if err != nil {
		return ir.Bracket{}, fmt.Errorf("%w: result: %w", ErrPatch, err)
	}
	if debug.Patch() {
		debug.Logf("patched: %v\n", res)
	}
	return res, nil
}
