package eval

import (
	"fmt"

	"github.com/signadot/bracket/debug"
	"github.com/signadot/bracket/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Match is a leaf selected by an expression.
type Match struct {
	Path string
	At   []int
	Leaf ir.Bracket
}

type predicate struct {
	code string
	prg  *vm.Program
}

func compile(doc ir.Bracket, code string) (*predicate, error) {
	prg, err := expr.Compile(code, exprOpts(doc)...)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrCompile, code, err)
	}
	return &predicate{code: code, prg: prg}, nil
}

func (p *predicate) test(leaf ir.Bracket, at []int) (bool, error) {
	env := leafEnv(leaf, at)
	res, err := expr.Run(p.prg, env)
	if err != nil {
		return false, fmt.Errorf("%q at %s: %w", p.code, env["path"], err)
	}
	if debug.Eval() {
		debug.Logf("%q at %s on %q: %v\n", p.code, env["path"], leaf.String, res)
	}
	ok, isBool := res.(bool)
	if !isBool {
		return false, fmt.Errorf("%w: %q gave %T at %s", ErrNotBool, p.code, res, env["path"])
	}
	return ok, nil
}

// Select returns the leaves of doc, in depth first order, for which
// code evaluates to true.
func Select(doc ir.Bracket, code string) ([]Match, error) {
	p, err := compile(doc, code)
	if err != nil {
		return nil, err
	}
	var (
		res     []Match
		testErr error
	)
	ir.Visit(doc, func(n ir.Bracket, at []int) bool {
		if testErr != nil {
			return false
		}
		if n.Type != ir.LeafType {
			return true
		}
		ok, err := p.test(n, at)
		if err != nil {
			testErr = err
			return false
		}
		if ok {
			res = append(res, Match{Path: ir.IndexPath(at...), At: at, Leaf: n})
		}
		return true
	})
	if testErr != nil {
		return nil, testErr
	}
	return res, nil
}

// Filter returns a copy of doc holding only the leaves for which code
// evaluates to true.  Branches are kept even if nothing in them
// survives; a root leaf that fails becomes Empty.
func Filter(doc ir.Bracket, code string) (ir.Bracket, error) {
	p, err := compile(doc, code)
	if err != nil {
		return ir.Bracket{}, err
	}
	res, _, err := filter(p, doc, nil)
	return res, err
}

func filter(p *predicate, n ir.Bracket, at []int) (ir.Bracket, bool, error) {
	switch n.Type {
	case ir.LeafType:
		ok, err := p.test(n, at)
		if err != nil || !ok {
			return ir.Bracket{}, false, err
		}
		return n, true, nil
	case ir.BranchType:
		res := ir.Bracket{Type: ir.BranchType, Values: make([]ir.Bracket, 0, len(n.Values))}
		for i, c := range n.All() {
			fc, keep, err := filter(p, c, append(at[:len(at):len(at)], i))
			if err != nil {
				return ir.Bracket{}, false, err
			}
			if keep {
				res.Values = append(res.Values, fc)
			}
		}
		return res, true, nil
	default:
		return n, true, nil
	}
}
