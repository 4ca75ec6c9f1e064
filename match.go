package bracket

import (
	"github.com/signadot/bracket/debug"
	"github.com/signadot/bracket/ir"
)

type MatchConfig struct {
	Prefix bool
}

type MatchOpt func(*MatchConfig)

// MatchPrefix lets a pattern branch match a longer branch on its
// leading children.
func MatchPrefix(v bool) MatchOpt {
	return func(c *MatchConfig) { c.Prefix = v }
}

// Match reports whether doc has the shape of pattern.  An Empty
// pattern matches anything, leaves match on equal text, and branches
// match child by child.
func Match(doc, pattern ir.Bracket, opts ...MatchOpt) bool {
	cfg := &MatchConfig{}
	for _, o := range opts {
		o(cfg)
	}
	return match(doc, pattern, cfg)
}

func match(doc, pattern ir.Bracket, cfg *MatchConfig) bool {
	if debug.Match() {
		debug.Logf("match %s against %v\n", doc.Type, pattern)
	}
	if pattern.Type == ir.EmptyType {
		return true
	}
	if doc.Type != pattern.Type {
		return false
	}
	switch pattern.Type {
	case ir.LeafType:
		return doc.String == pattern.String
	case ir.BranchType:
		return matchBranch(doc, pattern, cfg)
	}
	return false
}

func matchBranch(doc, pattern ir.Bracket, cfg *MatchConfig) bool {
	if len(doc.Values) != len(pattern.Values) && !(cfg.Prefix && len(doc.Values) > len(pattern.Values)) {
		return false
	}
	for i := range pattern.Values {
		if !match(doc.Values[i], pattern.Values[i], cfg) {
			return false
		}
	}
	return true
}

// Trim returns the parts of doc that pattern asks for.  Each child of a
// pattern branch takes the first unused child of doc that it matches;
// children of doc that nothing takes are dropped.
func Trim(pattern, doc ir.Bracket) ir.Bracket {
	if pattern.Type != ir.BranchType || doc.Type != ir.BranchType {
		return doc.Clone()
	}
	res := ir.Bracket{Type: ir.BranchType}
	used := make([]bool, len(doc.Values))
	cfg := &MatchConfig{Prefix: true}
	for _, p := range pattern.Values {
		for i, d := range doc.Values {
			if used[i] || !match(d, p, cfg) {
				continue
			}
			res.Values = append(res.Values, Trim(p, d))
			used[i] = true
			break
		}
	}
	return res
}
