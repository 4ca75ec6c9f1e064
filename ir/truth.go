package ir

// Truth is false for empty branches, empty leaves and Empty.
func Truth(b Bracket) bool {
	switch b.Type {
	case BranchType:
		return len(b.Values) != 0
	case LeafType:
		return b.String != ""
	default:
		return false
	}
}
