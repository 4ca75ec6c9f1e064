package ir

import "fmt"

type Type int

const (
	EmptyType Type = iota
	LeafType
	BranchType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		EmptyType:  "Empty",
		LeafType:   "Leaf",
		BranchType: "Branch",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Empty":  EmptyType,
		"Leaf":   LeafType,
		"Branch": BranchType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		EmptyType,
		LeafType,
		BranchType,
	}
}
