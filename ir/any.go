package ir

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ToAny maps b onto generic values: a branch is a []any, a leaf a
// string and the empty node nil.
func ToAny(b Bracket) any {
	switch b.Type {
	case BranchType:
		res := make([]any, len(b.Values))
		for i := range b.Values {
			res[i] = ToAny(b.Values[i])
		}
		return res
	case LeafType:
		return b.String
	default:
		return nil
	}
}

// FromAny is the inverse of ToAny.  Scalars other than strings become
// leaves holding their text; maps are rejected since a bracket tree
// has no keys.
func FromAny(v any) (Bracket, error) {
	switch x := v.(type) {
	case nil:
		return Bracket{}, nil
	case []any:
		res := Br()
		for i, xv := range x {
			c, err := FromAny(xv)
			if err != nil {
				return Bracket{}, fmt.Errorf("[%d]: %w", i, err)
			}
			res.AddSibling(c)
		}
		return res, nil
	case string:
		return Lf(x), nil
	case []byte:
		return Lf(string(x)), nil
	case json.Number:
		return Lf(x.String()), nil
	case bool:
		return Lf(strconv.FormatBool(x)), nil
	case float64:
		return Lf(strconv.FormatFloat(x, 'g', -1, 64)), nil
	case float32:
		return Lf(strconv.FormatFloat(float64(x), 'g', -1, 32)), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return Lf(fmt.Sprint(x)), nil
	default:
		return Bracket{}, fmt.Errorf("%w: %T", ErrUnsupported, v)
	}
}
