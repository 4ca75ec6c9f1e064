package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/bracket/encode"
	"github.com/signadot/bracket/ir"
)

// Logf writes to stderr.  Trees among args are rendered in bracket
// notation and JSON values are indented.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case ir.Bracket:
			s, err := encode.EncodeString(x)
			if err != nil {
				args[i] = fmt.Sprintf("[raw ir.Bracket] %v", x)
				continue
			}
			args[i] = s
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
