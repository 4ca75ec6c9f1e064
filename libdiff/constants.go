package libdiff

import "fmt"

type Kind int

const (
	Insert Kind = iota
	Delete
	Replace
	Text
)

func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	case Text:
		return "text"
	default:
		return fmt.Sprintf("<kind %d>", int(k))
	}
}
