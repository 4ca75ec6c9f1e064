package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Eval  bool
	Patch bool
	Match bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("BKT_DEBUG_PARSE")
	d.Eval = boolEnv("BKT_DEBUG_EVAL")
	d.Patch = boolEnv("BKT_DEBUG_PATCH")
	d.Match = boolEnv("BKT_DEBUG_MATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Eval() bool {
	return d.Eval
}
func Patch() bool {
	return d.Patch
}
func Match() bool {
	return d.Match
}
