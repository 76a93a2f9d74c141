package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Eval  bool
	Patch bool
	LSP   bool
	Gops  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("SFMT_DEBUG_PARSE")
	d.Eval = boolEnv("SFMT_DEBUG_EVAL")
	d.Patch = boolEnv("SFMT_DEBUG_PATCH")
	d.LSP = boolEnv("SFMT_DEBUG_LSP")
	d.Gops = boolEnv("SFMT_GOPS")
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
func LSP() bool {
	return d.LSP
}

// Gops reports whether long running commands should start a gops agent.
func Gops() bool {
	return d.Gops
}
