package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/sfmt/encode"
	"github.com/signadot/sfmt/ir"
)

// Sfmt wraps a node so that it is logged in pretty form.
type Sfmt struct{ *ir.Node }

func (y Sfmt) String() string {
	return encode.Pretty(y.Node)
}

// Logf writes a formatted message to stderr. *ir.Node arguments are
// rendered in compact form, Sfmt arguments in pretty form, and JSON-like
// Go values are indented.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			if x == nil {
				args[i] = "<nil node>"
				continue
			}
			args[i] = encode.Compact(x)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
