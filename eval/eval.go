package eval

import (
	"errors"
	"fmt"
	"go/token"

	"github.com/signadot/sfmt/debug"
	"github.com/signadot/sfmt/gomap"
	"github.com/signadot/sfmt/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrEval = errors.New("eval error")

// Env returns the variables visible to expressions evaluated against
// root: "doc" holds the whole tree, and when root is a table each key that
// is a Go identifier is bound to its value. Values are plain Go values as
// produced by gomap.ToAny.
func Env(root *ir.Node) map[string]any {
	env := map[string]any{}
	if root.Kind() == ir.TableKind {
		kvs, _ := root.AsTable()
		for _, kv := range kvs {
			if token.IsIdentifier(kv.Key) && !reserved[kv.Key] {
				env[kv.Key] = gomap.ToAny(kv.Val)
			}
		}
	}
	env["doc"] = gomap.ToAny(root)
	return env
}

// Eval evaluates expression against root and converts the result to a
// tree. Numbers and booleans produced by the expression become scalars
// holding their literal text.
func Eval(expression string, root *ir.Node) (*ir.Node, error) {
	x, err := run(expression, root)
	if err != nil {
		return nil, err
	}
	res, err := gomap.FromAny(x)
	if err != nil {
		return nil, fmt.Errorf("%w: result of %q: %w", ErrEval, expression, err)
	}
	return res, nil
}

func run(expression string, root *ir.Node) (any, error) {
	env := Env(root)
	opts := append(exprOpts(root), expr.Env(env))
	program, err := expr.Compile(expression, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: compiling %q: %w", ErrEval, expression, err)
	}
	x, err := vm.Run(program, env)
	if err != nil {
		return nil, fmt.Errorf("%w: running %q: %w", ErrEval, expression, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q gave %#v\n", expression, x)
	}
	return x, nil
}
