package eval

import (
	"os"

	"github.com/signadot/sfmt/encode"
	"github.com/signadot/sfmt/gomap"
	"github.com/signadot/sfmt/ir"

	"github.com/expr-lang/expr"
)

// names bound to functions, never to table keys
var reserved = map[string]bool{
	"doc":     true,
	"get":     true,
	"has":     true,
	"kind":    true,
	"compact": true,
	"getenv":  true,
}

func exprOpts(root *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("get", func(params ...any) (any, error) {
			res, err := ir.Get(root, params[0].(string))
			if err != nil {
				return nil, err
			}
			return gomap.ToAny(res), nil
		},
			new(func(string) any)),
		expr.Function("has", func(params ...any) (any, error) {
			_, err := ir.Get(root, params[0].(string))
			return err == nil, nil
		},
			new(func(string) bool)),
		expr.Function("kind", func(params ...any) (any, error) {
			res, err := ir.Get(root, params[0].(string))
			if err != nil {
				return nil, err
			}
			return res.Kind().String(), nil
		},
			new(func(string) string)),
		expr.Function("compact", func(params ...any) (any, error) {
			res, err := ir.Get(root, params[0].(string))
			if err != nil {
				return nil, err
			}
			return encode.Compact(res), nil
		},
			new(func(string) string)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
