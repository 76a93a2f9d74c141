package main

import (
	"fmt"
	"io"

	"github.com/signadot/sfmt/eval"
	"github.com/signadot/sfmt/ir"

	"github.com/scott-cotton/cli"
)

func evalDocs(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Expand {
		return eachFile(cfg.MainConfig, cc, inputs(args), func(w io.Writer, file string, node *ir.Node) error {
			res, err := eval.Expand(node)
			if err != nil {
				return err
			}
			return cfg.output(w, res)
		})
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	expr := args[0]
	return eachFile(cfg.MainConfig, cc, inputs(args[1:]), func(w io.Writer, file string, node *ir.Node) error {
		res, err := eval.Eval(expr, node)
		if err != nil {
			return err
		}
		return cfg.output(w, res)
	})
}
