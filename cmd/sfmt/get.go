package main

import (
	"fmt"
	"io"

	"github.com/signadot/sfmt/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path, err := ir.ParsePath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return eachFile(cfg.MainConfig, cc, inputs(args[1:]), func(w io.Writer, file string, node *ir.Node) error {
		res, err := path.Get(node)
		if err != nil {
			return err
		}
		return cfg.output(w, res)
	})
}
