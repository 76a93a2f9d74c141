package main

import (
	"fmt"
	"io"

	"github.com/signadot/sfmt"
	"github.com/signadot/sfmt/ir"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	p, err := getish(cfg.MainConfig, cfg.String, cc, args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	apply := sfmt.Patch
	if cfg.Merge {
		apply = sfmt.MergePatch
	}
	return eachFile(cfg.MainConfig, cc, inputs(args[1:]), func(w io.Writer, file string, node *ir.Node) error {
		res, err := apply(node, p)
		if err != nil {
			return err
		}
		return cfg.output(w, res)
	})
}
