package main

import (
	"fmt"
	"io"

	"github.com/signadot/sfmt"
	"github.com/signadot/sfmt/ir"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Match.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires a pattern argument", cli.ErrUsage)
	}
	pattern, err := getish(cfg.MainConfig, cfg.String, cc, args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	misses := 0
	err = eachFile(cfg.MainConfig, cc, inputs(args[1:]), func(w io.Writer, file string, node *ir.Node) error {
		if sfmt.Match(node, pattern) {
			_, err := fmt.Fprintln(w, file)
			return err
		}
		misses++
		return nil
	})
	if err != nil {
		return err
	}
	if misses > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
