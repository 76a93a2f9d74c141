package main

import (
	"fmt"
	"io"

	"github.com/signadot/sfmt/encode"
	"github.com/signadot/sfmt/ir"

	"github.com/scott-cotton/cli"
)

func sum(cfg *SumConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sum.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachFile(cfg.MainConfig, cc, inputs(args), func(w io.Writer, file string, node *ir.Node) error {
		_, err := fmt.Fprintf(w, "%s  %s\n", encode.Sum(node), file)
		return err
	})
}
