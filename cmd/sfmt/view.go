package main

import (
	"fmt"
	"io"

	"github.com/signadot/sfmt/ir"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return viewFiles(cfg.MainConfig, cc, args)
}

func convertDocs(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.OutFormat == nil {
		return fmt.Errorf("%w: convert requires -to", cli.ErrUsage)
	}
	return viewFiles(cfg.MainConfig, cc, args)
}

func viewFiles(cfg *MainConfig, cc *cli.Context, args []string) error {
	return eachFile(cfg, cc, inputs(args), func(w io.Writer, file string, node *ir.Node) error {
		return cfg.output(w, node)
	})
}

// eachFile decodes each file in turn and calls fn with it.
func eachFile(cfg *MainConfig, cc *cli.Context, files []string, fn func(io.Writer, string, *ir.Node) error) error {
	for _, file := range files {
		node, err := getObjFile(cfg, cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if err := fn(cc.Out, file, node); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}
