package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/signadot/sfmt/convert"
	"github.com/signadot/sfmt/parse"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	failed, err := checkFiles(cfg, cc.In, cc.Out, inputs(args))
	if err != nil {
		return err
	}
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkFiles checks each file, reading "-" from in, and returns how many
// failed.
func checkFiles(cfg *CheckConfig, in io.Reader, w io.Writer, files []string) (int, error) {
	failed := 0
	for _, file := range files {
		d, err := readInput(in, file)
		if err != nil {
			return failed, err
		}
		if !checkDoc(cfg, w, file, d) {
			failed++
		}
	}
	return failed, nil
}

// checkDoc decodes d and reports a failure to w as file:line:col: message.
func checkDoc(cfg *CheckConfig, w io.Writer, file string, d []byte) bool {
	_, err := convert.Decode(d, cfg.inFormat(file))
	if err == nil {
		return true
	}
	if cfg.Quiet {
		return false
	}
	var perr *parse.Error
	if errors.As(err, &perr) {
		line, col := perr.Pos().LineCol()
		fmt.Fprintf(w, "%s:%d:%d: %v\n", file, line+1, col+1, perr.Err)
		if perr.Expected != "" || perr.Found != "" {
			fmt.Fprintf(w, "\texpected %s, found %s\n", orUnknown(perr.Expected), orUnknown(perr.Found))
		}
		return false
	}
	fmt.Fprintf(w, "%s: %v\n", file, err)
	return false
}

func orUnknown(s string) string {
	if s == "" {
		return "?"
	}
	return s
}
