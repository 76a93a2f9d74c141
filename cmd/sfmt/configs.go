package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/sfmt/convert"
	"github.com/signadot/sfmt/encode"
	"github.com/signadot/sfmt/format"
	"github.com/signadot/sfmt/ir"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color    bool `cli:"name=color desc='encode with color'"`
	Compact  bool `cli:"name=c aliases=compact desc='output in compact form'"`
	Literals bool `cli:"name=lit desc='write numbers, booleans and null as json or yaml literals'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// inFormat gives the format of the named input: -I if set, else the file
// suffix, else sfmt.
func (cfg *MainConfig) inFormat(path string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	f, _ := format.FromSuffix(path)
	return f
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.SfmtFormat
}

func (cfg *MainConfig) encOpts(w io.Writer) []convert.EncodeOption {
	res := []convert.EncodeOption{
		convert.EncodePretty(!cfg.Compact),
		convert.EncodeLiterals(cfg.Literals),
	}
	if cfg.useColor(w) {
		res = append(res, convert.EncodeSfmt(encode.EncodeColors(encode.NewColors())))
	}
	return res
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name == "color" && opt.Value != nil {
				return false
			}
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// output writes node followed by a newline.
func (cfg *MainConfig) output(w io.Writer, node *ir.Node) error {
	if err := convert.Encode(node, w, cfg.outFormat(), cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err := w.Write([]byte{'\n'})
	return err
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only set the exit status'"`

	Check *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Expand bool `cli:"name=x desc='expand $[expr] references inside the documents instead'"`

	Eval *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Tree    bool `cli:"name=t desc='output the diff as a document'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge  bool `cli:"name=merge desc='apply an RFC 7386 merge patch instead of a JSON patch'"`
	String bool `cli:"name=s desc='patch arg as string'"`

	Patch *cli.Command
}

type MatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='consider match a string argument'"`

	Match *cli.Command
}

type SumConfig struct {
	*MainConfig

	Sum *cli.Command
}
