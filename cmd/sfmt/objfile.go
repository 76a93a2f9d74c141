package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/signadot/sfmt/convert"
	"github.com/signadot/sfmt/ir"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/scott-cotton/cli"
)

// readInput reads the named input, or in when path is "-". Inputs ending
// in .gz, .zst or .lz4 are decompressed.
func readInput(in io.Reader, path string) ([]byte, error) {
	r := in
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	dr, closer, err := decompress(path, r)
	if err != nil {
		return nil, fmt.Errorf("error decompressing %q: %w", path, err)
	}
	if closer != nil {
		defer closer()
	}
	d, err := io.ReadAll(dr)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func decompress(path string, r io.Reader) (io.Reader, func(), error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return zr, func() { zr.Close() }, nil
	case ".zst":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return zr, zr.Close, nil
	case ".lz4":
		return lz4.NewReader(r), nil, nil
	}
	return r, nil, nil
}

func getObjFile(cfg *MainConfig, cc *cli.Context, path string) (*ir.Node, error) {
	d, err := readInput(cc.In, path)
	if err != nil {
		return nil, err
	}
	return convert.Decode(d, cfg.inFormat(path))
}

// inputs returns args, or stdin when there are none.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

// getish decodes arg as a document when asString is set, and reads it as
// a file otherwise.
func getish(cfg *MainConfig, asString bool, cc *cli.Context, arg string) (*ir.Node, error) {
	if asString {
		return convert.Decode([]byte(arg), cfg.inFormat(""))
	}
	return getObjFile(cfg, cc, arg)
}
