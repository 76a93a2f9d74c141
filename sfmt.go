// Package sfmt is a small hierarchical text format. A document is a tree
// of scalars (text), lists and tables (string keyed, unordered) with a
// single canonical compact encoding and an indented pretty encoding, both
// of which decode back to the same tree.
//
// The ir, encode and parse packages hold the implementation; this package
// gathers the common entry points.
package sfmt

import (
	"github.com/signadot/sfmt/encode"
	"github.com/signadot/sfmt/ir"
	"github.com/signadot/sfmt/parse"
)

type (
	Node   = ir.Node
	KeyVal = ir.KeyVal
	Kind   = ir.Kind
)

const (
	ScalarKind = ir.ScalarKind
	ListKind   = ir.ListKind
	TableKind  = ir.TableKind
)

// EncodeCompact returns the canonical single-line encoding of n.
func EncodeCompact(n *Node) string {
	return encode.Compact(n)
}

// EncodePretty returns the indented multi-line encoding of n.
func EncodePretty(n *Node) string {
	return encode.Pretty(n)
}

// Decode parses d. Errors are *parse.Error values.
func Decode(d []byte) (*Node, error) {
	return parse.Parse(d)
}

func DecodeString(s string) (*Node, error) {
	return parse.ParseString(s)
}

func Scalar(text string) *Node {
	return ir.Scalar(text)
}

func List(items ...*Node) *Node {
	return ir.List(items...)
}

// Table builds a table from entries, failing with an
// *ir.DuplicateKeyError if a key repeats.
func Table(kvs ...KeyVal) (*Node, error) {
	return ir.Table(kvs...)
}

// TableFromMap builds a table from m. It cannot fail.
func TableFromMap(m map[string]*Node) *Node {
	return ir.FromMap(m)
}

func Equal(a, b *Node) bool {
	return ir.Equal(a, b)
}
