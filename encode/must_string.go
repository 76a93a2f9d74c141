package encode

import "github.com/signadot/sfmt/ir"

// Compact returns the canonical single line encoding of node.
func Compact(node *ir.Node) string {
	es := newEncState(nil)
	es.encode(node)
	return string(es.buf)
}

// Pretty returns the indented multi-line encoding of node.
func Pretty(node *ir.Node) string {
	es := newEncState([]EncodeOption{EncodePretty(true)})
	es.encode(node)
	return string(es.buf)
}
