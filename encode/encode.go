package encode

import (
	"io"
	"strings"

	"github.com/signadot/sfmt/ir"
	"github.com/signadot/sfmt/token"
)

// EncState holds the state of a single encoding. It implements
// ir.Visitor.
type EncState struct {
	depth, indent int
	pretty        bool

	Color func(ir.Kind, ColorAttr, string) string

	buf []byte
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes the encoding of node to w. No trailing newline is
// written.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	es.encode(node)
	_, err := w.Write(es.buf)
	return err
}

func (es *EncState) encode(node *ir.Node) {
	// the visitor methods of EncState never fail
	_ = node.Accept(es)
}

func (es *EncState) VisitScalar(text string) error {
	if es.Color == nil {
		es.buf = token.AppendQuote(es.buf, text)
		return nil
	}
	es.buf = append(es.buf, es.Color(ir.ScalarKind, ValueColor, token.Quote(text))...)
	return nil
}

func (es *EncState) VisitList(items []*ir.Node) error {
	if len(items) == 0 {
		es.sep(ir.ListKind, "[]")
		return nil
	}
	es.sep(ir.ListKind, "[")
	es.depth++
	for i, item := range items {
		if i > 0 {
			es.sep(ir.ListKind, ",")
		}
		es.writeNL()
		es.encode(item)
	}
	es.depth--
	es.writeNL()
	es.sep(ir.ListKind, "]")
	return nil
}

func (es *EncState) VisitTable(kvs []ir.KeyVal) error {
	if len(kvs) == 0 {
		es.sep(ir.TableKind, "{}")
		return nil
	}
	es.sep(ir.TableKind, "{")
	es.depth++
	for i := range kvs {
		kv := &kvs[i]
		if i > 0 {
			es.sep(ir.TableKind, ",")
		}
		es.writeNL()
		es.key(kv.Key)
		es.sep(ir.TableKind, "=")
		if es.pretty && isMultiLine(kv.Val) {
			es.depth++
			es.writeNL()
			es.encode(kv.Val)
			es.depth--
			continue
		}
		es.encode(kv.Val)
	}
	es.depth--
	es.writeNL()
	es.sep(ir.TableKind, "}")
	return nil
}

// isMultiLine reports whether the pretty encoding of n spans lines.
func isMultiLine(n *ir.Node) bool {
	return n.Kind() != ir.ScalarKind && n.Len() > 0
}

func (es *EncState) writeNL() {
	if !es.pretty {
		return
	}
	es.buf = append(es.buf, '\n')
	es.buf = append(es.buf, strings.Repeat(" ", es.indent*es.depth)...)
}

func (es *EncState) sep(k ir.Kind, s string) {
	if es.Color != nil {
		s = es.Color(k, SepColor, s)
	}
	es.buf = append(es.buf, s...)
}

func (es *EncState) key(k string) {
	if es.Color == nil {
		es.buf = token.AppendQuote(es.buf, k)
		return
	}
	es.buf = append(es.buf, es.Color(ir.TableKind, KeyColor, token.Quote(k))...)
}
