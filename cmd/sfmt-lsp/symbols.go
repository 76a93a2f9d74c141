package main

import (
	"context"
	"strconv"

	"github.com/signadot/sfmt/ir"
	"go.lsp.dev/protocol"
)

func (s *Server) DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams) ([]interface{}, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}
	syms := documentSymbols(doc, doc.node)
	res := make([]interface{}, len(syms))
	for i := range syms {
		res[i] = syms[i]
	}
	return res, nil
}

// documentSymbols lists the entries of a table or the items of a list,
// recursively.
func documentSymbols(doc *document, n *ir.Node) []protocol.DocumentSymbol {
	var res []protocol.DocumentSymbol
	switch n.Kind() {
	case ir.TableKind:
		kvs, _ := n.AsTable()
		for _, kv := range kvs {
			res = append(res, symbol(doc, kv.Key, kv.Val))
		}
	case ir.ListKind:
		items, _ := n.AsList()
		for i, item := range items {
			res = append(res, symbol(doc, "["+strconv.Itoa(i)+"]", item))
		}
	}
	return res
}

func symbol(doc *document, name string, n *ir.Node) protocol.DocumentSymbol {
	span := doc.spans[n]
	sel := doc.lines.rangeOf(span)
	if key, ok := doc.keys[n]; ok {
		sel = doc.lines.rangeOf(key)
		span.Start = key.Start
	}
	sym := protocol.DocumentSymbol{
		Name:           name,
		Range:          doc.lines.rangeOf(span),
		SelectionRange: sel,
		Children:       documentSymbols(doc, n),
	}
	switch n.Kind() {
	case ir.ScalarKind:
		sym.Kind = protocol.SymbolKindString
		sym.Detail, _ = n.AsScalar()
	case ir.ListKind:
		sym.Kind = protocol.SymbolKindArray
		sym.Detail = strconv.Itoa(n.Len()) + " items"
	case ir.TableKind:
		sym.Kind = protocol.SymbolKindObject
		sym.Detail = strconv.Itoa(n.Len()) + " entries"
	}
	return sym
}
