package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/signadot/sfmt/encode"
	"github.com/signadot/sfmt/ir"
	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}
	off := doc.lines.offset(params.Position)
	node, path := doc.nodeAt(off)
	if node == nil {
		return nil, nil
	}
	r := doc.lines.rangeOf(doc.spans[node])
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: buildHoverText(node, path),
		},
		Range: &r,
	}, nil
}

func buildHoverText(node *ir.Node, path string) string {
	if path == "" {
		path = "."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "**%s** `%s`\n\n", node.Kind(), path)
	switch node.Kind() {
	case ir.ScalarKind:
		text, _ := node.AsScalar()
		fmt.Fprintf(&b, "%d bytes", len(text))
		if text != "" && !strings.ContainsAny(text, "`\n") {
			fmt.Fprintf(&b, ": `%s`", text)
		}
	case ir.ListKind:
		fmt.Fprintf(&b, "%d items", node.Len())
	case ir.TableKind:
		fmt.Fprintf(&b, "%d entries", node.Len())
	}
	fmt.Fprintf(&b, "\n\ndigest `%s`", encode.Sum(node).String()[:16])
	return b.String()
}
