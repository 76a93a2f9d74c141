package main

import (
	"cmp"
	"context"
	"slices"

	"github.com/signadot/sfmt/ir"
	"go.lsp.dev/protocol"
)

func (s *Server) FoldingRanges(ctx context.Context, params *protocol.FoldingRangeParams) ([]protocol.FoldingRange, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}
	return foldingRanges(doc), nil
}

// foldingRanges folds every list and table spanning several lines, from
// its opening bracket to the line before its closing one.
func foldingRanges(doc *document) []protocol.FoldingRange {
	res := []protocol.FoldingRange{}
	for n, span := range doc.spans {
		if n.Kind() == ir.ScalarKind {
			continue
		}
		r := doc.lines.rangeOf(span)
		if r.End.Line <= r.Start.Line+1 {
			continue
		}
		res = append(res, protocol.FoldingRange{
			StartLine: r.Start.Line,
			EndLine:   r.End.Line - 1,
			Kind:      "region",
		})
	}
	slices.SortFunc(res, func(a, b protocol.FoldingRange) int {
		return cmp.Or(cmp.Compare(a.StartLine, b.StartLine), cmp.Compare(b.EndLine, a.EndLine))
	})
	return res
}
