package main

import (
	"bytes"
	"context"

	"github.com/signadot/sfmt/encode"
	"go.lsp.dev/protocol"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		// nothing to format until the document decodes
		return nil, nil
	}
	formatted, err := formatDocument(doc, &params.Options)
	if err != nil {
		return nil, err
	}
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   doc.lines.end(),
			},
			NewText: formatted,
		},
	}, nil
}

func formatDocument(doc *document, fopts *protocol.FormattingOptions) (string, error) {
	opts := []encode.EncodeOption{encode.EncodePretty(true)}
	if fopts != nil && fopts.InsertSpaces && fopts.TabSize > 0 {
		opts = append(opts, encode.EncodeIndent(int(fopts.TabSize)))
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(doc.node, buf, opts...); err != nil {
		return "", err
	}
	buf.WriteByte('\n')
	return buf.String(), nil
}
