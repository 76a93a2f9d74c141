package main

import (
	"context"

	"github.com/signadot/sfmt/token"
	"go.lsp.dev/protocol"
)

// Indices into the legend advertised in Initialize.
const (
	semString uint32 = iota
	semOperator
	semProperty
)

var semanticLegend = protocol.SemanticTokensLegend{
	TokenTypes: []protocol.SemanticTokenTypes{
		protocol.SemanticTokenString,
		protocol.SemanticTokenOperator,
		protocol.SemanticTokenProperty,
	},
	TokenModifiers: []protocol.SemanticTokenModifiers{},
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{Data: semanticTokens(doc, 0, len(doc.content))}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	start, end := doc.lines.offset(params.Range.Start), doc.lines.offset(params.Range.End)
	return &protocol.SemanticTokens{Data: semanticTokens(doc, start, end)}, nil
}

// semanticTokens encodes the tokens overlapping [start, end) in the
// relative format of the protocol. A string followed by '=' is a key.
// Tokens spanning lines are split per line.
func semanticTokens(doc *document, start, end int) []uint32 {
	data := []uint32{}
	var prevLine, prevChar uint32
	for i := range doc.tokens {
		tok := &doc.tokens[i]
		if tok.End <= start || tok.Offset >= end {
			continue
		}
		var typ uint32
		switch tok.Type {
		case token.TString:
			typ = semString
			if i+1 < len(doc.tokens) && doc.tokens[i+1].Type == token.TEquals {
				typ = semProperty
			}
		case token.TInvalid:
			continue
		default:
			typ = semOperator
		}
		for _, seg := range lineSegments(doc, tok.Offset, tok.End) {
			p := doc.lines.position(seg.Start)
			length := uint32(utf16Len(doc.content[seg.Start:seg.End]))
			if length == 0 {
				continue
			}
			deltaChar := p.Character
			if p.Line == prevLine {
				deltaChar -= prevChar
			}
			data = append(data, p.Line-prevLine, deltaChar, length, typ, 0)
			prevLine, prevChar = p.Line, p.Character
		}
	}
	return data
}

// lineSegments splits [start, end) at newlines.
func lineSegments(doc *document, start, end int) []token.Span {
	var res []token.Span
	segStart := start
	for i := start; i < end; i++ {
		if doc.content[i] == '\n' {
			res = append(res, token.Span{Start: segStart, End: i})
			segStart = i + 1
		}
	}
	return append(res, token.Span{Start: segStart, End: end})
}
