package main

import (
	"context"

	"github.com/signadot/sfmt/debug"
	"github.com/signadot/sfmt/token"
	"go.lsp.dev/protocol"
)

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) {
	diagnostics := validateDocument(doc)
	if debug.LSP() {
		debug.Logf("%s v%d: %d diagnostics\n", doc.uri, doc.version, len(diagnostics))
	}
	if s.conn == nil {
		return
	}
	err := s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(doc.uri),
		Diagnostics: diagnostics,
	})
	if err != nil && debug.LSP() {
		debug.Logf("publish diagnostics: %v\n", err)
	}
}

func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.err == nil {
		return diagnostics
	}
	perr := doc.err
	return append(diagnostics, protocol.Diagnostic{
		Range:    doc.lines.rangeOf(errorSpan(doc.content, perr.Offset)),
		Severity: protocol.DiagnosticSeverityError,
		Source:   lsName,
		Message:  perr.Message(),
	})
}

// errorSpan covers the token starting at off. Strings that fail to scan
// are covered up to the end of their line.
func errorSpan(content string, off int) token.Span {
	if off >= len(content) {
		return token.Span{Start: len(content), End: len(content)}
	}
	s := token.NewScanner([]byte(content[off:]))
	tok, err := s.Next()
	if err == nil && tok.Type != token.TEOF {
		return token.Span{Start: off + tok.Offset, End: off + tok.End}
	}
	end := off
	for end < len(content) && content[end] != '\n' {
		end++
	}
	return token.Span{Start: off, End: end}
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := newDocument(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.docs.put(doc)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	old := s.docs.get(uri)
	if old == nil {
		return nil
	}
	content := applyChanges(old.content, params.ContentChanges)
	doc := newDocument(uri, content, params.TextDocument.Version)
	s.docs.put(doc)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}
