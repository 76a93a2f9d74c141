package main

import (
	"errors"
	"sync"

	"github.com/signadot/sfmt/ir"
	"github.com/signadot/sfmt/parse"
	"github.com/signadot/sfmt/token"
	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

// document is an immutable snapshot of an open file.
type document struct {
	uri     string
	content string
	version int32
	lines   *lineIndex

	node  *ir.Node
	spans map[*ir.Node]token.Span
	err   *parse.Error

	// tokens holds the scanned tokens up to the first scan error.
	tokens []token.Token
	// keys maps table entry values to the span of their key.
	keys map[*ir.Node]token.Span
}

func newDocument(uri, content string, version int32) *document {
	doc := &document{
		uri:     uri,
		content: content,
		version: version,
		lines:   newLineIndex(content),
		spans:   map[*ir.Node]token.Span{},
		keys:    map[*ir.Node]token.Span{},
	}
	doc.tokens, _ = token.Tokenize([]byte(content))
	node, err := parse.ParseString(content, parse.ParsePositions(doc.spans))
	if err != nil {
		errors.As(err, &doc.err)
		return doc
	}
	doc.node = node
	doc.indexKeys()
	return doc
}

func (doc *document) indexKeys() {
	at := make(map[int]int, len(doc.tokens))
	for i := range doc.tokens {
		at[doc.tokens[i].Offset] = i
	}
	for n, span := range doc.spans {
		i, ok := at[span.Start]
		if !ok || i < 2 {
			continue
		}
		eq, key := &doc.tokens[i-1], &doc.tokens[i-2]
		if eq.Type == token.TEquals && key.Type == token.TString {
			doc.keys[n] = token.Span{Start: key.Offset, End: key.End}
		}
	}
}

// nodeAt returns the innermost node whose span, or whose key, contains
// off, along with its path.
func (doc *document) nodeAt(off int) (*ir.Node, string) {
	var (
		best     *ir.Node
		bestPath string
		bestLen  = -1
	)
	// the walk callback never fails
	_ = ir.Walk(doc.node, func(path string, n *ir.Node) error {
		span, ok := doc.spans[n]
		if !ok {
			return nil
		}
		if key, ok := doc.keys[n]; ok && key.Contains(off) {
			span = key
		}
		if span.Contains(off) && (bestLen < 0 || span.Len() <= bestLen) {
			best, bestPath, bestLen = n, path, span.Len()
		}
		return nil
	})
	return best, bestPath
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(doc *document) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[doc.uri] = doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

// applyChanges applies content changes in order. A change with an empty
// range and no range length replaces the whole text.
func applyChanges(content string, changes []protocol.TextDocumentContentChangeEvent) string {
	for _, change := range changes {
		r := change.Range
		if r == (protocol.Range{}) && change.RangeLength == 0 {
			content = change.Text
			continue
		}
		li := newLineIndex(content)
		start, end := li.offset(r.Start), li.offset(r.End)
		if start > end {
			start, end = end, start
		}
		content = content[:start] + change.Text + content[end:]
	}
	return content
}
