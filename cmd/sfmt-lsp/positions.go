package main

import (
	"unicode/utf8"

	"github.com/signadot/sfmt/token"
	"go.lsp.dev/protocol"
)

// LSP positions count UTF-16 code units within a line; documents are
// indexed by byte offset. lineIndex converts between the two.
type lineIndex struct {
	content string
	doc     *token.PosDoc
}

func newLineIndex(content string) *lineIndex {
	return &lineIndex{content: content, doc: token.NewPosDoc([]byte(content))}
}

func (li *lineIndex) position(off int) protocol.Position {
	off = max(0, min(off, len(li.content)))
	line, _ := li.doc.LineCol(off)
	start := li.doc.LineStart(line)
	return protocol.Position{
		Line:      uint32(line),
		Character: uint32(utf16Len(li.content[start:off])),
	}
}

func (li *lineIndex) offset(pos protocol.Position) int {
	line := int(pos.Line)
	if line >= li.doc.Lines() {
		return len(li.content)
	}
	start := li.doc.LineStart(line)
	end := start + len(li.doc.Line(line))
	units := int(pos.Character)
	i := start
	for i < end && units > 0 {
		r, n := utf8.DecodeRuneInString(li.content[i:end])
		units -= runeUnits(r)
		i += n
	}
	return i
}

func (li *lineIndex) rangeOf(span token.Span) protocol.Range {
	return protocol.Range{Start: li.position(span.Start), End: li.position(span.End)}
}

// end is the position just past the last byte.
func (li *lineIndex) end() protocol.Position {
	return li.position(len(li.content))
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += runeUnits(r)
	}
	return n
}

func runeUnits(r rune) int {
	if r >= 0x10000 {
		return 2
	}
	return 1
}
