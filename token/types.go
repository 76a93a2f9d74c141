package token

import "fmt"

type TokenType int

const (
	TEOF TokenType = iota
	TString
	TLSquare
	TRSquare
	TLCurl
	TRCurl
	TComma
	TEquals
	TInvalid
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TEOF:     "TEOF",
		TString:  "TString",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TComma:   "TComma",
		TEquals:  "TEquals",
		TInvalid: "TInvalid",
	}[t]
}

// Token is a lexical token. Offset and End delimit its bytes in the
// input. For TString, Text is the unescaped value; for other types it is
// the raw input.
type Token struct {
	Type   TokenType
	Offset int
	End    int
	Text   string
}

// Describe renders the token for error messages.
func (t *Token) Describe() string {
	switch t.Type {
	case TEOF:
		return "end of input"
	case TString:
		return "string " + Quote(t.Text)
	default:
		return fmt.Sprintf("%q", t.Text)
	}
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %q [%d,%d)", t.Type, t.Text, t.Offset, t.End)
}

// Span is a half-open byte range [Start, End) in a document.
type Span struct {
	Start, End int
}

func (s Span) Contains(off int) bool {
	return s.Start <= off && off < s.End
}

func (s Span) Len() int {
	return s.End - s.Start
}
