package token

import "unicode/utf8"

// Scanner produces tokens from a document one at a time.
type Scanner struct {
	d   []byte
	off int
}

func NewScanner(d []byte) *Scanner {
	return &Scanner{d: d}
}

// Offset returns the offset of the next unread byte.
func (s *Scanner) Offset() int {
	return s.off
}

// SkipSpace advances past insignificant whitespace and returns the new
// offset.
func (s *Scanner) SkipSpace() int {
	for s.off < len(s.d) && IsSpace(s.d[s.off]) {
		s.off++
	}
	return s.off
}

func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// Next returns the next token. Bytes that start no token are returned as
// a TInvalid token holding one rune; only malformed strings are errors.
func (s *Scanner) Next() (Token, error) {
	off := s.SkipSpace()
	if off == len(s.d) {
		return Token{Type: TEOF, Offset: off, End: off}, nil
	}
	c := s.d[off]
	tt := TInvalid
	switch c {
	case '"':
		text, end, err := scanQuoted(s.d, off)
		if err != nil {
			return Token{}, err
		}
		s.off = end
		return Token{Type: TString, Offset: off, End: end, Text: text}, nil
	case '[':
		tt = TLSquare
	case ']':
		tt = TRSquare
	case '{':
		tt = TLCurl
	case '}':
		tt = TRCurl
	case ',':
		tt = TComma
	case '=':
		tt = TEquals
	}
	n := 1
	if tt == TInvalid && c >= utf8.RuneSelf {
		_, n = utf8.DecodeRune(s.d[off:])
	}
	s.off = off + n
	return Token{Type: tt, Offset: off, End: s.off, Text: string(s.d[off:s.off])}, nil
}

// Tokenize scans all of d. Scanning stops at the first error; TInvalid
// tokens are included in the result. The final TEOF token is not.
func Tokenize(d []byte) ([]Token, error) {
	s := NewScanner(d)
	var res []Token
	for {
		tok, err := s.Next()
		if err != nil {
			return res, err
		}
		if tok.Type == TEOF {
			return res, nil
		}
		res = append(res, tok)
	}
}
