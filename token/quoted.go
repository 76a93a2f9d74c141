package token

import (
	"unicode/utf16"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// Quote returns v as a quoted scalar: `"` and `\` are backslash escaped,
// bytes below 0x20 become \u00XX and everything else is copied verbatim.
func Quote(v string) string {
	return string(AppendQuote(make([]byte, 0, len(v)+2), v))
}

func AppendQuote(d []byte, v string) []byte {
	d = append(d, '"')
	start := 0
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		d = append(d, v[start:i]...)
		switch c {
		case '"', '\\':
			d = append(d, '\\', c)
		default:
			d = append(d, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
		}
		start = i + 1
	}
	d = append(d, v[start:]...)
	return append(d, '"')
}

// Unquote is the inverse of Quote. It also accepts \uXXXX escapes of any
// code point, with surrogate pairs for those outside the BMP.
func Unquote(v string) (string, error) {
	if v == "" || v[0] != '"' {
		return "", newErr(ErrNotQuoted, 0)
	}
	text, n, err := scanQuoted([]byte(v), 0)
	if err != nil {
		return "", err
	}
	if n != len(v) {
		return "", newErr(ErrNotQuoted, n)
	}
	return text, nil
}

// scanQuoted decodes the quoted string starting at d[off], which must be
// '"'. It returns the text and the offset just past the closing quote.
func scanQuoted(d []byte, off int) (string, int, error) {
	i := off + 1
	start := i
	var buf []byte
	for i < len(d) {
		switch c := d[i]; c {
		case '"':
			if buf == nil {
				return string(d[start:i]), i + 1, nil
			}
			buf = append(buf, d[start:i]...)
			return string(buf), i + 1, nil
		case '\\':
			buf = append(buf, d[start:i]...)
			r, n, err := unescape(d, i)
			if err != nil {
				if err == ErrUnterminated {
					return "", 0, newErr(ErrUnterminated, off)
				}
				return "", 0, newErr(err, i)
			}
			if r < utf8.RuneSelf {
				buf = append(buf, byte(r))
			} else {
				buf = utf8.AppendRune(buf, r)
			}
			i += n
			start = i
		default:
			i++
		}
	}
	return "", 0, newErr(ErrUnterminated, off)
}

// unescape decodes the escape sequence at d[i] == '\\', returning the rune
// and the number of bytes consumed.
func unescape(d []byte, i int) (rune, int, error) {
	if i+1 >= len(d) {
		return 0, 0, ErrUnterminated
	}
	switch d[i+1] {
	case '"', '\\':
		return rune(d[i+1]), 2, nil
	case 'u':
	default:
		return 0, 0, ErrBadEscape
	}
	r, err := hex4(d, i+2)
	if err != nil {
		return 0, 0, err
	}
	if !utf16.IsSurrogate(r) {
		return r, 6, nil
	}
	if r >= 0xdc00 || i+7 >= len(d) || d[i+6] != '\\' || d[i+7] != 'u' {
		return 0, 0, ErrBadEscape
	}
	lo, err := hex4(d, i+8)
	if err != nil {
		return 0, 0, err
	}
	r = utf16.DecodeRune(r, lo)
	if r == utf8.RuneError {
		return 0, 0, ErrBadEscape
	}
	return r, 12, nil
}

func hex4(d []byte, i int) (rune, error) {
	if i+4 > len(d) {
		for _, c := range d[i:] {
			if unhex(c) < 0 {
				return 0, ErrBadEscape
			}
		}
		return 0, ErrUnterminated
	}
	var r rune
	for _, c := range d[i : i+4] {
		v := unhex(c)
		if v < 0 {
			return 0, ErrBadEscape
		}
		r = r<<4 | v
	}
	return r, nil
}

func unhex(c byte) rune {
	switch {
	case '0' <= c && c <= '9':
		return rune(c - '0')
	case 'a' <= c && c <= 'f':
		return rune(c - 'a' + 10)
	case 'A' <= c && c <= 'F':
		return rune(c - 'A' + 10)
	}
	return -1
}
