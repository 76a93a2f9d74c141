package parse

import (
	"errors"
	"fmt"
	"maps"
	"unicode/utf8"

	"github.com/signadot/sfmt/debug"
	"github.com/signadot/sfmt/ir"
	"github.com/signadot/sfmt/token"
)

// Parse decodes a single document. The document must consist of exactly
// one value, optionally surrounded by whitespace.
//
// On failure Parse returns a nil node and an *Error.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{s: token.NewScanner(d), opts: pOpts}
	if pOpts.positions != nil {
		p.spans = make(map[*ir.Node]token.Span)
	}
	res, err := p.value(0)
	if err == nil {
		if off := p.s.SkipSpace(); off < len(d) {
			r, _ := utf8.DecodeRune(d[off:])
			err = &Error{Err: ErrTrailingData, Offset: off, Found: fmt.Sprintf("%q", r)}
		}
	}
	if err != nil {
		perr := asError(err)
		perr.doc = token.NewPosDoc(d)
		if debug.Parse() {
			debug.Logf("parse failed: %v\n", perr)
		}
		return nil, perr
	}
	if pOpts.positions != nil {
		maps.Copy(pOpts.positions, p.spans)
	}
	return res, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

func asError(err error) *Error {
	var perr *Error
	if errors.As(err, &perr) {
		return perr
	}
	var terr *token.Error
	if errors.As(err, &terr) {
		perr = &Error{Err: terr.Err, Offset: terr.Offset}
		if terr.Err == token.ErrUnterminated {
			perr.Expected = "closing '\"'"
		}
		return perr
	}
	return &Error{Err: err}
}

type parser struct {
	s     *token.Scanner
	opts  *parseOpts
	spans map[*ir.Node]token.Span

	la    token.Token
	hasLA bool
}

func (p *parser) next() (token.Token, error) {
	if p.hasLA {
		p.hasLA = false
		return p.la, nil
	}
	return p.s.Next()
}

func (p *parser) peek() (token.Token, error) {
	if !p.hasLA {
		tok, err := p.s.Next()
		if err != nil {
			return tok, err
		}
		p.la = tok
		p.hasLA = true
	}
	return p.la, nil
}

func (p *parser) track(n *ir.Node, start, end int) *ir.Node {
	if p.spans != nil {
		p.spans[n] = token.Span{Start: start, End: end}
	}
	return n
}

func unexpected(tok *token.Token, expected string) error {
	return &Error{
		Err:      ErrUnexpectedToken,
		Offset:   tok.Offset,
		Expected: expected,
		Found:    tok.Describe(),
	}
}

func (p *parser) value(depth int) (*ir.Node, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	switch tok.Type {
	case token.TString:
		return p.track(ir.Scalar(tok.Text), tok.Offset, tok.End), nil
	case token.TLSquare:
		return p.list(&tok, depth+1)
	case token.TLCurl:
		return p.table(&tok, depth+1)
	}
	return nil, unexpected(&tok, "value")
}

func (p *parser) checkDepth(open *token.Token, depth int) error {
	if p.opts.maxDepth > 0 && depth > p.opts.maxDepth {
		return &Error{Err: ErrMaxDepth, Offset: open.Offset}
	}
	return nil
}

// separator consumes the token following an element and reports whether
// it closed the container.
func (p *parser) separator(closeType token.TokenType, expected string) (token.Token, bool, error) {
	tok, err := p.next()
	if err != nil {
		return tok, false, err
	}
	switch tok.Type {
	case closeType:
		return tok, true, nil
	case token.TComma:
		la, err := p.peek()
		if err != nil {
			return tok, false, err
		}
		if la.Type == closeType {
			return tok, false, &Error{Err: ErrTrailingSeparator, Offset: tok.Offset}
		}
		return tok, false, nil
	}
	return tok, false, unexpected(&tok, expected)
}

func (p *parser) list(open *token.Token, depth int) (*ir.Node, error) {
	if err := p.checkDepth(open, depth); err != nil {
		return nil, err
	}
	la, err := p.peek()
	if err != nil {
		return nil, err
	}
	if la.Type == token.TRSquare {
		p.hasLA = false
		return p.track(ir.List(), open.Offset, la.End), nil
	}
	var items []*ir.Node
	for {
		item, err := p.value(depth)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		tok, done, err := p.separator(token.TRSquare, "',' or ']'")
		if err != nil {
			return nil, err
		}
		if done {
			return p.track(ir.FromSlice(items), open.Offset, tok.End), nil
		}
	}
}

func (p *parser) table(open *token.Token, depth int) (*ir.Node, error) {
	if err := p.checkDepth(open, depth); err != nil {
		return nil, err
	}
	la, err := p.peek()
	if err != nil {
		return nil, err
	}
	if la.Type == token.TRCurl {
		p.hasLA = false
		return p.track(ir.FromMap(nil), open.Offset, la.End), nil
	}
	var kvs []ir.KeyVal
	seen := make(map[string]bool)
	for {
		key, err := p.next()
		if err != nil {
			return nil, err
		}
		if key.Type != token.TString {
			return nil, unexpected(&key, "quoted key")
		}
		if seen[key.Text] {
			return nil, &Error{Err: ErrDuplicateKey, Offset: key.Offset, Key: key.Text}
		}
		seen[key.Text] = true
		eq, err := p.next()
		if err != nil {
			return nil, err
		}
		if eq.Type != token.TEquals {
			return nil, unexpected(&eq, "'='")
		}
		val, err := p.value(depth)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: key.Text, Val: val})
		tok, done, err := p.separator(token.TRCurl, "',' or '}'")
		if err != nil {
			return nil, err
		}
		if done {
			res, err := ir.FromKeyVals(kvs)
			if err != nil {
				return nil, err
			}
			return p.track(res, open.Offset, tok.End), nil
		}
	}
}
