package parse

import (
	"github.com/signadot/sfmt/ir"
	"github.com/signadot/sfmt/token"
)

const DefaultMaxDepth = 10000

type parseOpts struct {
	positions map[*ir.Node]token.Span
	maxDepth  int
}

type ParseOption func(*parseOpts)

// ParsePositions records the byte span of every parsed node in m. Entries
// are only added when parsing succeeds.
func ParsePositions(m map[*ir.Node]token.Span) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

// ParseMaxDepth limits how deeply lists and tables may nest. A value of 0
// removes the limit.
func ParseMaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// GetPositions extracts the positions map from the provided options.
func GetPositions(opts ...ParseOption) map[*ir.Node]token.Span {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts.positions
}
