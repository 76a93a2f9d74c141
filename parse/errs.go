package parse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/sfmt/ir"
	"github.com/signadot/sfmt/token"
)

var (
	ErrParse = errors.New("parse error")

	ErrUnexpectedToken    = errors.New("unexpected token")
	ErrUnterminatedString = token.ErrUnterminated
	ErrBadEscape          = token.ErrBadEscape
	ErrTrailingSeparator  = errors.New("trailing separator")
	ErrDuplicateKey       = ir.ErrDuplicateKey
	ErrTrailingData       = errors.New("trailing data")
	ErrMaxDepth           = errors.New("maximum nesting depth exceeded")
)

// Error is the error returned by Parse. Err is one of the Err* kinds
// above; errors.Is also matches ErrParse for every Error.
type Error struct {
	Err    error
	Offset int

	// Expected describes what the parser was looking for, and Found what
	// it saw instead, when the error is about an unexpected token.
	Expected string
	Found    string

	// Key is the repeated key of a duplicate key error.
	Key string

	doc *token.PosDoc
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return target == ErrParse
}

// Pos returns the position of the error in the parsed document.
func (e *Error) Pos() *token.Pos {
	if e.doc == nil {
		return &token.Pos{I: e.Offset}
	}
	return e.doc.Pos(e.Offset)
}

// Message describes the error without its position.
func (e *Error) Message() string {
	var b strings.Builder
	b.WriteString(e.Err.Error())
	switch {
	case e.Expected != "" && e.Found != "":
		fmt.Fprintf(&b, ": expected %s, found %s", e.Expected, e.Found)
	case e.Expected != "":
		fmt.Fprintf(&b, ": expected %s", e.Expected)
	case e.Found != "":
		fmt.Fprintf(&b, ": %s", e.Found)
	case e.Key != "":
		fmt.Fprintf(&b, " %s", token.Quote(e.Key))
	}
	return b.String()
}

func (e *Error) Error() string {
	return e.Message() + " at " + e.Pos().String()
}
