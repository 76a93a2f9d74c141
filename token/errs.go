package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminated = errors.New("unterminated string")
	ErrBadEscape    = errors.New("bad escape")
	ErrNotQuoted    = errors.New("not a quoted string")
)

// Error is a lexical error at a byte offset.
type Error struct {
	Err    error
	Offset int
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Err.Error(), e.Offset)
}

func newErr(err error, off int) *Error {
	return &Error{Err: err, Offset: off}
}
