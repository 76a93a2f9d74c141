package ir

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateKey = errors.New("duplicate key")
	ErrTypeMismatch = errors.New("type mismatch")
	ErrPath         = errors.New("path error")
)

// DuplicateKeyError reports a table key given more than once.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Unwrap() error {
	return ErrDuplicateKey
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s: %q", ErrDuplicateKey, e.Key)
}

// TypeMismatchError is returned by the As* accessors when the node is of
// a different kind than requested.
type TypeMismatchError struct {
	Want, Got Kind
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: want %s, got %s", ErrTypeMismatch, e.Want, e.Got)
}
