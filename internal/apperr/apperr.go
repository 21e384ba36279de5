package apperr

import (
	"errors"
	"fmt"
)

// Sentinels for the failure classes the HTTP boundary distinguishes with
// errors.Is. Storage failures matching none of these map to a generic 500.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrTimeout    = errors.New("storage timeout")
)

// Error pairs a sentinel with a message safe to return to the client.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }
func (e *Error) Unwrap() error { return e.kind }

func Validationf(format string, args ...interface{}) error {
	return &Error{kind: ErrValidation, msg: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...interface{}) error {
	return &Error{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}
