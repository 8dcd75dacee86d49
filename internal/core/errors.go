package core

import (
	"errors"
	"fmt"
)

// ErrorCode classifies engine failures.
type ErrorCode string

const (
	ErrInvalidArgument   ErrorCode = "INVALID_ARGUMENT"
	ErrInconsistentState ErrorCode = "INCONSISTENT_STATE"
)

// Error is returned synchronously by every engine operation. The engine does
// no I/O, so none of these are worth retrying.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func InvalidArgument(format string, args ...any) *Error {
	return &Error{Code: ErrInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// InconsistentState reports a record that breaks the process invariants.
// It signals a programming error rather than bad user input.
func InconsistentState(format string, args ...any) *Error {
	return &Error{Code: ErrInconsistentState, Message: fmt.Sprintf(format, args...)}
}

func IsInvalidArgument(err error) bool {
	return hasCode(err, ErrInvalidArgument)
}

func IsInconsistentState(err error) bool {
	return hasCode(err, ErrInconsistentState)
}

func hasCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}
