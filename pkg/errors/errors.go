// Package errors provides structured error types for roughdraw.
//
// Errors carry a machine-readable [Code] so the CLI can print a short message
// and the HTTP service can map failures to status codes without string
// matching:
//
//	err := errors.New(errors.ErrCodeInvalidColor, "bad background %q", s)
//	if errors.Is(err, errors.ErrCodeInvalidColor) {
//	    // report to the user
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidDocument, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code classifies an error for callers that branch on it.
type Code string

// Caller faults. The request or document can be fixed and retried.
const (
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidColor    Code = "INVALID_COLOR"
	ErrCodeInvalidDocument Code = "INVALID_DOCUMENT"
	ErrCodeInvalidPath     Code = "INVALID_PATH"
	ErrCodeInvalidQuality  Code = "INVALID_QUALITY"
	ErrCodeInvalidDPI      Code = "INVALID_DPI"
	ErrCodeFileNotFound    Code = "FILE_NOT_FOUND"
)

const (
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// UserFault reports whether c blames the caller's input rather than the
// renderer.
func (c Code) UserFault() bool {
	switch c {
	case ErrCodeInvalidInput, ErrCodeInvalidFormat, ErrCodeInvalidColor,
		ErrCodeInvalidDocument, ErrCodeInvalidPath, ErrCodeInvalidQuality,
		ErrCodeInvalidDPI, ErrCodeFileNotFound:
		return true
	}
	return false
}

// Error carries a Code, a message meant for users and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	msg := string(e.Code) + ": " + e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an *Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return Wrap(code, nil, format, args...)
}

// Wrap is New with a cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// as finds the outermost *Error in err's chain.
func as(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// Is reports whether the outermost *Error in err's chain has the given code.
func Is(err error, code Code) bool {
	e, ok := as(err)
	return ok && e.Code == code
}

// GetCode returns the code of the outermost *Error, or "" if there is none.
func GetCode(err error) Code {
	if e, ok := as(err); ok {
		return e.Code
	}
	return ""
}

// UserMessage strips the code prefix and cause from *Error values. Other
// errors are returned as their full string.
func UserMessage(err error) string {
	if e, ok := as(err); ok {
		return e.Message
	}
	return err.Error()
}
