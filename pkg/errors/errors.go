// Package errors gives figstyle failures a machine-readable [Code].
//
// Helpers return *[Error] values so the CLI can tell a bad figure
// description from a missing file without matching on message text:
//
//	if errors.Is(err, errors.ErrCodeUnsupported) {
//	    // unknown width preset or palette
//	}
//
// Codes:
//   - INVALID_INPUT, INVALID_FORMAT, INVALID_STYLE, INVALID_PATH: rejected arguments
//   - FILE_NOT_FOUND: a description or style sheet that does not exist
//   - UNSUPPORTED: a symbolic value outside a closed set
//
// [Wrap] keeps the cause reachable through the standard errors package:
//
//	err := errors.Wrap(errors.ErrCodeInvalidStyle, tomlErr, "parse style sheet %q", name)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

const (
	ErrCodeInvalidInput  Code = "INVALID_INPUT"  // bad figure, tick or layout parameters
	ErrCodeInvalidFormat Code = "INVALID_FORMAT" // unknown output format
	ErrCodeInvalidStyle  Code = "INVALID_STYLE"  // malformed or unknown style sheet
	ErrCodeInvalidPath   Code = "INVALID_PATH"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"
	ErrCodeUnsupported   Code = "UNSUPPORTED" // width preset, palette or marker outside the known set
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
