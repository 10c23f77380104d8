// Package errors provides structured error types for graphview.
//
// Every fatal pipeline failure carries a machine-readable [Code] so the CLI
// can pick an exit status and print a message that names the failing stage.
//
// # Error Codes
//
//   - PARSE_ERROR: the input is not well-formed XML
//   - SCHEMA_ERROR: the input has no top-level graph container
//   - RENDER_IO_ERROR: the rendered document could not be written
//   - INJECTION_ERROR: the rendered document has no insertion anchor
//   - FILE_NOT_FOUND: the input file does not exist
//   - INVALID_*: configuration or flag validation failures
//
// Malformed individual node or edge records are not errors; the extractor
// drops them and keeps going.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeSchema, "no <graph> element in %s", path)
//	if errors.Is(err, errors.ErrCodeSchema) {
//	    // Handle missing container
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeRenderIO, origErr, "write %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input errors
	ErrCodeParse        Code = "PARSE_ERROR"
	ErrCodeSchema       Code = "SCHEMA_ERROR"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Output errors
	ErrCodeRenderIO  Code = "RENDER_IO_ERROR"
	ErrCodeInjection Code = "INJECTION_ERROR"

	// Validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"
	ErrCodeInvalidColor  Code = "INVALID_COLOR"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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

// ExitCode maps an error to a process exit status. A missing input file
// exits with 2, anything else with 1, and nil with 0.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case Is(err, ErrCodeFileNotFound):
		return 2
	default:
		return 1
	}
}
