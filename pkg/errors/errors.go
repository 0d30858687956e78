// Package errors provides structured error types for molviz.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and library
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// The rendering core itself never returns errors to callers (malformed
// notation degrades into a partial structure or an inline error
// graphic); these codes classify parser diagnostics and CLI failures.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidOption, "width must be positive, got %v", w)
//	if errors.Is(err, errors.ErrCodeInvalidOption) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInternal, origErr, "graphviz render failed")
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Notation diagnostics (advisory; parsing never fails outright)
	ErrCodeEmptyNotation     Code = "EMPTY_NOTATION"
	ErrCodeUnknownSymbol     Code = "UNKNOWN_SYMBOL"
	ErrCodeUnclosedRing      Code = "UNCLOSED_RING"
	ErrCodeUnbalancedBranch  Code = "UNBALANCED_BRANCH"
	ErrCodeUnclosedBracket   Code = "UNCLOSED_BRACKET"
	ErrCodeDuplicateRingBond Code = "DUPLICATE_RING_BOND"

	// Input validation errors
	ErrCodeInvalidNotation Code = "INVALID_NOTATION"
	ErrCodeInvalidOption   Code = "INVALID_OPTION"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"

	// Resource errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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
