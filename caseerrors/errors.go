package caseerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrInvalidInput indicates a conversion input that is not a text value.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConvention indicates an unknown or unsupported case convention.
	ErrConvention = errors.New("unknown convention")

	// ErrLimit indicates a resource limit was exceeded.
	ErrLimit = errors.New("resource limit exceeded")
)

// InputError represents a conversion input that is not a text value.
// Conversions accept any value so callers can surface caller mistakes
// as errors rather than panics; every non-string value produces this
// error with no partial output.
type InputError struct {
	// Value is the rejected input value (may be nil)
	Value any
	// Message describes the failure
	Message string
}

// NewInputError creates an InputError for a non-string input value.
func NewInputError(value any) *InputError {
	return &InputError{
		Value:   value,
		Message: "Input must be a string",
	}
}

// Error returns a human-readable error message.
func (e *InputError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "invalid input"
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (got %T)", e.Value)
	}
	return msg
}

// Unwrap returns nil as InputError has no underlying cause.
func (e *InputError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// ConventionError represents an unknown or unsupported case convention name.
// This is raised by the CLI, MCP, and library surfaces when a caller names
// a convention that does not exist.
type ConventionError struct {
	// Name is the convention name that failed to resolve
	Name string
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConventionError) Error() string {
	msg := "unknown convention"
	if e.Name != "" {
		msg += ": " + e.Name
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConventionError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConventionError) Is(target error) bool {
	return target == ErrConvention
}

// LimitError represents a resource exhaustion condition.
// This occurs when re-casing a document exceeds configured limits.
type LimitError struct {
	// Resource identifies what limit was exceeded
	// Common values: "nesting_depth", "input_bytes"
	Resource string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *LimitError) Error() string {
	msg := "resource limit exceeded"
	if e.Resource != "" {
		msg += ": " + e.Resource
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as LimitError has no underlying cause.
func (e *LimitError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *LimitError) Is(target error) bool {
	return target == ErrLimit
}
