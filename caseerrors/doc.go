// Package caseerrors provides structured error types for the casetools library.
//
// Import path: github.com/erraggy/casetools/caseerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors and implement
// appropriate recovery strategies.
//
// # Error Types
//
// The package provides three core error types:
//
//   - [InputError]: Conversion input that is not a text value
//   - [ConventionError]: Unknown or unsupported case convention names
//   - [LimitError]: Resource exhaustion (input size, nesting depth)
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrInvalidInput]: Matches any [InputError]
//   - [ErrConvention]: Matches any [ConventionError]
//   - [ErrLimit]: Matches any [LimitError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	out, err := caser.ToCamelCase(input)
//	if errors.Is(err, caseerrors.ErrInvalidInput) {
//	    // Caller passed a non-string value
//	}
//
// Extract error details with errors.As():
//
//	var convErr *caseerrors.ConventionError
//	if errors.As(err, &convErr) {
//	    fmt.Printf("unknown convention: %s\n", convErr.Name)
//	}
package caseerrors
