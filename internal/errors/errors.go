// Package errors provides the error builder used across the service.
// Errors are created through NewError/WithError, enriched with hints and
// reportable details, and finally marked with one of the sentinel errors
// below so that callers can branch on the error kind with errors.Is.
package errors

import (
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// Sentinel errors used as marks
var (
	ErrValidation       = errors.New("validation error")
	ErrNotFound         = errors.New("not found")
	ErrInternal         = errors.New("internal error")
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrInvalidQuantity marks a negative distance, energy, city distance or passage count
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrInconsistentRange marks a city distance larger than the total distance
	ErrInconsistentRange = errors.New("inconsistent range")
)

// ErrorBuilder accumulates context for an error before it is marked
type ErrorBuilder struct {
	err     error
	details map[string]interface{}
}

// NewError starts a builder for a new error with the given message
func NewError(msg string) *ErrorBuilder {
	return &ErrorBuilder{err: errors.New(msg)}
}

// NewErrorf starts a builder for a new formatted error
func NewErrorf(format string, args ...interface{}) *ErrorBuilder {
	return &ErrorBuilder{err: errors.Newf(format, args...)}
}

// WithError starts a builder wrapping an existing error
func WithError(err error) *ErrorBuilder {
	if err == nil {
		err = errors.New("unknown error")
	}
	return &ErrorBuilder{err: err}
}

// WithHint adds a user facing hint to the error
func (b *ErrorBuilder) WithHint(hint string) *ErrorBuilder {
	b.err = errors.WithHint(b.err, hint)
	return b
}

// WithHintf adds a formatted user facing hint to the error
func (b *ErrorBuilder) WithHintf(format string, args ...interface{}) *ErrorBuilder {
	b.err = errors.WithHintf(b.err, format, args...)
	return b
}

// WithReportableDetails attaches key/value details that are safe to return to clients
func (b *ErrorBuilder) WithReportableDetails(details map[string]interface{}) *ErrorBuilder {
	if b.details == nil {
		b.details = make(map[string]interface{}, len(details))
	}
	b.details = lo.Assign(b.details, details)
	return b
}

// Mark finalizes the error and marks it with the given sentinel
func (b *ErrorBuilder) Mark(reference error) error {
	err := b.err
	if len(b.details) > 0 {
		err = &detailedError{cause: err, details: b.details}
	}
	return errors.Mark(err, reference)
}

// detailedError carries reportable details along the error chain
type detailedError struct {
	cause   error
	details map[string]interface{}
}

func (e *detailedError) Error() string { return e.cause.Error() }

func (e *detailedError) Unwrap() error { return e.cause }

// GetDetails returns the reportable details attached to err, merged from
// the outermost to the innermost wrapper.
func GetDetails(err error) map[string]interface{} {
	out := map[string]interface{}{}
	for err != nil {
		var de *detailedError
		if !errors.As(err, &de) {
			break
		}
		for k, v := range de.details {
			if _, exists := out[k]; !exists {
				out[k] = v
			}
		}
		err = de.cause
	}
	return out
}

// GetHints returns every hint attached to err
func GetHints(err error) []string {
	return errors.GetAllHints(err)
}

// Is reports whether err is marked with or wraps reference
func Is(err, reference error) bool {
	return errors.Is(err, reference)
}

// IsValidation reports whether err is any kind of input validation failure
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInconsistentRange)
}

// IsNotFound reports whether err is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
