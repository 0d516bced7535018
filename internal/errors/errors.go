// Package errors provides custom error types for upstream and
// configuration failures.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrCredentialMissing   = errors.New("ticket service API key missing")
	ErrTopicMissing        = errors.New("notification topic not configured")
	ErrUpstreamUnreachable = errors.New("ticket service unreachable")
	ErrResponseUnparseable = errors.New("ticket service response unparseable")
	ErrConfigInvalid       = errors.New("invalid configuration")
)

// UpstreamStatusError represents a non-success response from the
// ticket service. The status code is preserved so presenters can
// surface it verbatim.
type UpstreamStatusError struct {
	StatusCode int
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("ticket service returned status %d", e.StatusCode)
}

// NewUpstreamStatusError creates a new UpstreamStatusError.
func NewUpstreamStatusError(statusCode int) *UpstreamStatusError {
	return &UpstreamStatusError{StatusCode: statusCode}
}

// FieldParseError represents a single event whose date or time
// literal could not be parsed. It applies to one event only and never
// invalidates the rest of a listing.
type FieldParseError struct {
	EventID string
	Field   string
	Value   string
	Err     error
}

func (e *FieldParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("event %s: bad %s %q: %v", e.EventID, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("event %s: bad %s %q", e.EventID, e.Field, e.Value)
}

func (e *FieldParseError) Unwrap() error {
	return e.Err
}

// NewFieldParseError creates a new FieldParseError.
func NewFieldParseError(eventID, field, value string, err error) *FieldParseError {
	return &FieldParseError{
		EventID: eventID,
		Field:   field,
		Value:   value,
		Err:     err,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
