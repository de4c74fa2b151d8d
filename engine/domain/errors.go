package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	ErrInvalidVIN          = errors.New("invalid VIN")
	ErrInvalidLength       = fmt.Errorf("%w: length", ErrInvalidVIN)
	ErrInvalidCharacter    = fmt.Errorf("%w: character", ErrInvalidVIN)
	ErrNotFound            = errors.New("not found")
	ErrProviderUnavailable = errors.New("provider unavailable")
)

// ValidationError wraps a sentinel with the offending field and a reason.
type ValidationError struct {
	Field   string
	Value   string
	Reason  string
	Wrapped error
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("validation: %s: %s (value=%q)", e.Wrapped, e.Field, e.Value)
	}
	return fmt.Sprintf("validation: %s: %s: %s (value=%q)", e.Wrapped, e.Field, e.Reason, e.Value)
}

func (e *ValidationError) Unwrap() error { return e.Wrapped }

// NewValidationError creates a ValidationError.
func NewValidationError(field, value, reason string, wrapped error) *ValidationError {
	return &ValidationError{Field: field, Value: value, Reason: reason, Wrapped: wrapped}
}
