package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation    = errors.New("validation failed")
	ErrInvalidID     = errors.New("invalid id")
	ErrNotFound      = errors.New("not found")
	ErrPersistence   = errors.New("persistence failure")
	ErrEmailDispatch = errors.New("email dispatch failed")
)

var (
	ErrStaffNotFound   = fmt.Errorf("staff member %w", ErrNotFound)
	ErrBookingNotFound = fmt.Errorf("booking %w", ErrNotFound)
)

// ValidationError carries a client-facing reason and matches ErrValidation
// under errors.Is.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError formats a reason into a *ValidationError.
func NewValidationError(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
