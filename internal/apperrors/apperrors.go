// Package apperrors defines the error taxonomy shared by the API layer and
// its clients: validation, not-found, conflict, and internal failures.
package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a referenced entity as absent. Wrap it with context:
//
//	fmt.Errorf("checklist item %s: %w", id, apperrors.ErrNotFound)
var ErrNotFound = errors.New("not found")

// ValidationError reports malformed input, e.g. an invalid status value or
// a missing required field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ConflictError reports an operation blocked by existing state, e.g. a
// duplicate name or a delete with dependents.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// Conflictf builds a ConflictError from a format string.
func Conflictf(format string, args ...interface{}) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// IsNotFound reports whether err wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsConflict reports whether err is (or wraps) a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
