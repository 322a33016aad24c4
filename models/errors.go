package models

import (
	"errors"
	"fmt"
)

// ErrInvalidInput indicates a payload failed client-side validation.
var ErrInvalidInput = errors.New("invalid input")

// ValidationError represents a single field that failed payload validation.
type ValidationError struct {
	Field   string // Field name that failed validation
	Message string // Validation error message
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// Is implements errors.Is() for comparing with ErrInvalidInput.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Unwrap returns ErrInvalidInput for error chain.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// fieldError is a shorthand constructor used by the Validate methods.
func fieldError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// joinFieldErrors folds all failing fields into one error so a form can
// render every field error from a single Validate call.
func joinFieldErrors(errs ...error) error {
	filtered := errs[:0]
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	if len(filtered) == 0 {
		return nil
	}
	return errors.Join(filtered...)
}
