package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrConflict      = errors.New("conflict")
)

// Submission state-machine guard errors. A guard failure never mutates state.
var (
	ErrStepOrderViolation = errors.New("step order violation")
	ErrSubmissionLocked   = errors.New("submission is locked")
	ErrAlreadyLocked      = errors.New("submission already locked")
	ErrPremisesNotMet     = errors.New("finalize premises not met")
)

// Email pipeline errors.
var (
	ErrTemplateNotFound = errors.New("email template not found")
	ErrMissingVariable  = errors.New("missing template variable")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Fields returns the errors as a field -> message mapping. Multiple messages
// for the same field are joined with "; ".
func (e *ValidationError) Fields() map[string]string {
	out := make(map[string]string, len(e.Errors))
	for _, fe := range e.Errors {
		if prev, ok := out[fe.Field]; ok {
			out[fe.Field] = prev + "; " + fe.Message
			continue
		}
		out[fe.Field] = fe.Message
	}
	return out
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// StepOrderError is returned when a step is saved before its predecessor.
type StepOrderError struct {
	Requested int
	Current   int
}

func (e *StepOrderError) Error() string {
	return fmt.Sprintf("step %d cannot be saved while submission is at step %d", e.Requested, e.Current)
}

func (e *StepOrderError) Unwrap() error { return ErrStepOrderViolation }

// MissingVariableError names a template placeholder with no value in the
// render context.
type MissingVariableError struct {
	Name string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("missing template variable: %s", e.Name)
}

func (e *MissingVariableError) Unwrap() error { return ErrMissingVariable }
