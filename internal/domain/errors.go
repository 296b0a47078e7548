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
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")

	// ErrRuleViolation is returned when an operation's own precondition
	// fails, independently of access checks (e.g. reopening an open ticket).
	ErrRuleViolation = errors.New("domain rule violation")
)

// ErrTicketNotVisible is the single error returned when a ticket does not exist
// or the actor's scope hides it. Callers must not distinguish the two cases.
var ErrTicketNotVisible = fmt.Errorf("ticket not found or access denied: %w", ErrNotFound)

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
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

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

// RoleError reports that the actor's role is not permitted for an operation.
type RoleError struct {
	Operation string
	Role      UserRole
}

func (e *RoleError) Error() string {
	return fmt.Sprintf("%s: role %q is not permitted", e.Operation, e.Role)
}

func (e *RoleError) Unwrap() error { return ErrForbidden }
