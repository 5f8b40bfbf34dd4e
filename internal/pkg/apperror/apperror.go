// Package apperror defines the typed errors the HTTP layer maps onto
// status codes. Services return these instead of raw strings so the
// controller middleware can pick the right response shape.
package apperror

import "fmt"

// ValidationError reports a malformed or semantically invalid request.
// Fields carries per-field messages when they exist; it may be nil for
// whole-request failures such as a duplicate email.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func NewFieldValidationError(message string, fields map[string]string) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

// NotFoundError reports a lookup miss for a named resource.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func NewNotFoundError(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// InvalidTransitionError reports a lifecycle action applied to a return
// whose current status does not permit it.
type InvalidTransitionError struct {
	Message string
}

func (e *InvalidTransitionError) Error() string {
	return e.Message
}

func NewInvalidTransitionError(message string) *InvalidTransitionError {
	return &InvalidTransitionError{Message: message}
}
