// Package apierr defines the typed error taxonomy mapped to HTTP status
// codes at the response boundary.
package apierr

import "fmt"

// NotFoundError reports that a referenced entity does not exist.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// NotFound builds a NotFoundError for a resource name ("Order", "Menu item").
func NotFound(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// ConflictError reports a uniqueness violation.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func Conflict(message string) *ConflictError {
	return &ConflictError{Message: message}
}

// InvalidStatusError reports a status value outside a resource's enumerated
// set. Valid carries the full legal set for the response body.
type InvalidStatusError struct {
	Status string
	Valid  []string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("invalid status %q", e.Status)
}

func InvalidStatus(status string, valid []string) *InvalidStatusError {
	return &InvalidStatusError{Status: status, Valid: valid}
}
