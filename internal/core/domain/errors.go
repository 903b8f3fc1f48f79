package domain

import "fmt"

// ConflictError reports a uniqueness-constraint violation surfaced at write
// time. Field names the offending column so the HTTP layer can render a
// field-level validation message instead of a generic failure.
type ConflictError struct {
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %q already taken", e.Field, e.Value)
}

// NewConflictError builds a ConflictError for the given field and value.
func NewConflictError(field, value string) *ConflictError {
	return &ConflictError{Field: field, Value: value}
}
