package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgNotFound       = "not found"
	ErrMsgNoUpdateFields = "no fields to update"
	ErrMsgInvalidInput   = "invalid input"
)

// Entity names carried by NotFoundError
const (
	EntityJob     = "job"
	EntityCompany = "company"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrNotFound       = errors.New(ErrMsgNotFound)
	ErrNoUpdateFields = errors.New(ErrMsgNoUpdateFields)
	ErrInvalidInput   = errors.New(ErrMsgInvalidInput)
)

// NotFoundError reports that no row exists for an identifier.
// errors.Is(err, ErrNotFound) holds for every NotFoundError.
type NotFoundError struct {
	Entity string
	ID     any
}

// NewNotFoundError builds a NotFoundError for the given entity and identifier
func NewNotFoundError(entity string, id any) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Entity, ErrMsgNotFound, e.ID)
}

// Is matches ErrNotFound
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
