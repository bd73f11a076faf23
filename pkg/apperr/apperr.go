// Package apperr defines the error taxonomy shared by all domains.
// Handlers translate these into HTTP responses; anything else is a
// server fault.
package apperr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrAuthRequired signals that an operation needs an authenticated
// identity and none was resolved. Checked before any domain logic runs.
var ErrAuthRequired = errors.New("authentication credentials were not provided")

// ErrForbidden signals that the acting identity may not modify the
// target entity (only a recipe's author edits it).
var ErrForbidden = errors.New("you do not have permission to perform this action")

// ValidationError is a field-tagged client input error. Fields maps a
// field name to one or more human-readable messages.
type ValidationError struct {
	Fields map[string][]string
}

func NewValidation() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// Add appends a message for the given field.
func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Fields[field] = append(e.Fields[field], message)
	return e
}

// HasErrors reports whether any field message was recorded.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

// ConflictError signals an unmet state precondition: a duplicate toggle
// row, a missing toggle row, or an empty shopping list.
type ConflictError struct {
	Message string
}

func Conflict(message string) *ConflictError {
	return &ConflictError{Message: message}
}

func (e *ConflictError) Error() string { return e.Message }

// SelfReferenceError is a conflict caused by an operation referencing the
// acting user itself (self-follow). It carries a fixed message and is
// checked before any uniqueness check.
type SelfReferenceError struct {
	Message string
}

func SelfReference(message string) *SelfReferenceError {
	return &SelfReferenceError{Message: message}
}

func (e *SelfReferenceError) Error() string { return e.Message }

// NotFoundError signals an unknown entity id.
type NotFoundError struct {
	Resource string
}

func NotFound(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

// IsValidation reports whether err is a field-tagged validation error.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsConflict reports whether err is a conflict, including self-reference.
func IsConflict(err error) bool {
	var ce *ConflictError
	var se *SelfReferenceError
	return errors.As(err, &ce) || errors.As(err, &se)
}

// IsNotFound reports whether err is an unknown-entity error.
func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}

// IsAuthRequired reports whether err requires an authenticated identity.
func IsAuthRequired(err error) bool {
	return errors.Is(err, ErrAuthRequired)
}

// IsForbidden reports whether err is a permission error.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}
