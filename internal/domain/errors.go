// Package domain contains the article catalogue entities, filters and errors.
// Errors here describe business outcomes; the HTTP adapter decides statuses.
package domain

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Sentinels every typed error below unwraps to. Test with errors.Is or the
// Is* helpers.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("validation failed")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("unavailable")
)

// NotFoundError names the missing article, comment, author or tag.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Entity + " not found"
	}

	return fmt.Sprintf("%s with id %q not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewNotFoundError reports that entity id does not exist.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ValidationError maps wire field names to the message shown for them.
type ValidationError struct {
	Fields map[string]string
}

// Error lists the fields in name order so the text is stable.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}

	var b strings.Builder
	b.WriteString(ErrValidation.Error())

	for i, k := range slices.Sorted(maps.Keys(e.Fields)) {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}

		b.WriteString(k + ": " + e.Fields[k])
	}

	return b.String()
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError rejects a single field.
func NewValidationError(field, message string) error {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// NewFieldsValidationError rejects every field in fields, or returns nil
// when there is nothing to report.
func NewFieldsValidationError(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}

	return &ValidationError{Fields: fields}
}

// ForbiddenError is returned when the actor does not own what it tries to
// change. Reason is the message shown to the client.
type ForbiddenError struct {
	Operation string
	Reason    string
}

func (e *ForbiddenError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s is not allowed", e.Operation)
	}

	return e.Reason
}

func (e *ForbiddenError) Unwrap() error { return ErrForbidden }

// NewForbiddenError refuses operation with a client-facing reason.
func NewForbiddenError(operation, reason string) error {
	return &ForbiddenError{Operation: operation, Reason: reason}
}

// NewUnauthorizedError reports an anonymous attempt at a write.
func NewUnauthorizedError(operation string) error {
	return fmt.Errorf("%s requires authentication: %w", operation, ErrUnauthorized)
}

// ConflictError is a write that lost a race and may be retried as is.
type ConflictError struct {
	Entity string
	Reason string
}

func (e *ConflictError) Error() string { return e.Entity + " conflict: " + e.Reason }

func (e *ConflictError) Unwrap() error { return ErrConflict }

// NewConflictError reports a retryable write conflict on entity.
func NewConflictError(entity, reason string) error {
	return &ConflictError{Entity: entity, Reason: reason}
}

// UnavailableError means a backing service (the database) cannot be reached.
type UnavailableError struct {
	Service string
	Reason  string
}

func (e *UnavailableError) Error() string {
	msg := e.Service + " unavailable"
	if e.Reason != "" {
		msg += ": " + e.Reason
	}

	return msg
}

func (e *UnavailableError) Unwrap() error { return ErrUnavailable }

// NewUnavailableError reports that service cannot be reached.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

func IsNotFound(err error) bool     { return errors.Is(err, ErrNotFound) }
func IsConflict(err error) bool     { return errors.Is(err, ErrConflict) }
func IsValidation(err error) bool   { return errors.Is(err, ErrValidation) }
func IsForbidden(err error) bool    { return errors.Is(err, ErrForbidden) }
func IsUnauthorized(err error) bool { return errors.Is(err, ErrUnauthorized) }
func IsUnavailable(err error) bool  { return errors.Is(err, ErrUnavailable) }
