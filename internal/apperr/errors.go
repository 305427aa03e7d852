// Package apperr defines the error taxonomy shared by services and the HTTP
// error handler.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks bad or missing input.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateEmail occurs when a user with the same email already exists.
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrUserNotFound occurs when no user matches a login email.
	ErrUserNotFound = errors.New("user does not exist")

	// ErrInvalidCredentials occurs when the password does not match the stored hash.
	ErrInvalidCredentials = errors.New("incorrect password")

	// ErrUnauthenticated covers missing, invalid and expired session tokens.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrNotFound occurs when a transaction id is unknown.
	ErrNotFound = errors.New("not found")

	// ErrStoreUnavailable wraps persistence layer failures.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError describes a single rejected input field.
type ValidationError struct {
	Field  string
	Reason string
}

// Validation builds a ValidationError for field.
func Validation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrValidation.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Store wraps a driver failure so that it matches ErrStoreUnavailable while
// keeping the cause for logs.
func Store(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
}
