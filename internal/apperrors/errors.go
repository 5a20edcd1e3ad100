package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller is not authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// AuthErrorKind classifies authentication failures reported by the identity layer.
type AuthErrorKind string

const (
	// AuthKindInvalidCredentials covers a wrong email/password combination.
	AuthKindInvalidCredentials AuthErrorKind = "invalid_credentials"
	// AuthKindProviderFailure covers failures inside the identity layer itself,
	// e.g. an unreadable stored password hash.
	AuthKindProviderFailure AuthErrorKind = "provider_failure"
)

// AuthError is an authentication failure tagged with its kind. Errors that are
// not authentication failures (e.g. the user store being unreachable) must NOT
// be wrapped in AuthError; they are passed through unchanged so infrastructure
// problems never masquerade as credential problems.
type AuthError struct {
	Kind AuthErrorKind
	Err  error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("authentication failed (%s): %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("authentication failed (%s)", e.Kind)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a classified authentication failure.
func NewAuthError(kind AuthErrorKind, err error) *AuthError {
	return &AuthError{Kind: kind, Err: err}
}
