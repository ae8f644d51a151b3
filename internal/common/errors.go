// Package common defines shared constants and sentinel errors used across
// loginbox components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors reported before anything touches storage.
	ErrorFieldsRequired   = errors.New("email and password are required")
	ErrorPasswordTooShort = errors.New("password is too short")

	// Auth errors (invalid or malformed cookie token).
	ErrInvalidToken = errors.New("invalid token")
)
