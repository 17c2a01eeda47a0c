// Package common defines shared constants and sentinel errors used across
// the wastetrack client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Storage bootstrap errors.
	ErrUnsupportedSchema = errors.New("unsupported storage schema version")
	ErrDatabaseLocked    = errors.New("database is used by another process")

	// Auth errors. Unknown user and wrong password are deliberately the same value.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotAuthenticated   = errors.New("not authenticated")

	// Validation errors (capture forms, email management, report filters).
	ErrValidation = errors.New("validation error")

	// Reports.
	ErrNoActiveRecipients = errors.New("no active email recipients configured")
)
