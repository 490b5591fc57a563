// Package domain holds the errors shared by all Agrosphere services.
// Subpackages carry the per-feature entities (user, connection, chat,
// ledger, notification).
package domain

import "errors"

// Common domain errors. Services wrap these with context; the web layer maps
// them to HTTP status codes via errors.Is.
var (
	// ErrNotFound is returned when a referenced entity is absent.
	ErrNotFound = errors.New("resource not found")
	// ErrConflict is returned when a duplicate would be created and the
	// duplication is meaningful (e.g. a second connection request).
	ErrConflict = errors.New("resource already exists")
	// ErrValidation is returned when input is malformed, missing or out of range.
	ErrValidation = errors.New("validation error")
	// ErrUnauthorized is returned when no authenticated actor is present.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is returned when the actor lacks rights over the target row.
	ErrForbidden = errors.New("forbidden")
)
