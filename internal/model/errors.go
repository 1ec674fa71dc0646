package model

import "errors"

// Sentinel errors shared across the store and service layers. Stores wrap
// them with context, so callers must match with errors.Is.
var (
	// ErrNotFound: the record does not exist or belongs to another user.
	ErrNotFound = errors.New("not found")

	// ErrValidation: the input failed a domain rule (unknown persona,
	// invalid alert status transition, out-of-range level).
	ErrValidation = errors.New("validation error")
)
