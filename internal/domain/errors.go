package domain

import "errors"

var (
	// ErrValidation marks malformed or incomplete input.
	ErrValidation = errors.New("validation error")
	// ErrNotFound marks a missing entity, e.g. a user without a preference.
	ErrNotFound = errors.New("not found")
	// ErrDisabled marks a send attempt for a user whose notifications are off.
	ErrDisabled = errors.New("notifications disabled")
)
