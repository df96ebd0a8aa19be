package provider

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPhone marks a contact string that cannot be normalized into a
// chat-api number. It surfaces through SendSMS and is absorbed by the
// dispatcher like any other transport failure.
var ErrInvalidPhone = errors.New("invalid phone number format")

// ProviderError wraps a failed provider call.
type ProviderError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *ProviderError) Error() string {
	if e == nil {
		return "<nil>"
	}

	parts := make([]string, 0, 3)
	parts = append(parts, "provider error")

	if e.StatusCode > 0 {
		parts = append(parts, fmt.Sprintf("status=%d", e.StatusCode))
	}
	if msg := strings.TrimSpace(e.Message); msg != "" {
		parts = append(parts, msg)
	}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}

	return strings.Join(parts, ": ")
}

func (e *ProviderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}
