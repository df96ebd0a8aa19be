package domain

import (
	"fmt"
	"strings"
	"time"
)

// Status is the terminal outcome of a send attempt. It is set exactly once,
// when the notification record is created.
type Status string

const (
	StatusSucceeded Status = "SUCCEEDED"
	StatusFailed    Status = "FAILED"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusSucceeded, StatusFailed:
		return true
	}
	return false
}

func ParseStatusFromString(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", fmt.Errorf("%w: invalid status %q", ErrValidation, s)
	}
	return st, nil
}

// Notification is one entry in the append-only send history. Records are
// never updated after creation; Deleted is a soft-delete flag reserved for
// administrative tooling and excluded from history queries.
type Notification struct {
	ID        string
	UserID    string
	Channel   Channel
	Subject   string
	Body      string
	Status    Status
	Deleted   bool
	CreatedOn time.Time
}

func (n *Notification) Validate() error {
	if strings.TrimSpace(n.UserID) == "" {
		return fmt.Errorf("%w: userId is required", ErrValidation)
	}
	if !n.Channel.IsValid() {
		return fmt.Errorf("%w: invalid channel %q", ErrValidation, n.Channel)
	}
	if !n.Status.IsValid() {
		return fmt.Errorf("%w: invalid status %q", ErrValidation, n.Status)
	}
	return nil
}
