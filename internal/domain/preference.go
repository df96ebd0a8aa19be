package domain

import (
	"fmt"
	"strings"
	"time"
)

// Channel represents the delivery channel a user prefers.
type Channel string

const (
	ChannelEmail Channel = "EMAIL"
	ChannelSMS   Channel = "SMS"
)

func (c Channel) String() string { return string(c) }

func (c Channel) IsValid() bool {
	switch c {
	case ChannelEmail, ChannelSMS:
		return true
	}
	return false
}

func ParseChannelFromString(s string) (Channel, error) {
	ch := Channel(strings.ToUpper(strings.TrimSpace(s)))
	if !ch.IsValid() {
		return "", fmt.Errorf("%w: invalid channel %q", ErrValidation, s)
	}
	return ch, nil
}

// DetectChannel guesses the channel from the contact string. Anything
// containing "@" looks like a mail address; blank input falls back to
// EMAIL. This is a heuristic, not validation.
func DetectChannel(contactInfo string) Channel {
	trimmed := strings.TrimSpace(contactInfo)
	if trimmed == "" {
		return ChannelEmail
	}
	if strings.Contains(trimmed, "@") {
		return ChannelEmail
	}
	return ChannelSMS
}

// Preference holds a user's notification configuration. There is exactly
// one preference per user; writes go through upsert only.
type Preference struct {
	ID          string
	UserID      string
	Channel     Channel
	Enabled     bool
	ContactInfo string
	CreatedOn   time.Time
	UpdatedOn   time.Time
}

func (p *Preference) Validate() error {
	if strings.TrimSpace(p.UserID) == "" {
		return fmt.Errorf("%w: userId is required", ErrValidation)
	}
	if !p.Channel.IsValid() {
		return fmt.Errorf("%w: invalid channel %q", ErrValidation, p.Channel)
	}
	return nil
}
