package provider

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	phoneNoiseRe    = regexp.MustCompile(`[\s\-().]`)
	nationalMobile  = regexp.MustCompile(`^[89]\d{8}$`)
	bareDigitsRange = regexp.MustCompile(`^\d{7,15}$`)
)

// NormalizePhoneNumber converts a user-supplied contact string into the
// canonical international digit form the chat API expects: punctuation
// stripped, no leading "+" or "00", national numbers with a leading "0"
// prefixed with countryCode.
func NormalizePhoneNumber(raw, countryCode string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", fmt.Errorf("%w: phone number is empty", ErrInvalidPhone)
	}

	cleaned := phoneNoiseRe.ReplaceAllString(strings.TrimSpace(raw), "")

	cleaned = strings.TrimPrefix(cleaned, "+")
	cleaned = strings.TrimPrefix(cleaned, "00")
	if strings.HasPrefix(cleaned, "0") {
		cleaned = countryCode + cleaned[1:]
	}

	if strings.HasPrefix(cleaned, countryCode) && bareDigitsRange.MatchString(cleaned) {
		return cleaned, nil
	}
	// Bare national mobile numbers without the leading zero.
	if nationalMobile.MatchString(cleaned) {
		return countryCode + cleaned, nil
	}
	if bareDigitsRange.MatchString(cleaned) {
		return cleaned, nil
	}

	return "", fmt.Errorf("%w: %q, expected something like +%s893454943", ErrInvalidPhone, raw, countryCode)
}
