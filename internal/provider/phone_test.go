package provider

import (
	"errors"
	"testing"
)

func TestNormalizePhoneNumber(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		raw  string
		want string
	}{
		{name: "international with plus", raw: "+359893454943", want: "359893454943"},
		{name: "international with 00", raw: "00359893454943", want: "359893454943"},
		{name: "national with leading zero", raw: "0893454943", want: "359893454943"},
		{name: "bare national mobile", raw: "893454943", want: "359893454943"},
		{name: "already canonical", raw: "359893454943", want: "359893454943"},
		{name: "spaces and dashes", raw: "089 345-4943", want: "359893454943"},
		{name: "parens and dots", raw: "(089).345.4943", want: "359893454943"},
		{name: "foreign number kept as is", raw: "+1 (555) 123-4567", want: "15551234567"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := NormalizePhoneNumber(tc.raw, "359")
			if err != nil {
				t.Fatalf("NormalizePhoneNumber(%q) error = %v", tc.raw, err)
			}
			if got != tc.want {
				t.Fatalf("NormalizePhoneNumber(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestNormalizePhoneNumberRejectsGarbage(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "whitespace only", raw: "   "},
		{name: "letters", raw: "not-a-number"},
		{name: "too short", raw: "12345"},
		{name: "too long", raw: "3598934549431234567"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := NormalizePhoneNumber(tc.raw, "359")
			if err == nil {
				t.Fatalf("NormalizePhoneNumber(%q) expected error", tc.raw)
			}
			if !errors.Is(err, ErrInvalidPhone) {
				t.Fatalf("error = %v, want ErrInvalidPhone", err)
			}
		})
	}
}
