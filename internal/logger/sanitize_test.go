package logger

import (
	"errors"
	"strings"
	"testing"
)

func TestSanitizeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		in     string
		maxLen int
		want   string
	}{
		{name: "empty", in: "", maxLen: 10, want: ""},
		{name: "control characters removed", in: "a\x00b\x1bc", maxLen: 10, want: "abc"},
		{name: "newlines kept", in: "a\nb", maxLen: 10, want: "a\nb"},
		{name: "truncated", in: "abcdef", maxLen: 3, want: "abc..."},
		{name: "invalid utf8 dropped", in: "a\xffb", maxLen: 10, want: "ab"},
		{name: "default length", in: strings.Repeat("x", 5), maxLen: 0, want: "xxxxx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := SanitizeString(tt.in, tt.maxLen); got != tt.want {
				t.Errorf("SanitizeString(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestSanitizeEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "jane@example.com", want: "j***@example.com"},
		{in: " Ola@mail.org ", want: "O***@mail.org"},
		{in: "not-an-email", want: "***"},
		{in: "@example.com", want: "***"},
		{in: "", want: "***"},
	}

	for _, tt := range tests {
		if got := SanitizeEmail(tt.in); got != tt.want {
			t.Errorf("SanitizeEmail(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSanitizeError(t *testing.T) {
	t.Parallel()

	if got := SanitizeError(nil); got != "" {
		t.Errorf("Expected empty string for nil error, got %q", got)
	}
	if got := SanitizeError(errors.New("bad\x00 thing")); got != "bad thing" {
		t.Errorf("Unexpected sanitized error %q", got)
	}
}
