package valueobjects

import (
	"errors"
	"strings"
)

// Email is a normalized email address. Comparison of identities is always
// done on the normalized form so that case and surrounding whitespace never
// defeat the uniqueness scan.
type Email struct {
	value string
}

// NewEmail normalizes and validates an email address.
func NewEmail(raw string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return Email{}, errors.New("email cannot be empty")
	}
	at := strings.Index(normalized, "@")
	if at <= 0 || at == len(normalized)-1 {
		return Email{}, errors.New("email must contain a local part and a domain")
	}
	return Email{value: normalized}, nil
}

func (e Email) String() string {
	return e.value
}

func (e Email) Equals(other Email) bool {
	return e.value == other.value
}

func (e Email) IsZero() bool {
	return e.value == ""
}

// NormalizeEmail returns the canonical form used for identity comparison.
func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
