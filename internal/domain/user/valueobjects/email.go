package valueobjects

import (
	"fmt"
	"net/mail"
	"strings"
)

// Email is a validated, lowercased email address.
type Email struct {
	value string
}

func NewEmail(value string) (*Email, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return nil, fmt.Errorf("email is required")
	}
	if _, err := mail.ParseAddress(value); err != nil {
		return nil, fmt.Errorf("invalid email address: %s", value)
	}
	return &Email{value: value}, nil
}

func (e *Email) String() string {
	return e.value
}

func (e *Email) Equals(other *Email) bool {
	if other == nil {
		return false
	}
	return e.value == other.value
}
