package validator_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/basileushq/clubkit/pkg/validator"
)

func TestValidEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"plain address", "sarah.j@example.com", true},
		{"subdomain", "user@mail.example.co.uk", true},
		{"no tld dot", "a@b", false},
		{"dotted domain minimal", "a@b.c", true},
		{"missing local part", "@example.com", false},
		{"missing domain", "user@", false},
		{"whitespace inside", "us er@example.com", false},
		{"two at signs", "user@@example.com", false},
		{"empty", "", false},
		{"trims surrounding whitespace", "  user@example.com  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.ValidEmail("email", tt.value).Check())
		})
	}
}

func TestPattern(t *testing.T) {
	t.Parallel()

	expiry := regexp.MustCompile(`^\d{2}/\d{2}$`)

	assert.True(t, validator.Pattern("expiryDate", "12/34", expiry, "Invalid expiry date (MM/YY)").Check())
	assert.False(t, validator.Pattern("expiryDate", "1/34", expiry, "Invalid expiry date (MM/YY)").Check())
	assert.False(t, validator.Pattern("expiryDate", "", expiry, "Invalid expiry date (MM/YY)").Check())

	rule := validator.Pattern("expiryDate", "bad", expiry, "Invalid expiry date (MM/YY)")
	assert.Equal(t, "Invalid expiry date (MM/YY)", rule.Error.Message)
}

func TestMinDigits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		min   int
		want  bool
	}{
		{"formatted card with 16 digits", "4111 1111 1111 1111", 13, true},
		{"formatted card with 12 digits", "4111 1111 1111", 13, false},
		{"unformatted 13 digits", "4111111111111", 13, true},
		{"cvv three digits", "123", 3, true},
		{"cvv two digits", "12", 3, false},
		{"empty", "", 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.MinDigits("cardNumber", tt.value, tt.min).Check())
		})
	}
}
