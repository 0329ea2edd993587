package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/basileushq/clubkit/pkg/sanitizer"
)

func TestFormatCardNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"full card number", "4111111111111111", "4111 1111 1111 1111"},
		{"already formatted", "4111 1111 1111 1111", "4111 1111 1111 1111"},
		{"partial input", "41111", "4111 1"},
		{"single block", "4111", "4111"},
		{"strips letters", "4111abcd1111", "4111 1111"},
		{"truncates past 16 digits", "41111111111111112345", "4111 1111 1111 1111"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizer.FormatCardNumber(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, got, sanitizer.FormatCardNumber(got), "transform must be idempotent")
		})
	}
}

func TestFormatExpiry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"four digits", "1234", "12/34"},
		{"already formatted", "12/34", "12/34"},
		{"two digits", "12", "12/"},
		{"one digit", "1", "1"},
		{"strips non-digits", "12-34", "12/34"},
		{"truncates extra digits", "123456", "12/34"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizer.FormatExpiry(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, got, sanitizer.FormatExpiry(got), "transform must be idempotent")
		})
	}
}

func TestFormatCVV(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"three digits", "123", "123"},
		{"four digits", "1234", "1234"},
		{"truncates to four", "12345", "1234"},
		{"strips non-digits", "1a2b3", "123"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizer.FormatCVV(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, got, sanitizer.FormatCVV(got), "transform must be idempotent")
		})
	}
}

func TestMaskCardNumber(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "****1111", sanitizer.MaskCardNumber("4111 1111 1111 1111"))
	assert.Equal(t, "***", sanitizer.MaskCardNumber("123"))
	assert.Equal(t, "", sanitizer.MaskCardNumber(""))
}

func TestNormalizeWhitespace(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Sarah Johnson", sanitizer.NormalizeWhitespace("  Sarah \t Johnson \n"))
	assert.Equal(t, "", sanitizer.NormalizeWhitespace("   "))
}

func TestNormalizeDigits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "4111111111111111", sanitizer.NormalizeDigits("4111 1111 1111 1111"))
	assert.Equal(t, "", sanitizer.NormalizeDigits("abc"))
}
