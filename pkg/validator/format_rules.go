package validator

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// Permissive web-form email shape: one @, no whitespace, dotted domain.
	// Intentionally looser than RFC 5322 parsing so the same inputs pass here
	// as in the browser-side forms this package backs.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	nonDigitRegex = regexp.MustCompile(`\D`)
)

// ValidEmail validates that a string looks like local@domain.tld.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailRegex.MatchString(strings.TrimSpace(value))
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Pattern validates a value against a pre-compiled regular expression.
func Pattern(field, value string, re *regexp.Regexp, message string) Rule {
	return Rule{
		Check: func() bool {
			return re.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        message,
			TranslationKey: "validation.pattern",
			TranslationValues: map[string]any{
				"field":   field,
				"pattern": re.String(),
			},
		},
	}
}

// MinDigits validates that a value contains at least min digit characters,
// ignoring any formatting (spaces, dashes). Card numbers and CVVs arrive
// pre-formatted for display, so the digit count is what matters.
func MinDigits(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(nonDigitRegex.ReplaceAllString(value, "")) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must contain at least %d digits", min),
			TranslationKey: "validation.min_digits",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}
