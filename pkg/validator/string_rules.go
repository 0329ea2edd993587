package validator

import (
	"fmt"
	"strings"
)

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// MinLenTrimmed validates length after trimming, so padding whitespace cannot
// satisfy a minimum-length requirement.
func MinLenTrimmed(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(strings.TrimSpace(value)) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// Equal validates that two values match, e.g. password confirmation fields.
func Equal[T comparable](field string, value, expected T) Rule {
	return Rule{
		Check: func() bool {
			return value == expected
		},
		Error: ValidationError{
			Field:          field,
			Message:        "values do not match",
			TranslationKey: "validation.equal",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
