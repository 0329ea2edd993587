package validator

import (
	"fmt"
	"strings"
)

// MinSelected validates that a comma-joined multi-select value contains at
// least min non-empty entries. Multi-select form fields store their choices
// as "a, b, c".
func MinSelected(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return countSelected(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("select at least %d", min),
			TranslationKey: "validation.min_selected",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

func countSelected(value string) int {
	n := 0
	for _, part := range strings.Split(value, ",") {
		if strings.TrimSpace(part) != "" {
			n++
		}
	}
	return n
}
