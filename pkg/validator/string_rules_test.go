package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/basileushq/clubkit/pkg/validator"
)

func TestRequired(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"non-empty string", "Sarah", true},
		{"empty string", "", false},
		{"whitespace only", "   \t\n", false},
		{"padded content", "  Sarah  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := validator.Required("name", tt.value)
			assert.Equal(t, tt.want, rule.Check())
			assert.Equal(t, "name", rule.Error.Field)
		})
	}
}

func TestMinLen(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.MinLen("password", "123456", 6).Check())
	assert.False(t, validator.MinLen("password", "12345", 6).Check())
	assert.Equal(t, "must be at least 6 characters long",
		validator.MinLen("password", "", 6).Error.Message)
}

func TestMaxLen(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.MaxLen("zip", "90210", 10).Check())
	assert.False(t, validator.MaxLen("zip", "90210-123456", 10).Check())
}

func TestMinLenTrimmed(t *testing.T) {
	t.Parallel()

	t.Run("padding does not count toward minimum", func(t *testing.T) {
		padded := "short answer" + "                                        "
		assert.False(t, validator.MinLenTrimmed("whyJoin", padded, 50).Check())
	})

	t.Run("exact length after trim passes", func(t *testing.T) {
		value := "  12345678901234567890123456789012345678901234567890  "
		assert.True(t, validator.MinLenTrimmed("whyJoin", value, 50).Check())
	})
}

func TestEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.Equal("confirmPassword", "hunter22", "hunter22").Check())
	assert.False(t, validator.Equal("confirmPassword", "hunter22", "hunter2").Check())
	assert.Equal(t, "values do not match",
		validator.Equal("confirmPassword", "a", "b").Error.Message)
}
