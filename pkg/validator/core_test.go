package validator_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basileushq/clubkit/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("name", "Sarah Johnson"),
			validator.ValidEmail("email", "sarah.j@example.com"),
		)
		assert.NoError(t, err)
	})

	t.Run("collects one error per failing rule", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("name", ""),
			validator.Required("email", ""),
			validator.Required("phone", "555-0100"),
		)
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 2)
		assert.Equal(t, []string{"name", "email"}, errs.Fields())
		assert.True(t, errs.Has("name"))
		assert.False(t, errs.Has("phone"))
	})

	t.Run("first failing rule wins per field", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("email", ""),
			validator.ValidEmail("email", ""),
		)
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{"field is required"}, errs.Get("email"))
	})

	t.Run("error message lists field and message", func(t *testing.T) {
		err := validator.Apply(validator.Required("city", ""))
		assert.EqualError(t, err, "validation failed: city: field is required")
	})
}

func TestWithMessage(t *testing.T) {
	t.Parallel()

	rule := validator.WithMessage(validator.Required("whyJoin", ""), "This field is required")
	assert.Equal(t, "This field is required", rule.Error.Message)
	assert.Equal(t, "validation.required", rule.Error.TranslationKey)
	assert.False(t, rule.Check())
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(nil))
	})

	t.Run("unrelated error", func(t *testing.T) {
		err := fmt.Errorf("boom")
		assert.Nil(t, validator.ExtractValidationErrors(err))
		assert.False(t, validator.IsValidationError(err))
	})

	t.Run("wrapped validation error", func(t *testing.T) {
		inner := validator.Apply(validator.Required("name", ""))
		wrapped := fmt.Errorf("add guest: %w", inner)
		assert.True(t, validator.IsValidationError(wrapped))
		assert.Len(t, validator.ExtractValidationErrors(wrapped), 1)
	})
}

func TestValidationErrorsGet(t *testing.T) {
	t.Parallel()

	errs := validator.ValidationErrors{}
	errs.Add(validator.ValidationError{Field: "email", Message: "Email is required"})
	errs.Add(validator.ValidationError{Field: "email", Message: "Invalid email format"})

	assert.Equal(t, []string{"Email is required", "Invalid email format"}, errs.Get("email"))
	assert.Empty(t, errs.Get("name"))
	assert.False(t, errs.IsEmpty())
	assert.True(t, validator.ValidationErrors{}.IsEmpty())
}
