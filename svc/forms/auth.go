package forms

import (
	"time"

	"github.com/basileushq/clubkit/pkg/formflow"
	"github.com/basileushq/clubkit/pkg/validator"
)

// AuthMode selects between the two variants of the authentication form.
type AuthMode string

const (
	SignIn AuthMode = "sign_in"
	SignUp AuthMode = "sign_up"
)

// Auth returns the authentication form. Sign-up additionally requires a name
// and a matching confirm-password field. The success window is zero: a
// successful authentication hands off immediately instead of showing a
// success panel.
func Auth(mode AuthMode) formflow.Definition {
	fields := []formflow.Field{
		{Name: "email"},
		{Name: "password"},
	}
	if mode == SignUp {
		fields = append(fields,
			formflow.Field{Name: "name"},
			formflow.Field{Name: "confirmPassword"},
		)
	}

	return formflow.Definition{
		Name:   "auth_" + string(mode),
		Fields: fields,
		Validate: func(f map[string]string) error {
			rules := []validator.Rule{
				validator.WithMessage(validator.Required("email", f["email"]), "Email is required"),
				validator.WithMessage(validator.ValidEmail("email", f["email"]), "Email is invalid"),
				validator.WithMessage(validator.Required("password", f["password"]), "Password is required"),
				validator.WithMessage(validator.MinLen("password", f["password"], 6), "Password must be at least 6 characters"),
			}
			if mode == SignUp {
				rules = append(rules,
					validator.WithMessage(validator.Required("name", f["name"]), "Name is required"),
					validator.WithMessage(validator.Equal("confirmPassword", f["confirmPassword"], f["password"]), "Passwords do not match"),
				)
			}
			return validator.Apply(rules...)
		},
		SubmitLatency: 1500 * time.Millisecond,
		SuccessWindow: 0,
	}
}
