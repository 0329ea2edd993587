package forms

import (
	"time"

	"github.com/basileushq/clubkit/pkg/formflow"
	"github.com/basileushq/clubkit/pkg/validator"
)

// Inquiry returns the sponsor/consultation inquiry form.
func Inquiry() formflow.Definition {
	return formflow.Definition{
		Name: "sponsor_inquiry",
		Fields: []formflow.Field{
			{Name: "companyName"},
			{Name: "contactName"},
			{Name: "email"},
			{Name: "phone"},
			{Name: "message"},
		},
		Validate: func(fields map[string]string) error {
			return validator.Apply(
				validator.WithMessage(validator.Required("companyName", fields["companyName"]), "Company name is required"),
				validator.WithMessage(validator.Required("contactName", fields["contactName"]), "Contact name is required"),
				validator.WithMessage(validator.Required("email", fields["email"]), "Email is required"),
				validator.WithMessage(validator.ValidEmail("email", fields["email"]), "Invalid email format"),
				validator.WithMessage(validator.Required("phone", fields["phone"]), "Phone number is required"),
				validator.WithMessage(validator.Required("message", fields["message"]), "Message is required"),
			)
		},
		SubmitLatency: 1500 * time.Millisecond,
		SuccessWindow: 2500 * time.Millisecond,
	}
}
