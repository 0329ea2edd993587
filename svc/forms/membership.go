package forms

import (
	"time"

	"github.com/basileushq/clubkit/pkg/formflow"
	"github.com/basileushq/clubkit/pkg/validator"
)

// InterestOptions are the selectable areas of interest on the membership
// application.
var InterestOptions = []string{
	"Networking",
	"Professional Development",
	"Event Planning",
	"Public Speaking",
	"Leadership",
	"Entrepreneurship",
	"Technology",
	"Arts & Culture",
}

// Membership returns the membership application form: contact details, at
// least one area of interest and a motivation text of at least 50 characters.
func Membership() formflow.Definition {
	return formflow.Definition{
		Name: "membership_application",
		Fields: []formflow.Field{
			{Name: "fullName"},
			{Name: "email"},
			{Name: "phone"},
			{Name: "profession"},
			{Name: "interests"},
			{Name: "whyJoin"},
		},
		Validate: func(fields map[string]string) error {
			return validator.Apply(
				validator.WithMessage(validator.Required("fullName", fields["fullName"]), "Full name is required"),
				validator.WithMessage(validator.Required("email", fields["email"]), "Email is required"),
				validator.WithMessage(validator.ValidEmail("email", fields["email"]), "Invalid email format"),
				validator.WithMessage(validator.Required("phone", fields["phone"]), "Phone number is required"),
				validator.WithMessage(validator.Required("profession", fields["profession"]), "Profession is required"),
				validator.WithMessage(validator.MinSelected("interests", fields["interests"], 1), "Select at least one interest"),
				validator.WithMessage(validator.Required("whyJoin", fields["whyJoin"]), "This field is required"),
				validator.WithMessage(validator.MinLenTrimmed("whyJoin", fields["whyJoin"], 50), "Please provide at least 50 characters"),
			)
		},
		SubmitLatency: 2 * time.Second,
		SuccessWindow: 3 * time.Second,
	}
}
