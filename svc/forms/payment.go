package forms

import (
	"regexp"
	"time"

	"github.com/basileushq/clubkit/pkg/formflow"
	"github.com/basileushq/clubkit/pkg/sanitizer"
	"github.com/basileushq/clubkit/pkg/validator"
)

var expiryRegex = regexp.MustCompile(`^\d{2}/\d{2}$`)

// Payment returns the checkout form. The card number, expiry and CVV fields
// carry keystroke transforms so raw input is masked into display shape before
// it is stored or validated.
func Payment() formflow.Definition {
	return formflow.Definition{
		Name: "payment_checkout",
		Fields: []formflow.Field{
			{Name: "cardNumber", Transform: sanitizer.FormatCardNumber},
			{Name: "cardName"},
			{Name: "expiryDate", Transform: sanitizer.FormatExpiry},
			{Name: "cvv", Transform: sanitizer.FormatCVV},
			{Name: "billingAddress"},
			{Name: "city"},
			{Name: "zipCode"},
		},
		Validate: func(fields map[string]string) error {
			return validator.Apply(
				validator.WithMessage(validator.MinDigits("cardNumber", fields["cardNumber"], 13), "Invalid card number"),
				validator.WithMessage(validator.Required("cardName", fields["cardName"]), "Cardholder name is required"),
				validator.Pattern("expiryDate", fields["expiryDate"], expiryRegex, "Invalid expiry date (MM/YY)"),
				validator.WithMessage(validator.MinDigits("cvv", fields["cvv"], 3), "Invalid CVV"),
				validator.WithMessage(validator.Required("billingAddress", fields["billingAddress"]), "Billing address is required"),
				validator.WithMessage(validator.Required("city", fields["city"]), "City is required"),
				validator.WithMessage(validator.Required("zipCode", fields["zipCode"]), "ZIP code is required"),
			)
		},
		SubmitLatency: 2500 * time.Millisecond,
		SuccessWindow: 2 * time.Second,
	}
}
