// Package validator provides rule-based validation for form field values.
//
// Validation is expressed as a list of rules applied together, producing a
// ValidationErrors collection keyed by field name so callers can surface each
// error next to the offending input:
//
//	err := validator.Apply(
//	    validator.Required("name", name),
//	    validator.ValidEmail("email", email),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs != nil {
//	    for _, field := range errs.Fields() {
//	        // render errs.Get(field) next to the field
//	    }
//	}
//
// Rules carry translation keys and values alongside the default English
// message; WithMessage overrides the wording when a form needs its own.
package validator
