package formflow

import (
	"errors"
	"fmt"
)

var (
	// ErrSubmitInFlight is returned when a submit or cancel is attempted
	// while a previous submission is still running or displaying its outcome.
	ErrSubmitInFlight = errors.New("formflow: submission in progress")

	// ErrFieldsLocked is returned when a field update arrives while the
	// machine is submitting or displaying the success outcome.
	ErrFieldsLocked = errors.New("formflow: fields are locked during submission")
)

// UnknownFieldError indicates an update referenced a field the form's
// definition does not declare.
type UnknownFieldError struct {
	Form  string
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("formflow: form %q has no field %q", e.Form, e.Field)
}

func IsUnknownFieldError(err error) bool {
	var e *UnknownFieldError
	return errors.As(err, &e)
}
