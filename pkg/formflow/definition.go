package formflow

import (
	"context"
	"fmt"
	"time"
)

// Field describes one input of a form.
type Field struct {
	// Name identifies the field in the state map and in validation errors.
	Name string
	// Default is the value the field starts with and resets to.
	Default string
	// Transform, when set, is applied to raw input before storage. It must be
	// a pure, idempotent function (e.g. card-number grouping).
	Transform func(string) string
}

// Definition parameterizes a workflow machine with everything that differs
// between forms: the field set, the validation rules and the simulated
// submission timing.
type Definition struct {
	// Name identifies the form in logs and events.
	Name string
	// Fields lists the form's inputs in display order.
	Fields []Field
	// Validate checks the current field values on a submit attempt. It should
	// return validator.ValidationErrors so errors can be surfaced per field.
	Validate func(fields map[string]string) error
	// SubmitLatency is how long the simulated submission effect takes.
	SubmitLatency time.Duration
	// SuccessWindow is how long the succeeded phase is displayed before the
	// form auto-resets. Zero resets immediately on success.
	SuccessWindow time.Duration
}

func (d Definition) check() error {
	if d.Name == "" {
		return fmt.Errorf("formflow: definition requires a name")
	}
	if len(d.Fields) == 0 {
		return fmt.Errorf("formflow: definition %q has no fields", d.Name)
	}
	seen := make(map[string]bool, len(d.Fields))
	for _, f := range d.Fields {
		if f.Name == "" {
			return fmt.Errorf("formflow: definition %q has a field without a name", d.Name)
		}
		if seen[f.Name] {
			return fmt.Errorf("formflow: definition %q declares field %q twice", d.Name, f.Name)
		}
		seen[f.Name] = true
	}
	if d.Validate == nil {
		return fmt.Errorf("formflow: definition %q has no validator", d.Name)
	}
	return nil
}

// SubmitFunc is the injected submission effect. It receives the validated
// field values and reports the outcome; a real transport substitutes here
// without changing the machine.
type SubmitFunc func(ctx context.Context, fields map[string]string) error

// SimulatedSubmit returns a stand-in submission effect that always succeeds
// after the given latency.
func SimulatedSubmit(latency time.Duration) SubmitFunc {
	return func(ctx context.Context, fields map[string]string) error {
		select {
		case <-time.After(latency):
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
