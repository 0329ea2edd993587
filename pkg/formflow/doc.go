// Package formflow implements the lifecycle shared by every interactive form:
// editing -> submitting -> succeeded or failed.
//
// A single generic Machine replaces the per-form copies of this pattern. What
// differs between forms is injected through a Definition: the field set with
// per-field input transforms, the validation rules, and the simulated
// submission timing. A submit attempt runs the validator; failing fields keep
// the machine in editing with per-field errors, a clean pass locks the fields
// and launches the (simulated) submission effect asynchronously. Success is
// displayed for the definition's success window and then the form auto-resets
// to defaults; failure preserves the entered values so the user can correct
// and resubmit.
//
//	machine := formflow.MustNew(forms.Payment())
//	_ = machine.UpdateField("cardNumber", "4111111111111111")
//	err := machine.AttemptSubmit(ctx)
//
// The submission effect is a stand-in for network I/O and always succeeds
// after a fixed latency; a real transport substitutes via WithSubmitFunc
// without changing the machine. Observers follow phase changes through
// Events.
package formflow
