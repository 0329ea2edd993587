package formflow

import "github.com/basileushq/clubkit/pkg/fsm"

// Phase is the lifecycle state of a form workflow instance.
type Phase string

const (
	// PhaseEditing accepts field updates and submit attempts.
	PhaseEditing Phase = "editing"
	// PhaseSubmitting locks fields while the submission effect runs.
	PhaseSubmitting Phase = "submitting"
	// PhaseSucceeded displays the success outcome until the auto-reset fires.
	PhaseSucceeded Phase = "succeeded"
	// PhaseFailed preserves entered values after a rejected submission.
	PhaseFailed Phase = "failed"
)

type event string

const (
	eventSubmit  event = "submit"
	eventResolve event = "resolve"
	eventReject  event = "reject"
	eventReset   event = "reset"
	eventRecover event = "recover"
)

// newPhaseMachine builds the shared lifecycle every form follows:
// editing -> submitting -> succeeded (auto-reset) or failed (recovers to
// editing with values intact). Reset is reachable from every phase except
// submitting.
func newPhaseMachine() *fsm.Machine[Phase, event] {
	return fsm.MustNew(PhaseEditing,
		fsm.WithTransition[Phase, event](PhaseEditing, PhaseSubmitting, eventSubmit),
		fsm.WithTransition[Phase, event](PhaseSubmitting, PhaseSucceeded, eventResolve),
		fsm.WithTransition[Phase, event](PhaseSubmitting, PhaseFailed, eventReject),
		fsm.WithTransition[Phase, event](PhaseEditing, PhaseEditing, eventReset),
		fsm.WithTransition[Phase, event](PhaseSucceeded, PhaseEditing, eventReset),
		fsm.WithTransition[Phase, event](PhaseFailed, PhaseEditing, eventReset),
		fsm.WithTransition[Phase, event](PhaseFailed, PhaseEditing, eventRecover),
	)
}
