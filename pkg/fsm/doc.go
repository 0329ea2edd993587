// Package fsm provides a generic finite state machine with guarded,
// action-bearing transitions.
//
// States and events are type parameters constrained to comparable, so domain
// packages define them as typed strings and get compile-time safety without
// interface boxing:
//
//	type Phase string
//	type event string
//
//	const (
//	    Editing    Phase = "editing"
//	    Submitting Phase = "submitting"
//	)
//
//	machine := fsm.MustNew(Editing,
//	    fsm.WithTransition(Editing, Submitting, eventSubmit,
//	        fsm.WithGuard(allFieldsValid),
//	    ),
//	)
//
//	err := machine.Fire(ctx, eventSubmit, fields)
//
// Guards veto transitions based on runtime data; actions run after guards pass
// and before the state flips, and an action error aborts the transition. Typed
// errors with predicates (IsNoTransitionError, IsTransitionRejectedError) let
// callers distinguish "transition not defined" from "guard rejected".
//
// Machines are safe for concurrent use.
package fsm
