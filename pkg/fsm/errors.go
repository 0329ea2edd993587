package fsm

import (
	"errors"
	"fmt"
)

// NoTransitionError indicates no transition is defined for the state/event
// combination.
type NoTransitionError struct {
	State string
	Event string
}

func (e *NoTransitionError) Error() string {
	return fmt.Sprintf("no transition available from state '%s' for event '%s'", e.State, e.Event)
}

func newNoTransitionError(state, event any) *NoTransitionError {
	return &NoTransitionError{
		State: fmt.Sprintf("%v", state),
		Event: fmt.Sprintf("%v", event),
	}
}

// TransitionRejectedError indicates every candidate transition was blocked by
// its guards.
type TransitionRejectedError struct {
	State string
	Event string
}

func (e *TransitionRejectedError) Error() string {
	return fmt.Sprintf("transition from state '%s' for event '%s' was rejected by guards", e.State, e.Event)
}

func newTransitionRejectedError(state, event any) *TransitionRejectedError {
	return &TransitionRejectedError{
		State: fmt.Sprintf("%v", state),
		Event: fmt.Sprintf("%v", event),
	}
}

func IsNoTransitionError(err error) bool {
	var e *NoTransitionError
	return errors.As(err, &e)
}

func IsTransitionRejectedError(err error) bool {
	var e *TransitionRejectedError
	return errors.As(err, &e)
}
