package fsm

// Option configures a machine during construction.
type Option[S, E comparable] func(*Machine[S, E]) error

// TransitionOption configures a single transition with guards and actions.
type TransitionOption[S, E comparable] func(*Transition[S, E])

// WithTransition adds a transition from one state to another on an event.
func WithTransition[S, E comparable](from, to S, event E, opts ...TransitionOption[S, E]) Option[S, E] {
	return func(m *Machine[S, E]) error {
		t := Transition[S, E]{From: from, To: to, Event: event}
		for _, opt := range opts {
			opt(&t)
		}
		m.addTransition(t)
		return nil
	}
}

// WithGuard attaches a guard to a transition. Nil guards are ignored.
func WithGuard[S, E comparable](guard Guard[S, E]) TransitionOption[S, E] {
	return func(t *Transition[S, E]) {
		if guard != nil {
			t.Guards = append(t.Guards, guard)
		}
	}
}

// WithAction attaches an action to a transition. Nil actions are ignored.
func WithAction[S, E comparable](action Action[S, E]) TransitionOption[S, E] {
	return func(t *Transition[S, E]) {
		if action != nil {
			t.Actions = append(t.Actions, action)
		}
	}
}
