package fsm

import (
	"context"
	"fmt"
	"sync"
)

// Guard evaluates whether a transition should be allowed based on runtime data.
type Guard[S, E comparable] func(ctx context.Context, from S, event E, data any) bool

// Action executes side effects during a transition. Returning an error aborts
// the transition and leaves the machine in its current state.
type Action[S, E comparable] func(ctx context.Context, from, to S, event E, data any) error

// Transition defines a state change triggered by an event, with optional
// guards and actions.
type Transition[S, E comparable] struct {
	From    S
	To      S
	Event   E
	Guards  []Guard[S, E]  // All must pass for the transition to proceed
	Actions []Action[S, E] // Executed in order before the state change
}

// Machine is a finite state machine over comparable state and event types.
// States and events are typically typed strings, so transitions read naturally
// at the call site without interface boxing.
//
// The nested map gives O(1) transition lookups: [from][event][]Transition.
// Safe for concurrent use.
type Machine[S, E comparable] struct {
	initial     S
	current     S
	transitions map[S]map[E][]Transition[S, E]
	mu          sync.RWMutex
}

// New creates a machine starting in the given state.
func New[S, E comparable](initial S, opts ...Option[S, E]) (*Machine[S, E], error) {
	m := &Machine[S, E]{
		initial:     initial,
		current:     initial,
		transitions: make(map[S]map[E][]Transition[S, E]),
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// MustNew creates a machine and panics if any option fails to apply.
// Transition tables are static configuration, so a bad one should prevent
// startup rather than surface at runtime.
func MustNew[S, E comparable](initial S, opts ...Option[S, E]) *Machine[S, E] {
	m, err := New(initial, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create state machine: %v", err))
	}
	return m
}

// Current returns the machine's current state.
func (m *Machine[S, E]) Current() S {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

func (m *Machine[S, E]) addTransition(t Transition[S, E]) {
	if _, ok := m.transitions[t.From]; !ok {
		m.transitions[t.From] = make(map[E][]Transition[S, E])
	}
	// Multiple transitions per from/event pair support guard-based branching.
	m.transitions[t.From][t.Event] = append(m.transitions[t.From][t.Event], t)
}

// Fire attempts to apply the transition for event from the current state.
// Data is passed through to guards and actions untouched.
func (m *Machine[S, E]) Fire(ctx context.Context, event E, data any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	transitions, ok := m.transitions[m.current][event]
	if !ok || len(transitions) == 0 {
		return newNoTransitionError(m.current, event)
	}

	// First transition with passing guards wins, enabling priority ordering.
	var match *Transition[S, E]
	for i := range transitions {
		if m.guardsPass(ctx, &transitions[i], event, data) {
			match = &transitions[i]
			break
		}
	}

	if match == nil {
		return newTransitionRejectedError(m.current, event)
	}

	for _, action := range match.Actions {
		if action == nil {
			continue
		}
		if err := action(ctx, m.current, match.To, event, data); err != nil {
			return fmt.Errorf("action failed: %w", err)
		}
	}

	m.current = match.To
	return nil
}

// CanFire reports whether Fire would find an allowed transition for event,
// without executing any actions.
func (m *Machine[S, E]) CanFire(ctx context.Context, event E, data any) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.transitions[m.current][event] {
		if m.guardsPass(ctx, &m.transitions[m.current][event][i], event, data) {
			return true
		}
	}
	return false
}

func (m *Machine[S, E]) guardsPass(ctx context.Context, t *Transition[S, E], event E, data any) bool {
	for _, guard := range t.Guards {
		if guard != nil && !guard(ctx, m.current, event, data) {
			return false
		}
	}
	return true
}

// Reset returns the machine to its initial state.
func (m *Machine[S, E]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.initial
}
