package formflow

import (
	"log/slog"
	"time"
)

// Option configures a Machine during construction.
type Option func(*Machine)

// WithSubmitFunc replaces the simulated submission effect, e.g. with a real
// transport. The effect must honor the same two-outcome contract: nil for
// success, an error for failure.
func WithSubmitFunc(fn SubmitFunc) Option {
	return func(m *Machine) {
		if fn != nil {
			m.submit = fn
		}
	}
}

// WithCancelOnReset controls whether cancelling or closing the form
// suppresses pending outcome timers. The default (false) matches the observed
// behavior of letting a stale timer fire; it is then dropped harmlessly when
// it finds the machine in another phase.
func WithCancelOnReset(cancel bool) Option {
	return func(m *Machine) {
		m.cancelOnReset = cancel
	}
}

// WithLogger sets the logger for phase transitions and dropped timers.
func WithLogger(log *slog.Logger) Option {
	return func(m *Machine) {
		if log != nil {
			m.log = log
		}
	}
}

// WithAfterFunc replaces the timer used for the success display window.
// Intended for tests that need deterministic control over auto-reset timing.
func WithAfterFunc(after func(d time.Duration, fn func())) Option {
	return func(m *Machine) {
		if after != nil {
			m.after = after
		}
	}
}
