package formflow

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/basileushq/clubkit/pkg/broadcast"
	"github.com/basileushq/clubkit/pkg/fsm"
	"github.com/basileushq/clubkit/pkg/validator"
)

// PhaseChange is broadcast to observers whenever a machine changes phase.
type PhaseChange struct {
	FormID uuid.UUID
	Form   string
	From   Phase
	To     Phase
}

// Snapshot is a point-in-time copy of a machine's observable state. Mutating
// it has no effect on the machine.
type Snapshot struct {
	Fields map[string]string
	Errors validator.ValidationErrors
	Phase  Phase
	// Err holds the submission error while the machine is in the failed
	// phase; nil otherwise.
	Err error
}

// Machine drives a single form instance through the shared lifecycle:
// editing -> submitting -> succeeded/failed. The validation rules, field
// transforms and submission effect are injected through the Definition and
// options, so every form in the system shares this one implementation.
//
// All methods are safe for concurrent use. Roster-style operations never
// block: AttemptSubmit returns as soon as the submission effect is launched.
type Machine struct {
	id     uuid.UUID
	def    Definition
	phases *fsm.Machine[Phase, event]
	submit SubmitFunc
	after  func(time.Duration, func())
	log    *slog.Logger
	bus    *broadcast.MemoryBroadcaster[PhaseChange]

	cancelOnReset bool

	mu         sync.Mutex
	fields     map[string]string
	errs       validator.ValidationErrors
	submitErr  error
	generation uint64
}

// New creates a machine for the given form definition with fields at their
// defaults and the phase at editing.
func New(def Definition, opts ...Option) (*Machine, error) {
	if err := def.check(); err != nil {
		return nil, err
	}

	m := &Machine{
		id:     uuid.New(),
		def:    def,
		phases: newPhaseMachine(),
		after:  func(d time.Duration, fn func()) { time.AfterFunc(d, fn) },
		log:    slog.New(slog.DiscardHandler),
		bus:    broadcast.NewMemoryBroadcaster[PhaseChange](8),
		fields: make(map[string]string, len(def.Fields)),
	}
	for _, f := range def.Fields {
		m.fields[f.Name] = f.Default
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.submit == nil {
		m.submit = SimulatedSubmit(def.SubmitLatency)
	}

	return m, nil
}

// MustNew creates a machine and panics on an invalid definition. Definitions
// are static configuration, so a bad one should fail at startup.
func MustNew(def Definition, opts ...Option) *Machine {
	m, err := New(def, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// ID returns the machine instance identifier.
func (m *Machine) ID() uuid.UUID {
	return m.id
}

// Name returns the form definition name.
func (m *Machine) Name() string {
	return m.def.Name
}

// Phase returns the current lifecycle phase.
func (m *Machine) Phase() Phase {
	return m.phases.Current()
}

// Snapshot returns a copy of the machine's observable state.
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Snapshot{
		Fields: m.copyFieldsLocked(),
		Errors: slices.Clone(m.errs),
		Phase:  m.phases.Current(),
		Err:    m.submitErr,
	}
}

// Events subscribes to phase changes. Cancelling ctx ends the subscription.
func (m *Machine) Events(ctx context.Context) broadcast.Subscriber[PhaseChange] {
	return m.bus.Subscribe(ctx)
}

// Close releases the machine's event subscribers. Pending timers are
// suppressed when the machine was built with WithCancelOnReset.
func (m *Machine) Close() error {
	m.mu.Lock()
	if m.cancelOnReset {
		m.generation++
	}
	m.mu.Unlock()
	return m.bus.Close()
}

// UpdateField stores a new raw value for the named field, applying the
// field's transform first. Editing a field clears any validation error
// attached to it. Updating a failed form returns it to editing with the other
// values intact. Fields are locked while a submission is in flight or the
// success outcome is displayed.
func (m *Machine) UpdateField(name, raw string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	spec, err := m.editableFieldLocked(name)
	if err != nil {
		return err
	}

	value := raw
	if spec.Transform != nil {
		value = spec.Transform(raw)
	}
	m.fields[name] = value
	m.clearFieldErrorLocked(name)
	m.recoverIfFailedLocked()
	return nil
}

// ToggleChoice adds or removes an option from a multi-select field, stored as
// a comma-joined list. Locking and error-clearing behave as in UpdateField.
func (m *Machine) ToggleChoice(name, option string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.editableFieldLocked(name); err != nil {
		return err
	}

	var selected []string
	for _, part := range strings.Split(m.fields[name], ",") {
		if v := strings.TrimSpace(part); v != "" {
			selected = append(selected, v)
		}
	}

	if i := slices.Index(selected, option); i >= 0 {
		selected = slices.Delete(selected, i, i+1)
	} else {
		selected = append(selected, option)
	}

	m.fields[name] = strings.Join(selected, ", ")
	m.clearFieldErrorLocked(name)
	m.recoverIfFailedLocked()
	return nil
}

// AttemptSubmit validates the current field values and, if they pass, moves
// the machine to submitting and launches the submission effect. On validation
// failure the machine stays in editing and the returned error is the
// validator.ValidationErrors for the failing fields. The call never blocks on
// the effect itself.
func (m *Machine) AttemptSubmit(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.phases.Current() {
	case PhaseSubmitting, PhaseSucceeded:
		return ErrSubmitInFlight
	case PhaseFailed:
		if err := m.fireLocked(ctx, eventRecover); err != nil {
			return err
		}
		m.submitErr = nil
	}

	fields := m.copyFieldsLocked()
	if err := m.def.Validate(fields); err != nil {
		if verrs := validator.ExtractValidationErrors(err); verrs != nil {
			m.errs = verrs
			return verrs
		}
		return err
	}

	m.errs = nil
	m.generation++
	gen := m.generation

	if err := m.fireLocked(ctx, eventSubmit); err != nil {
		return err
	}

	go m.runEffect(ctx, gen, fields)
	return nil
}

// Cancel discards in-progress edits and returns the machine to editing with
// all fields at their defaults. Cancelling is allowed from every phase except
// submitting.
func (m *Machine) Cancel() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.phases.Current() == PhaseSubmitting {
		return ErrSubmitInFlight
	}

	if m.cancelOnReset {
		m.generation++
	}
	m.resetLocked(context.Background())
	return nil
}

func (m *Machine) runEffect(ctx context.Context, gen uint64, fields map[string]string) {
	err := m.submit(ctx, fields)

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.staleLocked(gen) {
		m.log.Debug("dropping stale submission outcome", slog.String("form", m.def.Name))
		return
	}

	if err != nil {
		m.submitErr = err
		if ferr := m.fireLocked(ctx, eventReject); ferr != nil {
			m.log.Debug("submission outcome arrived in unexpected phase",
				slog.String("form", m.def.Name), slog.Any("error", ferr))
		}
		return
	}

	if ferr := m.fireLocked(ctx, eventResolve); ferr != nil {
		m.log.Debug("submission outcome arrived in unexpected phase",
			slog.String("form", m.def.Name), slog.Any("error", ferr))
		return
	}

	if m.def.SuccessWindow <= 0 {
		m.resetLocked(ctx)
		return
	}
	m.after(m.def.SuccessWindow, func() { m.autoReset(gen) })
}

// autoReset closes the success display window. The timer belongs to the
// submission that armed it: a later submission bumps the generation, so a
// stale timer can never close the window of a submission it did not start.
// It must never crash the process.
func (m *Machine) autoReset(gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if gen != m.generation {
		m.log.Debug("dropping superseded auto-reset", slog.String("form", m.def.Name))
		return
	}
	if m.phases.Current() != PhaseSucceeded {
		m.log.Debug("dropping stale auto-reset", slog.String("form", m.def.Name),
			slog.String("phase", string(m.phases.Current())))
		return
	}
	m.resetLocked(context.Background())
}

func (m *Machine) staleLocked(gen uint64) bool {
	return m.cancelOnReset && gen != m.generation
}

func (m *Machine) resetLocked(ctx context.Context) {
	for _, f := range m.def.Fields {
		m.fields[f.Name] = f.Default
	}
	m.errs = nil
	m.submitErr = nil
	if err := m.fireLocked(ctx, eventReset); err != nil {
		m.log.Debug("reset in unexpected phase", slog.String("form", m.def.Name), slog.Any("error", err))
	}
}

func (m *Machine) fireLocked(ctx context.Context, ev event) error {
	from := m.phases.Current()
	if err := m.phases.Fire(ctx, ev, nil); err != nil {
		return err
	}
	to := m.phases.Current()

	m.log.Debug("phase transition",
		slog.String("form", m.def.Name),
		slog.String("from", string(from)),
		slog.String("to", string(to)))
	_ = m.bus.Broadcast(ctx, PhaseChange{FormID: m.id, Form: m.def.Name, From: from, To: to})
	return nil
}

func (m *Machine) editableFieldLocked(name string) (*Field, error) {
	switch m.phases.Current() {
	case PhaseSubmitting, PhaseSucceeded:
		return nil, ErrFieldsLocked
	}

	for i := range m.def.Fields {
		if m.def.Fields[i].Name == name {
			return &m.def.Fields[i], nil
		}
	}
	return nil, &UnknownFieldError{Form: m.def.Name, Field: name}
}

func (m *Machine) clearFieldErrorLocked(name string) {
	m.errs = slices.DeleteFunc(m.errs, func(e validator.ValidationError) bool {
		return e.Field == name
	})
	if len(m.errs) == 0 {
		m.errs = nil
	}
}

func (m *Machine) recoverIfFailedLocked() {
	if m.phases.Current() != PhaseFailed {
		return
	}
	if err := m.fireLocked(context.Background(), eventRecover); err == nil {
		m.submitErr = nil
	}
}

func (m *Machine) copyFieldsLocked() map[string]string {
	fields := make(map[string]string, len(m.fields))
	for k, v := range m.fields {
		fields[k] = v
	}
	return fields
}
