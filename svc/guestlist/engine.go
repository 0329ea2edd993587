package guestlist

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/basileushq/clubkit/pkg/broadcast"
	"github.com/basileushq/clubkit/pkg/validator"
)

// Engine is the authoritative in-memory store for the guest roster. It owns
// the ordered collection exclusively: all mutation goes through its
// operations, and reads return copies, so a snapshot taken before a mutation
// never reflects it.
//
// All methods are safe for concurrent use and return without blocking.
type Engine struct {
	mu     sync.RWMutex
	guests []Guest
	alloc  IDAllocator
	log    *slog.Logger
	bus    *broadcast.MemoryBroadcaster[Event]
}

// Option configures an Engine during construction.
type Option func(*Engine)

// WithAllocator replaces the default counter-based id allocator.
func WithAllocator(alloc IDAllocator) Option {
	return func(e *Engine) {
		if alloc != nil {
			e.alloc = alloc
		}
	}
}

// WithLogger sets the logger for roster mutations.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// New creates an empty roster engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		alloc: NewCounterAllocator(0),
		log:   slog.New(slog.DiscardHandler),
		bus:   broadcast.NewMemoryBroadcaster[Event](16),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Add validates name and email, assigns a fresh id and appends the guest to
// the end of the roster with Confirmed and RSVP false. Existing guests are
// untouched.
func (e *Engine) Add(name, email string) (Guest, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if err := validator.Apply(
		validator.Required("name", name),
		validator.Required("email", email),
		validator.ValidEmail("email", email),
	); err != nil {
		return Guest{}, err
	}

	e.mu.Lock()
	guest := Guest{
		ID:    e.alloc.Next(),
		Name:  name,
		Email: email,
	}
	e.guests = append(e.guests, guest)
	e.mu.Unlock()

	e.log.Info("guest added", slog.Int64("id", guest.ID), slog.String("name", guest.Name))
	e.publish(EventAdded, guest)
	return guest, nil
}

// ToggleConfirmed flips the confirmed flag for the guest with the given id.
// Every other guest and field is left untouched.
func (e *Engine) ToggleConfirmed(id int64) (Guest, error) {
	guest, err := e.mutate(id, func(g *Guest) {
		g.Confirmed = !g.Confirmed
	})
	if err != nil {
		return Guest{}, err
	}

	e.log.Info("guest confirmation toggled", slog.Int64("id", id), slog.Bool("confirmed", guest.Confirmed))
	e.publish(EventConfirmedToggled, guest)
	return guest, nil
}

// ToggleRSVP flips the rsvp flag for the guest with the given id.
func (e *Engine) ToggleRSVP(id int64) (Guest, error) {
	guest, err := e.mutate(id, func(g *Guest) {
		g.RSVP = !g.RSVP
	})
	if err != nil {
		return Guest{}, err
	}

	e.log.Info("guest rsvp toggled", slog.Int64("id", id), slog.Bool("rsvp", guest.RSVP))
	e.publish(EventRSVPToggled, guest)
	return guest, nil
}

// GuestPatch carries the optional fields of an Update. Nil fields are left as
// they are.
type GuestPatch struct {
	Name  *string
	Email *string
}

// Update replaces the supplied fields of the guest with the given id, after
// validating them with the same rules as Add. Confirmed and RSVP are never
// touched by an update.
func (e *Engine) Update(id int64, patch GuestPatch) (Guest, error) {
	var (
		name, email string
		rules       []validator.Rule
	)
	if patch.Name != nil {
		name = strings.TrimSpace(*patch.Name)
		rules = append(rules, validator.Required("name", name))
	}
	if patch.Email != nil {
		email = strings.TrimSpace(*patch.Email)
		rules = append(rules,
			validator.Required("email", email),
			validator.ValidEmail("email", email),
		)
	}
	if err := validator.Apply(rules...); err != nil {
		return Guest{}, err
	}

	guest, err := e.mutate(id, func(g *Guest) {
		if patch.Name != nil {
			g.Name = name
		}
		if patch.Email != nil {
			g.Email = email
		}
	})
	if err != nil {
		return Guest{}, err
	}

	e.log.Info("guest updated", slog.Int64("id", id))
	e.publish(EventUpdated, guest)
	return guest, nil
}

// Remove deletes the guest with the given id, preserving the order of the
// remaining guests.
func (e *Engine) Remove(id int64) error {
	e.mu.Lock()
	i := e.indexLocked(id)
	if i < 0 {
		e.mu.Unlock()
		return &NotFoundError{ID: id}
	}
	guest := e.guests[i]
	e.guests = slices.Delete(e.guests, i, i+1)
	e.mu.Unlock()

	e.log.Info("guest removed", slog.Int64("id", id), slog.String("name", guest.Name))
	e.publish(EventRemoved, guest)
	return nil
}

// Get returns the guest with the given id.
func (e *Engine) Get(id int64) (Guest, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if i := e.indexLocked(id); i >= 0 {
		return e.guests[i], nil
	}
	return Guest{}, &NotFoundError{ID: id}
}

// Guests returns the roster in insertion order. The returned slice is a copy:
// later mutations never show up in it.
func (e *Engine) Guests() []Guest {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(e.guests)
}

// Len returns the roster size.
func (e *Engine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.guests)
}

// Stats recomputes the derived statistics from the current roster contents.
func (e *Engine) Stats() Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return ComputeStats(e.guests)
}

// Events subscribes to roster mutation events. Cancelling ctx ends the
// subscription.
func (e *Engine) Events(ctx context.Context) broadcast.Subscriber[Event] {
	return e.bus.Subscribe(ctx)
}

// Close releases the engine's event subscribers.
func (e *Engine) Close() error {
	return e.bus.Close()
}

func (e *Engine) mutate(id int64, fn func(*Guest)) (Guest, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.indexLocked(id)
	if i < 0 {
		return Guest{}, &NotFoundError{ID: id}
	}
	fn(&e.guests[i])
	return e.guests[i], nil
}

func (e *Engine) indexLocked(id int64) int {
	return slices.IndexFunc(e.guests, func(g Guest) bool {
		return g.ID == id
	})
}

func (e *Engine) publish(kind EventKind, guest Guest) {
	_ = e.bus.Broadcast(context.Background(), Event{Kind: kind, Guest: guest})
}
