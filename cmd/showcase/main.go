// Command showcase runs the event-organization demo end to end: it seeds the
// guest roster, walks through a roster mutation cycle and drives a membership
// application through the form lifecycle, logging every state change.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/basileushq/clubkit/pkg/config"
	"github.com/basileushq/clubkit/pkg/formflow"
	"github.com/basileushq/clubkit/pkg/logger"
	"github.com/basileushq/clubkit/svc/forms"
	"github.com/basileushq/clubkit/svc/guestlist"
)

type showcaseConfig struct {
	LogLevel            string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat           string `env:"LOG_FORMAT" envDefault:"text"`
	SeedDemoData        bool   `env:"SEED_DEMO_DATA" envDefault:"true"`
	CancelTimersOnReset bool   `env:"CANCEL_TIMERS_ON_RESET" envDefault:"false"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("showcase failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg showcaseConfig
	config.MustLoad(&cfg)

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return fmt.Errorf("parse LOG_LEVEL: %w", err)
	}

	log := logger.New(
		logger.WithLevel(level),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithAttr(slog.String("service", "showcase")),
	)
	logger.SetAsDefault(log)

	if err := runRoster(ctx, cfg, log); err != nil {
		return err
	}
	return runMembership(ctx, cfg, log)
}

// runRoster seeds the roster and walks through add, toggle, stats and remove.
func runRoster(ctx context.Context, cfg showcaseConfig, log *slog.Logger) error {
	engine := guestlist.New(guestlist.WithLogger(log))
	defer engine.Close()

	events := engine.Events(ctx)
	go func() {
		for ev := range events.Receive() {
			log.Info("roster event",
				slog.String("kind", string(ev.Kind)),
				slog.Int64("guest_id", ev.Guest.ID),
				slog.String("guest", ev.Guest.Name))
		}
	}()

	if cfg.SeedDemoData {
		if err := seedRoster(engine); err != nil {
			return fmt.Errorf("seed roster: %w", err)
		}
	}

	guest, err := engine.Add("Alex Rivera", "alex.r@example.com")
	if err != nil {
		return fmt.Errorf("add guest: %w", err)
	}
	if _, err := engine.ToggleConfirmed(guest.ID); err != nil {
		return fmt.Errorf("toggle confirmed: %w", err)
	}

	stats := engine.Stats()
	log.Info("roster stats",
		slog.Int("total", stats.Total),
		slog.Int("confirmed", stats.Confirmed),
		slog.Int("pending", stats.Pending),
		slog.Int("rsvp", stats.RSVP))

	if err := engine.Remove(guest.ID); err != nil {
		return fmt.Errorf("remove guest: %w", err)
	}
	return nil
}

// seedRoster loads the demo guests through the public roster operations so
// they get real ids and events like any other guest.
func seedRoster(engine *guestlist.Engine) error {
	for _, seed := range guestlist.DemoGuests() {
		guest, err := engine.Add(seed.Name, seed.Email)
		if err != nil {
			return err
		}
		if seed.Confirmed {
			if _, err := engine.ToggleConfirmed(guest.ID); err != nil {
				return err
			}
		}
		if seed.RSVP {
			if _, err := engine.ToggleRSVP(guest.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

// runMembership drives a membership application through validation failure,
// correction and a full submit cycle, then waits for the success window to
// return the form to editing.
func runMembership(ctx context.Context, cfg showcaseConfig, log *slog.Logger) error {
	def := forms.Membership()
	machine := formflow.MustNew(def,
		formflow.WithLogger(log),
		formflow.WithCancelOnReset(cfg.CancelTimersOnReset),
	)
	defer machine.Close()

	phases := machine.Events(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for change := range phases.Receive() {
			log.Info("form phase change",
				slog.String("form", change.Form),
				slog.String("from", string(change.From)),
				slog.String("to", string(change.To)))
			if change.To == formflow.PhaseEditing && change.From == formflow.PhaseSucceeded {
				return
			}
		}
	}()

	fields := map[string]string{
		"fullName":   "Alex Rivera",
		"email":      "alex.r@example.com",
		"phone":      "555-0102",
		"profession": "Product Designer",
		"whyJoin":    "Too short",
	}
	for name, value := range fields {
		if err := machine.UpdateField(name, value); err != nil {
			return fmt.Errorf("update %s: %w", name, err)
		}
	}
	if err := machine.ToggleChoice("interests", forms.InterestOptions[0]); err != nil {
		return fmt.Errorf("toggle interest: %w", err)
	}

	// First attempt fails validation on the motivation text.
	if err := machine.AttemptSubmit(ctx); err != nil {
		log.Info("submission rejected", slog.Any("error", err))
	}

	motivation := strings.Repeat("I want to help organize community events. ", 2)
	if err := machine.UpdateField("whyJoin", motivation); err != nil {
		return fmt.Errorf("update whyJoin: %w", err)
	}
	if err := machine.AttemptSubmit(ctx); err != nil {
		return fmt.Errorf("submit membership: %w", err)
	}

	deadline := def.SubmitLatency + def.SuccessWindow + 5*time.Second
	select {
	case <-done:
		log.Info("membership application completed")
		return nil
	case <-time.After(deadline):
		return fmt.Errorf("membership form did not complete within %s", deadline)
	case <-ctx.Done():
		return ctx.Err()
	}
}
