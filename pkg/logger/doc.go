// Package logger builds configured slog.Logger instances with sensible
// environment presets.
//
//	log := logger.New(logger.WithDevelopment("showcase"))
//	log.Info("guest added", slog.Int64("id", guest.ID))
//
// Defaults are production-safe: JSON output at info level on stdout.
package logger
