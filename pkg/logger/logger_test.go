package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basileushq/clubkit/pkg/logger"
)

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))

	log.Info("hello")
	log.Debug("hidden")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
	assert.NotContains(t, buf.String(), "hidden", "debug suppressed at default info level")
}

func TestNewTextFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithFormat(logger.FormatText),
		logger.WithLevel(slog.LevelDebug),
	)

	log.Debug("verbose")
	assert.Contains(t, buf.String(), "msg=verbose")
}

func TestWithFormatPanicsOnInvalid(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}

func TestWithDevelopmentPreset(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithDevelopment("showcase"), logger.WithOutput(&buf))

	log.Debug("detail")

	out := buf.String()
	assert.Contains(t, out, "service=showcase")
	assert.Contains(t, out, "env=development")
	assert.Contains(t, out, "msg=detail")
}

func TestWithProductionPreset(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithProduction("showcase"), logger.WithOutput(&buf))

	log.Info("up")

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &record))
	assert.Equal(t, "showcase", record["service"])
	assert.Equal(t, "production", record["env"])
}
