package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basileushq/clubkit/pkg/config"
)

// Each test declares its own config type: Load caches per type, so sharing a
// struct across tests would leak values between them.

func TestLoadDefaults(t *testing.T) {
	type defaultsConfig struct {
		LogLevel  string `env:"TEST_DEFAULTS_LOG_LEVEL" envDefault:"info"`
		SeedDemo  bool   `env:"TEST_DEFAULTS_SEED" envDefault:"true"`
		BufferLen int    `env:"TEST_DEFAULTS_BUFFER" envDefault:"16"`
	}

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.SeedDemo)
	assert.Equal(t, 16, cfg.BufferLen)
}

func TestLoadFromEnvironment(t *testing.T) {
	type envConfig struct {
		LogLevel string `env:"TEST_ENV_LOG_LEVEL" envDefault:"info"`
	}

	t.Setenv("TEST_ENV_LOG_LEVEL", "debug")

	var cfg envConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadCachesPerType(t *testing.T) {
	type cachedConfig struct {
		Value string `env:"TEST_CACHED_VALUE" envDefault:"first"`
	}

	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Value)

	// Changing the environment after the first load has no effect: the type
	// is served from cache.
	t.Setenv("TEST_CACHED_VALUE", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)
}

func TestLoadNilPointer(t *testing.T) {
	err := config.Load[struct{}](nil)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestLoadParseError(t *testing.T) {
	type badConfig struct {
		Count int `env:"TEST_BAD_COUNT"`
	}

	t.Setenv("TEST_BAD_COUNT", "not-a-number")

	var cfg badConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestMustLoadPanicsOnError(t *testing.T) {
	type mustConfig struct {
		Count int `env:"TEST_MUST_COUNT"`
	}

	t.Setenv("TEST_MUST_COUNT", "nope")

	assert.Panics(t, func() {
		var cfg mustConfig
		config.MustLoad(&cfg)
	})
}
