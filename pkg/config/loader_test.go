package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/trackkit/pkg/config"
)

// Each test uses its own struct type because loaded types are cached for
// the lifetime of the process.

func TestLoad(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		type defaultsConfig struct {
			Endpoint string        `env:"TEST_LOADER_ENDPOINT" envDefault:"https://ingest.example.com"`
			Timeout  time.Duration `env:"TEST_LOADER_TIMEOUT" envDefault:"15s"`
		}

		var cfg defaultsConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "https://ingest.example.com", cfg.Endpoint)
		assert.Equal(t, 15*time.Second, cfg.Timeout)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		type overrideConfig struct {
			SiteID string `env:"TEST_LOADER_SITE_ID" envDefault:"fallback"`
		}

		t.Setenv("TEST_LOADER_SITE_ID", "site_42")

		var cfg overrideConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "site_42", cfg.SiteID)
	})

	t.Run("required variable missing", func(t *testing.T) {
		type requiredConfig struct {
			Endpoint string `env:"TEST_LOADER_REQUIRED_ENDPOINT,required"`
		}

		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("cached between calls", func(t *testing.T) {
		type cachedConfig struct {
			Value string `env:"TEST_LOADER_CACHED" envDefault:"first"`
		}

		t.Setenv("TEST_LOADER_CACHED", "first")
		var first cachedConfig
		require.NoError(t, config.Load(&first))

		// Changing the environment after the first load must not change
		// the cached value.
		t.Setenv("TEST_LOADER_CACHED", "second")
		var second cachedConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, first.Value, second.Value)
	})

	t.Run("nil pointer", func(t *testing.T) {
		err := config.Load[struct{ V string }](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})

	t.Run("nested structs", func(t *testing.T) {
		type innerConfig struct {
			Interval time.Duration `env:"TEST_LOADER_NESTED_INTERVAL" envDefault:"30s"`
		}
		type outerConfig struct {
			Name  string `env:"TEST_LOADER_NESTED_NAME" envDefault:"tracker"`
			Inner innerConfig
		}

		var cfg outerConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "tracker", cfg.Name)
		assert.Equal(t, 30*time.Second, cfg.Inner.Interval)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		type mustConfig struct {
			Endpoint string `env:"TEST_LOADER_MUST_ENDPOINT,required"`
		}

		assert.Panics(t, func() {
			var cfg mustConfig
			config.MustLoad(&cfg)
		})
	})

	t.Run("succeeds with defaults", func(t *testing.T) {
		type mustOKConfig struct {
			Namespace string `env:"TEST_LOADER_MUST_NS" envDefault:"trackkit"`
		}

		var cfg mustOKConfig
		assert.NotPanics(t, func() { config.MustLoad(&cfg) })
		assert.Equal(t, "trackkit", cfg.Namespace)
	})
}
