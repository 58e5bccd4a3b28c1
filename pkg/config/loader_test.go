package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toonsmith/charactergen/pkg/config"
)

type testConfig struct {
	APIKey  string `env:"TEST_LOADER_API_KEY,required"`
	BaseURL string `env:"TEST_LOADER_BASE_URL" envDefault:"https://api.example"`
}

func TestLoad(t *testing.T) {
	t.Run("parses env with defaults", func(t *testing.T) {
		t.Setenv("TEST_LOADER_API_KEY", "pk_test")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "pk_test", cfg.APIKey)
		assert.Equal(t, "https://api.example", cfg.BaseURL)
	})

	t.Run("override default", func(t *testing.T) {
		t.Setenv("TEST_LOADER_API_KEY", "pk_test")
		t.Setenv("TEST_LOADER_BASE_URL", "http://localhost:9999")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "http://localhost:9999", cfg.BaseURL)
	})

	t.Run("missing required variable", func(t *testing.T) {
		var cfg testConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}
