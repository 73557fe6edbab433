package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 5127, cfg.ServerPort, "ServerPort should be 5127")
	assert.Equal(t, "http://localhost:5127", cfg.BaseURL, "BaseURL should be the documented default")
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout, "ReadTimeout should be 5 seconds")
	assert.Equal(t, 10*time.Second, cfg.WriteTimeout, "WriteTimeout should be 10 seconds")
	assert.Equal(t, time.Minute, cfg.IdleTimeout, "IdleTimeout should be 1 minute")
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout, "ShutdownTimeout should be 10 seconds")
}

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg, "Load without environment overrides should match the defaults")
	})

	t.Run("Environment Overrides", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("BASE_URL", "https://sho.rt")
		t.Setenv("READ_TIMEOUT", "2s")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.ServerPort)
		assert.Equal(t, "https://sho.rt", cfg.BaseURL)
		assert.Equal(t, 2*time.Second, cfg.ReadTimeout)
		assert.Equal(t, 10*time.Second, cfg.WriteTimeout, "Unset variables should keep their defaults")
	})

	t.Run("Invalid Port", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "70000")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("Invalid Base URL", func(t *testing.T) {
		t.Setenv("BASE_URL", "not a url")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
	})
}

func TestValidate(t *testing.T) {
	t.Run("Default Config Is Valid", func(t *testing.T) {
		assert.NoError(t, DefaultConfig().Validate())
	})

	t.Run("Zero Port", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.ServerPort = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("Empty Base URL", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.BaseURL = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("Negative Timeout", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.ShutdownTimeout = -time.Second
		assert.Error(t, cfg.Validate())
	})
}

func TestAddr(t *testing.T) {
	cfg := &Config{ServerPort: 5127}

	assert.Equal(t, ":5127", cfg.Addr())
}
