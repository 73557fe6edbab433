// Package config provides configuration settings for the URL shortener service.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// DefaultBaseURL is the short-link prefix used when no BASE_URL is configured.
const DefaultBaseURL = "http://localhost:5127"

const (
	defaultServerPort      = 5127
	defaultReadTimeout     = 5 * time.Second
	defaultWriteTimeout    = 10 * time.Second
	defaultIdleTimeout     = time.Minute
	defaultShutdownTimeout = 10 * time.Second
)

// Config holds the configuration settings for the application. The validate
// tags are checked once at load time; they guard operator input, not request
// payloads.
type Config struct {
	ServerPort      int           `validate:"required,gt=0,lte=65535"`
	BaseURL         string        `validate:"required,url"`
	ReadTimeout     time.Duration `validate:"gt=0"`
	WriteTimeout    time.Duration `validate:"gt=0"`
	IdleTimeout     time.Duration `validate:"gt=0"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

// DefaultConfig returns the default configuration settings.
func DefaultConfig() *Config {
	return &Config{
		ServerPort:      defaultServerPort,
		BaseURL:         DefaultBaseURL,
		ReadTimeout:     defaultReadTimeout,
		WriteTimeout:    defaultWriteTimeout,
		IdleTimeout:     defaultIdleTimeout,
		ShutdownTimeout: defaultShutdownTimeout,
	}
}

// Load builds the configuration from environment variables, falling back to
// the defaults above. A .env file in the working directory is read when
// present but never overrides variables already set in the environment.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVER_PORT", defaultServerPort)
	v.SetDefault("BASE_URL", DefaultBaseURL)
	v.SetDefault("READ_TIMEOUT", defaultReadTimeout)
	v.SetDefault("WRITE_TIMEOUT", defaultWriteTimeout)
	v.SetDefault("IDLE_TIMEOUT", defaultIdleTimeout)
	v.SetDefault("SHUTDOWN_TIMEOUT", defaultShutdownTimeout)

	v.AutomaticEnv()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // missing .env is fine

	cfg := &Config{
		ServerPort:      v.GetInt("SERVER_PORT"),
		BaseURL:         v.GetString("BASE_URL"),
		ReadTimeout:     v.GetDuration("READ_TIMEOUT"),
		WriteTimeout:    v.GetDuration("WRITE_TIMEOUT"),
		IdleTimeout:     v.GetDuration("IDLE_TIMEOUT"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration values against their constraints.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.ServerPort)
}
