// Package config loads the application configuration from environment
// variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// DevSessionSecret is the development-only default session secret.
const DevSessionSecret = "dev-secret-change-me-in-production!!"

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath        string `env:"TEREVERDE_DB_PATH" envDefault:"./data/tereverde.db"`
	SessionSecret string `env:"TEREVERDE_SESSION_SECRET" envDefault:"dev-secret-change-me-in-production!!"`
	ServerHost    string `env:"TEREVERDE_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"TEREVERDE_SERVER_PORT" envDefault:"8080"`
	Env           string `env:"TEREVERDE_ENV" envDefault:"development"`
	LogLevel      string `env:"TEREVERDE_LOG_LEVEL" envDefault:"info"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// MinSessionSecretLength is the minimum required length for the session secret.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("TEREVERDE_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	// The baked-in default is tolerated only in development.
	if !cfg.IsDevelopment() && cfg.SessionSecret == DevSessionSecret {
		return nil, fmt.Errorf("TEREVERDE_SESSION_SECRET is the development default and must not be used in production")
	}

	return cfg, nil
}
