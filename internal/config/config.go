// Package config loads server configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every runtime setting of the server. The JWT secret is
// injected from here into the token manager at construction; nothing reads
// it from the environment afterwards.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string `env:"PORT" envDefault:"3000"`

	// DBPath is the filesystem path of the SQLite database.
	DBPath string `env:"DB_PATH"`

	// JWTSecret signs and verifies bearer tokens. The default matches the
	// development secret used by the frontend tooling; override it in any
	// real deployment.
	JWTSecret string `env:"JWT_SECRET" envDefault:"123123"`

	// TokenTTL is the validity window of issued tokens.
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"168h"`
}

// Load parses the environment into a Config and applies defaults that env
// tags cannot express.
func Load() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment config: %w", err)
	}

	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join("data", "folio.db")
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg Config) validate() error {
	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET must not be empty")
	}
	if cfg.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	return nil
}
