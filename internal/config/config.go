// Package config loads client configuration from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the runtime configuration for the vestra client.
// Precedence: explicit env var > .env file > default.
type Config struct {
	// APIURL is the base URL of the Vestra API.
	APIURL string `env:"VESTRA_API_URL" envDefault:"https://api.vestra.app"`

	// StateDir holds the session file and the debug log.
	// Defaults to ~/.vestra.
	StateDir string `env:"VESTRA_STATE_DIR"`

	// LogLevel is the minimum debug-log level: trace, debug, info, warn, error.
	LogLevel string `env:"VESTRA_LOG_LEVEL" envDefault:"info"`

	// Token, when set, overrides the stored session token for this run.
	Token string `env:"VESTRA_TOKEN"`
}

// Load reads .env (if present) and the environment.
func Load() (Config, error) {
	godotenv.Load() //nolint:errcheck // .env is optional

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.StateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve state dir: %w", err)
		}
		cfg.StateDir = filepath.Join(home, ".vestra")
	}
	return cfg, nil
}
