// Package config loads process configuration from the environment. The core
// packages never read env vars themselves; everything they need comes in as
// values from here.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Genius API bearer token, from https://genius.com/api-clients
	AccessToken string `env:"GENIUS_ACCESS_TOKEN"`

	// concurrent lookups per batch, clamped to [1, 16]
	Workers int `env:"LINEUP_WORKERS" envDefault:"6"`

	// sqlite dataset file
	DBFile string `env:"LINEUP_DB" envDefault:"lineup.db"`
}

func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("error loading config from environment: %w", err)
	}
	return cfg, nil
}

// RequireToken fails fast when no API credential is configured, so a missing
// token surfaces as one clear error before a batch starts rather than as a
// hundred identical per-item failures.
func (cfg Config) RequireToken() error {
	if cfg.AccessToken == "" {
		return fmt.Errorf("GENIUS_ACCESS_TOKEN is not set; get a token at https://genius.com/api-clients")
	}
	return nil
}
