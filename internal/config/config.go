// internal/config/config.go
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config enumerates every option the simulator recognizes.
type Config struct {
	// Simulations is the number of independent games to play per batch.
	Simulations int `env:"SPECTRUM_SIMULATIONS" envDefault:"1000"`

	// Players is the number of tokens per game.
	Players int `env:"SPECTRUM_PLAYERS" envDefault:"2"`

	// Seed feeds the batch's random source. 0 means seed from the clock.
	Seed int64 `env:"SPECTRUM_SEED" envDefault:"0"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate rejects configurations that would make the batch degenerate,
// before any game is played.
func (c Config) Validate() error {
	if c.Simulations < 1 {
		return fmt.Errorf("simulations must be >= 1, got %d", c.Simulations)
	}
	if c.Players < 1 {
		return fmt.Errorf("players must be >= 1, got %d", c.Players)
	}
	return nil
}
