package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// config holds the environment-provided defaults. Command-line flags
// override them.
type config struct {
	// SaveFile is the match save path: load-if-exists-else-new.
	SaveFile string `env:"LAMA_SAVE_FILE" envDefault:"lama.json"`
	// Seed forces a deterministic shuffle/bot sequence; 0 picks a fresh
	// random seed.
	Seed int64 `env:"LAMA_SEED"`
}

func parseEnv() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
