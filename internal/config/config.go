package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"forestlog/internal/storage"
)

// Config is loaded from environment variables.
type Config struct {
	// ProfilePath overrides where the profile JSON lives.
	ProfilePath string `env:"FORESTLOG_DATA_FILE"`
}

// Load parses the environment and fills in defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.ProfilePath == "" {
		path, err := storage.DefaultProfilePath()
		if err != nil {
			return Config{}, err
		}
		cfg.ProfilePath = path
	}
	return cfg, nil
}
