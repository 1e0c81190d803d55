package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// A .env file in the working directory, if present, is loaded into the
// environment first. The result is validated before it is returned.
func Load() (*Config, error) {
	// Ignore the error: a missing .env file is the normal case.
	_ = godotenv.Load()

	var cfg Config
	if err := read(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// read fills cfg from the YAML file named by CONFIG_PATH (default
// "./config.yaml") plus environment overrides. Without a file, and without
// an explicit CONFIG_PATH, the environment and tag defaults are enough; a
// missing file is an error only when CONFIG_PATH asked for it.
func read(cfg *Config) error {
	path := os.Getenv("CONFIG_PATH")
	explicit := path != ""
	if !explicit {
		path = "./config.yaml"
	}

	switch _, err := os.Stat(path); {
	case err == nil:
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit:
		return fmt.Errorf("config: file %s: %w", path, err)
	default:
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return fmt.Errorf("config: read env: %w", err)
		}
	}

	return nil
}
