package config

import (
	"fmt"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if _, err := time.LoadLocation(c.Tracker.Timezone); err != nil {
		return fmt.Errorf("tracker.timezone %q: %w", c.Tracker.Timezone, err)
	}

	if err := c.Weather.validate(); err != nil {
		return fmt.Errorf("weather: %w", err)
	}

	if err := c.Food.validate(); err != nil {
		return fmt.Errorf("food: %w", err)
	}

	return nil
}

func (w WeatherConfig) validate() error {
	if w.BaseURL == "" {
		return fmt.Errorf("base_url must not be empty")
	}
	if w.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", w.Timeout)
	}
	if w.CacheTTL <= 0 {
		return fmt.Errorf("cache_ttl must be > 0 (got %v)", w.CacheTTL)
	}
	return nil
}

func (f FoodConfig) validate() error {
	if f.BaseURL == "" {
		return fmt.Errorf("base_url must not be empty")
	}
	if f.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", f.Timeout)
	}
	return nil
}
