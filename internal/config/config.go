package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Tracker TrackerConfig `yaml:"tracker"`
	Weather WeatherConfig `yaml:"weather"`
	Food    FoodConfig    `yaml:"food"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// TrackerConfig holds tracking engine settings.
type TrackerConfig struct {
	// Timezone decides which calendar day an entry lands on.
	Timezone string `yaml:"timezone" env:"TRACKER_TIMEZONE" env-default:"UTC"`
}

// WeatherConfig holds OpenWeatherMap client settings.
// An empty APIKey disables weather lookups; water targets then skip the
// heat adjustment.
type WeatherConfig struct {
	APIKey   string        `yaml:"api_key"   env:"WEATHER_API_KEY"`
	BaseURL  string        `yaml:"base_url"  env:"WEATHER_BASE_URL"  env-default:"https://api.openweathermap.org/data/2.5"`
	Timeout  time.Duration `yaml:"timeout"   env:"WEATHER_TIMEOUT"   env-default:"10s"`
	CacheTTL time.Duration `yaml:"cache_ttl" env:"WEATHER_CACHE_TTL" env-default:"10m"`
}

// FoodConfig holds OpenFoodFacts client settings.
type FoodConfig struct {
	BaseURL string        `yaml:"base_url" env:"FOOD_BASE_URL" env-default:"https://world.openfoodfacts.org"`
	Timeout time.Duration `yaml:"timeout"  env:"FOOD_TIMEOUT"  env-default:"10s"`
}

// Location resolves the configured timezone.
// Validate checks the name, so after a successful Load this cannot fail.
func (c TrackerConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}
