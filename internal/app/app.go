package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/myhealth-backend/internal/adapter/memory"
	"github.com/heartmarshall/myhealth-backend/internal/adapter/provider/openfoodfacts"
	"github.com/heartmarshall/myhealth-backend/internal/adapter/provider/openweather"
	"github.com/heartmarshall/myhealth-backend/internal/config"
	"github.com/heartmarshall/myhealth-backend/internal/service/tracker"
	"github.com/heartmarshall/myhealth-backend/internal/transport/console"
)

// Run is the application entry point. It loads configuration, builds the
// tracker service with in-memory storage and the external weather and food
// providers, and serves the interactive console on stdin/stdout until the
// input ends or ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("timezone", cfg.Tracker.Timezone),
	)

	loc, err := cfg.Tracker.Location()
	if err != nil {
		return fmt.Errorf("resolve timezone: %w", err)
	}

	if cfg.Weather.APIKey == "" {
		logger.Warn("weather api key not set, water targets skip the heat adjustment")
	}

	svc := tracker.NewService(
		logger,
		memory.NewProfileRepo(),
		memory.NewSetupSessionRepo(),
		memory.NewDayLogRepo(),
		openweather.NewProvider(cfg.Weather, logger),
		openfoodfacts.NewProvider(cfg.Food, logger),
		clockwork.NewRealClock(),
		loc,
	)

	return console.New(logger, svc, os.Stdin, os.Stdout).Run(ctx)
}
