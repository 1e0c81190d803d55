// Command norms prints the daily water and calorie targets for a profile
// given on the command line, without storing anything. Useful for checking
// how a profile change would shift the targets.
//
// Flags:
//
//	--weight    weight in kg (required)
//	--height    height in cm (required)
//	--age       age in years (required)
//	--activity  active minutes per day (default 0)
//	--city      city for the weather adjustment (optional)
//	--goal      explicit calorie goal in kcal (0 = automatic)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/myhealth-backend/internal/adapter/provider/openweather"
	"github.com/heartmarshall/myhealth-backend/internal/app"
	"github.com/heartmarshall/myhealth-backend/internal/config"
	"github.com/heartmarshall/myhealth-backend/internal/domain"
	"github.com/heartmarshall/myhealth-backend/internal/service/tracker/norms"
)

func main() {
	weightFlag := flag.Float64("weight", 0, "weight in kg")
	heightFlag := flag.Float64("height", 0, "height in cm")
	ageFlag := flag.Int("age", 0, "age in years")
	activityFlag := flag.Int("activity", 0, "active minutes per day")
	cityFlag := flag.String("city", "", "city for the weather adjustment")
	goalFlag := flag.Float64("goal", 0, "explicit calorie goal in kcal (0 = automatic)")
	flag.Parse()

	if *weightFlag <= 0 || *heightFlag <= 0 || *ageFlag <= 0 {
		fmt.Fprintln(os.Stderr, "norms: --weight, --height and --age are required and must be positive")
		flag.Usage()
		os.Exit(1)
	}
	if *activityFlag < 0 || *goalFlag < 0 {
		fmt.Fprintln(os.Stderr, "norms: --activity and --goal must be 0 or more")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	// Weather is best effort: no city, no key, or a failed lookup just
	// skips the heat adjustment.
	var tempC *float64
	if *cityFlag != "" && cfg.Weather.APIKey != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		weather := openweather.NewProvider(cfg.Weather, logger)
		tempC, err = weather.FetchTemperature(ctx, *cityFlag)
		if err != nil {
			logger.Warn("weather lookup failed",
				slog.String("city", *cityFlag),
				slog.String("error", err.Error()),
			)
			tempC = nil
		}
	}

	profile := domain.Profile{
		WeightKg:          *weightFlag,
		HeightCm:          *heightFlag,
		AgeYears:          *ageFlag,
		ActivityMinPerDay: *activityFlag,
		CalorieGoalKcal:   *goalFlag,
	}

	fmt.Printf("Daily water target: %.0f ml\n", norms.WaterTargetML(profile, tempC))
	fmt.Printf("Daily calorie target: %.0f kcal\n", norms.CalorieTargetKcal(profile))
	if tempC != nil {
		fmt.Printf("Temperature in %s: %.1f C\n", *cityFlag, *tempC)
	}
}
