package norms

import (
	"math"
	"strings"
)

// burnRates holds kcal-per-minute rates for a 70 kg reference body.
// Common aliases map to the same rate.
var burnRates = map[string]float64{
	"run":     10,
	"running": 10,
	"jog":     8,
	"walk":    4,
	"walking": 4,
	"bike":    8,
	"cycling": 8,
	"swim":    9,
	"gym":     6,
	"hiit":    12,
	"yoga":    3,
}

// DefaultBurnRatePerMin applies to activities missing from the rate table.
// An unknown activity is estimated, never rejected.
const DefaultBurnRatePerMin = 5.0

// referenceWeightKg is the body weight the rate table is calibrated for.
const referenceWeightKg = 70.0

// Workout hydration parameters.
const (
	// WorkoutWaterBlockMin is the workout block size granting extra water.
	WorkoutWaterBlockMin = 30.0
	// WorkoutWaterPerBlockML is recommended per complete workout block.
	WorkoutWaterPerBlockML = 200.0
)

// BurnRatePerMin returns the per-minute burn rate for an activity.
// Lookup is case-insensitive; unknown activities use DefaultBurnRatePerMin.
func BurnRatePerMin(activity string) float64 {
	if rate, ok := burnRates[strings.ToLower(strings.TrimSpace(activity))]; ok {
		return rate
	}
	return DefaultBurnRatePerMin
}

// WorkoutBurnKcal estimates the calories burned by a workout, scaled by
// body weight relative to the 70 kg reference.
//
//	burned = rate(activity) * minutes * weight/70
func WorkoutBurnKcal(activity string, minutes, weightKg float64) float64 {
	return BurnRatePerMin(activity) * minutes * weightKg / referenceWeightKg
}

// WorkoutWaterML returns the extra drinking water recommended after a
// workout: 200 ml per complete 30-minute block.
func WorkoutWaterML(minutes float64) float64 {
	return math.Floor(minutes/WorkoutWaterBlockMin) * WorkoutWaterPerBlockML
}
