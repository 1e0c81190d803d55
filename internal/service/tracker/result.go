package tracker

import "github.com/heartmarshall/myhealth-backend/internal/domain"

// DailyNorms bundles a day's computed targets.
type DailyNorms struct {
	WaterTargetML     float64
	CalorieTargetKcal float64
	// TemperatureC is the reading the water target was computed with,
	// nil when weather was unavailable.
	TemperatureC *float64
}

// SetupProgress is the outcome of submitting one setup answer.
type SetupProgress struct {
	// Session is the dialog state after the answer; nil once completed.
	Session *domain.SetupSession
	// Completed reports whether the last field was just accepted.
	Completed bool
	// Profile is the committed profile, set only on completion.
	Profile *domain.Profile
	// Norms carries the targets computed on completion.
	Norms *DailyNorms
}

// WaterStatus is the day's water tally after a drink was logged.
type WaterStatus struct {
	ConsumedML float64
	TargetML   float64
	// RemainingML may be negative once the target is exceeded.
	RemainingML float64
}

// FoodStatus is the outcome of logging a meal.
type FoodStatus struct {
	Entry domain.FoodEntry
	// ConsumedKcal is the day's intake total including the new entry.
	ConsumedKcal float64
}

// WorkoutStatus is the outcome of logging a workout.
type WorkoutStatus struct {
	Entry domain.WorkoutEntry
	// BurnedKcal is the day's burned total including the new entry.
	BurnedKcal float64
	// RecommendedWaterML is the extra drinking water the session warrants.
	RecommendedWaterML float64
}

// Report is the daily progress summary.
type Report struct {
	Date            domain.Date
	WaterConsumedML float64
	WaterTargetML   float64
	// WaterRemainingML is target minus consumed; negative means the user
	// drank past the target.
	WaterRemainingML     float64
	CaloriesConsumedKcal float64
	CaloriesBurnedKcal   float64
	CalorieTargetKcal    float64
	// NetRemainingKcal is target - consumed + burned.
	NetRemainingKcal float64
	// TemperatureC is the reading used for the water target, nil when
	// weather was unavailable.
	TemperatureC *float64
}
