package tracker

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/myhealth-backend/internal/domain"
)

// LogWaterInput holds the parameters for logging a drink of water.
type LogWaterInput struct {
	AmountML float64
}

// Validate checks the amount.
func (i *LogWaterInput) Validate() error {
	if i.AmountML <= 0 {
		return fmt.Errorf("amount %v ml: %w", i.AmountML, domain.ErrInvalidAmount)
	}
	return nil
}

// LogFoodInput holds the parameters for logging a meal.
type LogFoodInput struct {
	// Description is the free-text food query sent to the lookup provider.
	Description string
	// Grams is the portion size; 0 means the default 100 g portion.
	Grams float64
}

// Validate checks all fields.
func (i *LogFoodInput) Validate() error {
	if strings.TrimSpace(i.Description) == "" {
		return domain.NewValidationError("description", "must not be empty")
	}
	if i.Grams < 0 {
		return fmt.Errorf("portion %v g: %w", i.Grams, domain.ErrInvalidAmount)
	}
	return nil
}

// PortionGrams returns the portion size, substituting the default for 0.
func (i *LogFoodInput) PortionGrams() float64 {
	if i.Grams == 0 {
		return defaultPortionGrams
	}
	return i.Grams
}

// LogWorkoutInput holds the parameters for logging a workout.
type LogWorkoutInput struct {
	Activity string
	Minutes  float64
}

// Validate checks all fields.
func (i *LogWorkoutInput) Validate() error {
	if strings.TrimSpace(i.Activity) == "" {
		return domain.NewValidationError("activity", "must not be empty")
	}
	if i.Minutes <= 0 {
		return fmt.Errorf("duration %v min: %w", i.Minutes, domain.ErrInvalidAmount)
	}
	return nil
}
