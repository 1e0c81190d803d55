package domain

import "time"

// UserID identifies a tracker user. IDs come from the chat transport and
// are stable for the lifetime of the account.
type UserID int64

// Profile holds the physical parameters daily norms are derived from.
// A stored profile is always complete: partial data lives only inside a
// SetupSession draft and never reaches a repository.
type Profile struct {
	UserID            UserID
	WeightKg          float64
	HeightCm          float64
	AgeYears          int
	ActivityMinPerDay int
	City              string
	// CalorieGoalKcal overrides the computed calorie target when > 0.
	// Zero means "use the computed default".
	CalorieGoalKcal float64
	UpdatedAt       time.Time
}

// HasCalorieGoal reports whether the user set an explicit calorie goal.
func (p *Profile) HasCalorieGoal() bool {
	return p.CalorieGoalKcal > 0
}

// Validate checks all fields and collects all errors.
func (p *Profile) Validate() error {
	var errs []FieldError

	if p.UserID == 0 {
		errs = append(errs, FieldError{Field: "user_id", Message: "required"})
	}
	if p.WeightKg <= 0 {
		errs = append(errs, FieldError{Field: "weight", Message: "must be greater than 0"})
	}
	if p.HeightCm <= 0 {
		errs = append(errs, FieldError{Field: "height", Message: "must be greater than 0"})
	}
	if p.AgeYears <= 0 {
		errs = append(errs, FieldError{Field: "age", Message: "must be greater than 0"})
	}
	if p.ActivityMinPerDay < 0 {
		errs = append(errs, FieldError{Field: "activity", Message: "must be 0 or more"})
	}
	if p.City == "" {
		errs = append(errs, FieldError{Field: "city", Message: "required"})
	}
	if p.CalorieGoalKcal < 0 {
		errs = append(errs, FieldError{Field: "calorie_goal", Message: "must be 0 or more"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
