package domain

import (
	"strconv"
	"strings"
	"time"
)

// SetupState identifies which profile field a setup session is waiting for.
type SetupState string

const (
	SetupStateAwaitingWeight      SetupState = "AWAITING_WEIGHT"
	SetupStateAwaitingHeight      SetupState = "AWAITING_HEIGHT"
	SetupStateAwaitingAge         SetupState = "AWAITING_AGE"
	SetupStateAwaitingActivity    SetupState = "AWAITING_ACTIVITY"
	SetupStateAwaitingCity        SetupState = "AWAITING_CITY"
	SetupStateAwaitingCalorieGoal SetupState = "AWAITING_CALORIE_GOAL"
	SetupStateComplete            SetupState = "COMPLETE"
	SetupStateCancelled           SetupState = "CANCELLED"
)

func (s SetupState) String() string { return string(s) }

func (s SetupState) IsValid() bool {
	switch s {
	case SetupStateAwaitingWeight, SetupStateAwaitingHeight, SetupStateAwaitingAge,
		SetupStateAwaitingActivity, SetupStateAwaitingCity, SetupStateAwaitingCalorieGoal,
		SetupStateComplete, SetupStateCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether the session accepts no further values.
func (s SetupState) IsTerminal() bool {
	return s == SetupStateComplete || s == SetupStateCancelled
}

// SetupSession is the transient state of one user's profile setup dialog.
// It exists only between start and completion or cancellation; the draft
// becomes a stored Profile only once every field has been collected.
type SetupSession struct {
	UserID    UserID
	FieldIdx  int
	Draft     Profile
	State     SetupState
	StartedAt time.Time
}

// NewSetupSession returns a session positioned at the first setup field.
func NewSetupSession(userID UserID, startedAt time.Time) SetupSession {
	return SetupSession{
		UserID:    userID,
		FieldIdx:  0,
		Draft:     Profile{UserID: userID},
		State:     SetupFields[0].State,
		StartedAt: startedAt,
	}
}

// CurrentField returns the descriptor of the field the session is waiting
// for. It must not be called on a terminal session.
func (s *SetupSession) CurrentField() SetupField {
	return SetupFields[s.FieldIdx]
}

// SetupField describes one step of the profile setup dialog: the state
// that waits for it, the prompt shown to the user, and the parser that
// validates a raw value and writes it into the draft.
type SetupField struct {
	State  SetupState
	Name   string
	Prompt string
	Assign func(draft *Profile, raw string) error
}

// SetupFields is the ordered list of setup dialog steps. The dialog is
// driven entirely by this table: adding or reordering a field changes the
// flow without touching the state machine.
var SetupFields = []SetupField{
	{
		State:  SetupStateAwaitingWeight,
		Name:   "weight",
		Prompt: "Enter your weight in kg:",
		Assign: func(d *Profile, raw string) error {
			v, err := parseNumber(raw)
			if err != nil || v <= 0 {
				return NewValidationError("weight", "must be a number greater than 0")
			}
			d.WeightKg = v
			return nil
		},
	},
	{
		State:  SetupStateAwaitingHeight,
		Name:   "height",
		Prompt: "Enter your height in cm:",
		Assign: func(d *Profile, raw string) error {
			v, err := parseNumber(raw)
			if err != nil || v <= 0 {
				return NewValidationError("height", "must be a number greater than 0")
			}
			d.HeightCm = v
			return nil
		},
	},
	{
		State:  SetupStateAwaitingAge,
		Name:   "age",
		Prompt: "Enter your age in years:",
		Assign: func(d *Profile, raw string) error {
			v, err := parseInt(raw)
			if err != nil || v <= 0 {
				return NewValidationError("age", "must be a whole number greater than 0")
			}
			d.AgeYears = v
			return nil
		},
	},
	{
		State:  SetupStateAwaitingActivity,
		Name:   "activity",
		Prompt: "How many minutes per day are you active?",
		Assign: func(d *Profile, raw string) error {
			v, err := parseInt(raw)
			if err != nil || v < 0 {
				return NewValidationError("activity", "must be a whole number of minutes, 0 or more")
			}
			d.ActivityMinPerDay = v
			return nil
		},
	},
	{
		State:  SetupStateAwaitingCity,
		Name:   "city",
		Prompt: "Which city are you in? (used for weather)",
		Assign: func(d *Profile, raw string) error {
			city := strings.TrimSpace(raw)
			if city == "" {
				return NewValidationError("city", "must not be empty")
			}
			d.City = city
			return nil
		},
	},
	{
		State:  SetupStateAwaitingCalorieGoal,
		Name:   "calorie_goal",
		Prompt: "Enter a daily calorie goal in kcal (0 for automatic):",
		Assign: func(d *Profile, raw string) error {
			v, err := parseNumber(raw)
			if err != nil || v < 0 {
				return NewValidationError("calorie_goal", "must be a number, 0 or more")
			}
			d.CalorieGoalKcal = v
			return nil
		},
	},
}

// parseNumber parses a decimal number, accepting a comma as the decimal
// separator ("72,5" and "72.5" are equivalent).
func parseNumber(raw string) (float64, error) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	return strconv.ParseFloat(s, 64)
}

// parseInt parses a whole number. Decimal input is rejected, not truncated.
func parseInt(raw string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(raw))
}
