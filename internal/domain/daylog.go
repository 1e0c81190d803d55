package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Date is a calendar day in the tracker's reporting timezone.
// It is comparable and keys the per-day logs.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in the given location.
func DateOf(t time.Time, loc *time.Location) Date {
	t = t.In(loc)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// FoodEntry is a single recorded meal.
type FoodEntry struct {
	ID          uuid.UUID
	Description string
	Grams       float64
	Calories    float64
	LoggedAt    time.Time
}

// WorkoutEntry is a single recorded workout.
type WorkoutEntry struct {
	ID             uuid.UUID
	Activity       string
	Minutes        float64
	CaloriesBurned float64
	LoggedAt       time.Time
}

// DayLog accumulates one user's intake and activity for one calendar day.
// Water is kept as a running sum; food and workouts keep per-entry detail
// in insertion order. Entries are append-only: once the day rolls over the
// log is never touched again.
type DayLog struct {
	UserID   UserID
	Date     Date
	WaterML  float64
	Food     []FoodEntry
	Workouts []WorkoutEntry
}

// CaloriesConsumed returns the calorie total across all food entries.
func (l *DayLog) CaloriesConsumed() float64 {
	var total float64
	for _, e := range l.Food {
		total += e.Calories
	}
	return total
}

// CaloriesBurned returns the calorie total across all workout entries.
func (l *DayLog) CaloriesBurned() float64 {
	var total float64
	for _, e := range l.Workouts {
		total += e.CaloriesBurned
	}
	return total
}
