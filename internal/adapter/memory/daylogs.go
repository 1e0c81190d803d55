package memory

import (
	"context"
	"sync"

	"github.com/heartmarshall/myhealth-backend/internal/domain"
)

// dayKey addresses one user's log for one calendar day.
type dayKey struct {
	user domain.UserID
	date domain.Date
}

// DayLogRepo stores one log per user per calendar day. Logs for past days are
// kept forever; nothing in this repository ever resets or rolls them over.
type DayLogRepo struct {
	mu    sync.RWMutex
	byDay map[dayKey]*domain.DayLog
}

// NewDayLogRepo creates an empty day log repository.
func NewDayLogRepo() *DayLogRepo {
	return &DayLogRepo{byDay: make(map[dayKey]*domain.DayLog)}
}

// Get returns the log for a user and day.
// A day with no recorded entries yields an empty log, never an error.
func (r *DayLogRepo) Get(_ context.Context, userID domain.UserID, date domain.Date) (*domain.DayLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.byDay[dayKey{user: userID, date: date}]
	if !ok {
		return &domain.DayLog{UserID: userID, Date: date}, nil
	}

	out := &domain.DayLog{
		UserID:   stored.UserID,
		Date:     stored.Date,
		WaterML:  stored.WaterML,
		Food:     append([]domain.FoodEntry(nil), stored.Food...),
		Workouts: append([]domain.WorkoutEntry(nil), stored.Workouts...),
	}

	return out, nil
}

// AddWater adds amountML to the day's water total and returns the new total.
func (r *DayLogRepo) AddWater(_ context.Context, userID domain.UserID, date domain.Date, amountML float64) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	log := r.logLocked(userID, date)
	log.WaterML += amountML

	return log.WaterML, nil
}

// AppendFood records a food entry and returns the day's new intake total.
func (r *DayLogRepo) AppendFood(_ context.Context, userID domain.UserID, date domain.Date, entry domain.FoodEntry) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	log := r.logLocked(userID, date)
	log.Food = append(log.Food, entry)

	return log.CaloriesConsumed(), nil
}

// AppendWorkout records a workout entry and returns the day's new burned total.
func (r *DayLogRepo) AppendWorkout(_ context.Context, userID domain.UserID, date domain.Date, entry domain.WorkoutEntry) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	log := r.logLocked(userID, date)
	log.Workouts = append(log.Workouts, entry)

	return log.CaloriesBurned(), nil
}

// logLocked returns the stored log for a key, creating it when absent.
// Callers must hold the write lock.
func (r *DayLogRepo) logLocked(userID domain.UserID, date domain.Date) *domain.DayLog {
	key := dayKey{user: userID, date: date}

	log, ok := r.byDay[key]
	if !ok {
		log = &domain.DayLog{UserID: userID, Date: date}
		r.byDay[key] = log
	}

	return log
}
