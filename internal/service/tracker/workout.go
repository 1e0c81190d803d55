package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/myhealth-backend/internal/domain"
	"github.com/heartmarshall/myhealth-backend/internal/service/tracker/norms"
)

// LogWorkout records a workout against the user's current day and returns
// the new entry, the day's burn total, and the extra water the workout calls
// for.
func (s *Service) LogWorkout(ctx context.Context, userID domain.UserID, input LogWorkoutInput) (*WorkoutStatus, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	unlock := s.lockUser(userID)
	defer unlock()

	profile, err := s.getProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	activity := strings.TrimSpace(input.Activity)
	entry := domain.WorkoutEntry{
		ID:             uuid.New(),
		Activity:       activity,
		Minutes:        input.Minutes,
		CaloriesBurned: norms.WorkoutBurnKcal(activity, input.Minutes, profile.WeightKg),
		LoggedAt:       s.clock.Now(),
	}

	total, err := s.days.AppendWorkout(ctx, userID, s.today(), entry)
	if err != nil {
		return nil, fmt.Errorf("append workout: %w", err)
	}

	s.log.InfoContext(ctx, "workout logged",
		slog.Int64("user_id", int64(userID)),
		slog.String("activity", entry.Activity),
		slog.Float64("minutes", entry.Minutes),
		slog.Float64("burned_kcal", entry.CaloriesBurned),
	)

	return &WorkoutStatus{
		Entry:              entry,
		BurnedKcal:         total,
		RecommendedWaterML: norms.WorkoutWaterML(input.Minutes),
	}, nil
}
