package tracker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/myhealth-backend/internal/domain"

	"github.com/heartmarshall/myhealth-backend/internal/service/tracker/norms"
)

// LogWater records a drink of water against the user's current day and
// returns the day's running total next to the target.
func (s *Service) LogWater(ctx context.Context, userID domain.UserID, input LogWaterInput) (*WaterStatus, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	unlock := s.lockUser(userID)
	defer unlock()

	profile, err := s.getProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	total, err := s.days.AddWater(ctx, userID, s.today(), input.AmountML)
	if err != nil {
		return nil, fmt.Errorf("add water: %w", err)
	}

	target := norms.WaterTargetML(*profile, s.temperatureFor(ctx, profile.City))

	s.log.InfoContext(ctx, "water logged",
		slog.Int64("user_id", int64(userID)),
		slog.Float64("amount_ml", input.AmountML),
		slog.Float64("total_ml", total),
	)

	return &WaterStatus{
		ConsumedML:  total,
		TargetML:    target,
		RemainingML: target - total,
	}, nil
}
