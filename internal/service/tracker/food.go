package tracker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/myhealth-backend/internal/domain"
)

// defaultPortionGrams is assumed when the user names a food without a weight.
const defaultPortionGrams = 100.0

// LogFood looks the described food up in the nutrition catalog, records the
// portion against the user's current day, and returns the new entry together
// with the day's calorie total.
//
// Returns ErrLookupUnavailable when the catalog fails or has no match; in
// that case nothing is recorded.
func (s *Service) LogFood(ctx context.Context, userID domain.UserID, input LogFoodInput) (*FoodStatus, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	unlock := s.lockUser(userID)
	defer unlock()

	profile, err := s.getProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	result, err := s.food.FetchProduct(ctx, input.Description)
	if err != nil {
		s.log.WarnContext(ctx, "food lookup failed",
			slog.String("query", input.Description),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%q: %w", input.Description, domain.ErrLookupUnavailable)
	}
	if result == nil {
		return nil, fmt.Errorf("%q: %w", input.Description, domain.ErrLookupUnavailable)
	}

	grams := input.PortionGrams()
	entry := domain.FoodEntry{
		ID:          uuid.New(),
		Description: result.Name,
		Grams:       grams,
		Calories:    result.KcalPer100g * grams / 100,
		LoggedAt:    s.clock.Now(),
	}

	total, err := s.days.AppendFood(ctx, userID, s.today(), entry)
	if err != nil {
		return nil, fmt.Errorf("append food: %w", err)
	}

	s.log.InfoContext(ctx, "food logged",
		slog.Int64("user_id", int64(profile.UserID)),
		slog.String("description", entry.Description),
		slog.Float64("grams", entry.Grams),
		slog.Float64("calories_kcal", entry.Calories),
	)

	return &FoodStatus{
		Entry:        entry,
		ConsumedKcal: total,
	}, nil
}
