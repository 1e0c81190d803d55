package tracker

import (
	"context"
	"fmt"

	"github.com/heartmarshall/myhealth-backend/internal/domain"
)

// Progress reports the user's current day: what has been consumed and burned
// so far against the daily targets. A day with no entries yields a report of
// zeros against the targets.
func (s *Service) Progress(ctx context.Context, userID domain.UserID) (*Report, error) {
	unlock := s.lockUser(userID)
	defer unlock()

	profile, err := s.getProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := s.today()
	day, err := s.days.Get(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf("get day log: %w", err)
	}

	dn := s.dailyNorms(ctx, *profile)

	consumed := day.CaloriesConsumed()
	burned := day.CaloriesBurned()

	return &Report{
		Date:                 today,
		WaterConsumedML:      day.WaterML,
		WaterTargetML:        dn.WaterTargetML,
		WaterRemainingML:     dn.WaterTargetML - day.WaterML,
		CaloriesConsumedKcal: consumed,
		CaloriesBurnedKcal:   burned,
		CalorieTargetKcal:    dn.CalorieTargetKcal,
		NetRemainingKcal:     dn.CalorieTargetKcal - consumed + burned,
		TemperatureC:         dn.TemperatureC,
	}, nil
}
