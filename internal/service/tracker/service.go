// Package tracker implements the daily health tracking business logic:
// profile setup dialogs, water/food/workout logging, and progress reports.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/myhealth-backend/internal/domain"
	"github.com/heartmarshall/myhealth-backend/internal/provider"
	"github.com/heartmarshall/myhealth-backend/internal/service/tracker/norms"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type profileRepo interface {
	Put(ctx context.Context, p domain.Profile) error
	Get(ctx context.Context, userID domain.UserID) (*domain.Profile, error)
}

type sessionRepo interface {
	Put(ctx context.Context, s domain.SetupSession) error
	Get(ctx context.Context, userID domain.UserID) (*domain.SetupSession, error)
	Delete(ctx context.Context, userID domain.UserID) error
}

type dayLogRepo interface {
	Get(ctx context.Context, userID domain.UserID, date domain.Date) (*domain.DayLog, error)
	AddWater(ctx context.Context, userID domain.UserID, date domain.Date, amountML float64) (float64, error)
	AppendFood(ctx context.Context, userID domain.UserID, date domain.Date, entry domain.FoodEntry) (float64, error)
	AppendWorkout(ctx context.Context, userID domain.UserID, date domain.Date, entry domain.WorkoutEntry) (float64, error)
}

type weatherProvider interface {
	FetchTemperature(ctx context.Context, city string) (*float64, error)
}

type foodProvider interface {
	FetchProduct(ctx context.Context, query string) (*provider.FoodResult, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the tracking business logic.
//
// Every operation runs under a per-user mutex, so interleaved calls for the
// same user cannot corrupt a setup dialog or lose a log entry. Operations
// for different users do not block each other. A user's mutex lives for the
// lifetime of the process.
type Service struct {
	profiles profileRepo
	sessions sessionRepo
	days     dayLogRepo
	weather  weatherProvider
	food     foodProvider
	clock    clockwork.Clock
	loc      *time.Location
	log      *slog.Logger

	mu        sync.Mutex
	userLocks map[domain.UserID]*sync.Mutex
}

// NewService creates a new tracker service. A nil location defaults to UTC.
func NewService(
	log *slog.Logger,
	profiles profileRepo,
	sessions sessionRepo,
	days dayLogRepo,
	weather weatherProvider,
	food foodProvider,
	clock clockwork.Clock,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.UTC
	}

	return &Service{
		profiles:  profiles,
		sessions:  sessions,
		days:      days,
		weather:   weather,
		food:      food,
		clock:     clock,
		loc:       loc,
		log:       log.With("service", "tracker"),
		userLocks: make(map[domain.UserID]*sync.Mutex),
	}
}

// lockUser acquires the per-user mutex and returns its unlock function.
func (s *Service) lockUser(userID domain.UserID) func() {
	s.mu.Lock()
	l, ok := s.userLocks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.userLocks[userID] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// today returns the current calendar date in the service timezone.
func (s *Service) today() domain.Date {
	return domain.DateOf(s.clock.Now(), s.loc)
}

// getProfile loads a user's profile, mapping absence to ErrNoProfile.
func (s *Service) getProfile(ctx context.Context, userID domain.UserID) (*domain.Profile, error) {
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNoProfile
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

// temperatureFor resolves the current temperature for a city. Weather is a
// best-effort input: any failure degrades to an unknown temperature.
func (s *Service) temperatureFor(ctx context.Context, city string) *float64 {
	tempC, err := s.weather.FetchTemperature(ctx, city)
	if err != nil {
		s.log.WarnContext(ctx, "weather lookup failed", slog.String("city", city), slog.String("error", err.Error()))
		return nil
	}
	return tempC
}

// dailyNorms computes the user's targets for today, consulting the weather
// provider for the heat adjustment.
func (s *Service) dailyNorms(ctx context.Context, p domain.Profile) DailyNorms {
	tempC := s.temperatureFor(ctx, p.City)
	return DailyNorms{
		WaterTargetML:     norms.WaterTargetML(p, tempC),
		CalorieTargetKcal: norms.CalorieTargetKcal(p),
		TemperatureC:      tempC,
	}
}
