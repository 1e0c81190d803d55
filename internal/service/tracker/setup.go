package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/myhealth-backend/internal/domain"
)

// StartSetup begins a profile setup dialog for the user and returns the
// session positioned at the first field.
// Any dialog already in progress is discarded and started over.
func (s *Service) StartSetup(ctx context.Context, userID domain.UserID) (*domain.SetupSession, error) {
	unlock := s.lockUser(userID)
	defer unlock()

	session := domain.NewSetupSession(userID, s.clock.Now())
	if err := s.sessions.Put(ctx, session); err != nil {
		return nil, fmt.Errorf("put setup session: %w", err)
	}

	s.log.InfoContext(ctx, "setup started", slog.Int64("user_id", int64(userID)))

	return &session, nil
}

// SubmitSetupValue feeds one raw answer into the user's setup dialog.
//
// On a validation failure the stored session does not advance and the error
// names the offending field; the caller re-prompts for the same field.
// Once the last field is accepted the draft becomes the user's profile
// (replacing any previous one), the session is deleted, and the result
// carries the freshly computed daily norms.
func (s *Service) SubmitSetupValue(ctx context.Context, userID domain.UserID, raw string) (*SetupProgress, error) {
	unlock := s.lockUser(userID)
	defer unlock()

	session, err := s.sessions.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNoActiveSession
		}
		return nil, fmt.Errorf("get setup session: %w", err)
	}

	field := session.CurrentField()
	if err := field.Assign(&session.Draft, raw); err != nil {
		return nil, err
	}

	session.FieldIdx++
	if session.FieldIdx < len(domain.SetupFields) {
		session.State = domain.SetupFields[session.FieldIdx].State
		if err := s.sessions.Put(ctx, *session); err != nil {
			return nil, fmt.Errorf("put setup session: %w", err)
		}
		return &SetupProgress{Session: session}, nil
	}

	// Last field accepted: the draft becomes the profile.
	profile := session.Draft
	profile.UpdatedAt = s.clock.Now()

	if err := profile.Validate(); err != nil {
		return nil, err
	}

	if err := s.profiles.Put(ctx, profile); err != nil {
		return nil, fmt.Errorf("put profile: %w", err)
	}
	if err := s.sessions.Delete(ctx, userID); err != nil {
		return nil, fmt.Errorf("delete setup session: %w", err)
	}

	dn := s.dailyNorms(ctx, profile)

	s.log.InfoContext(ctx, "setup completed",
		slog.Int64("user_id", int64(userID)),
		slog.String("city", profile.City),
		slog.Float64("water_target_ml", dn.WaterTargetML),
		slog.Float64("calorie_target_kcal", dn.CalorieTargetKcal),
	)

	return &SetupProgress{
		Completed: true,
		Profile:   &profile,
		Norms:     &dn,
	}, nil
}

// CancelSetup abandons the user's setup dialog. Cancelling when no dialog is
// in progress is a no-op.
func (s *Service) CancelSetup(ctx context.Context, userID domain.UserID) error {
	unlock := s.lockUser(userID)
	defer unlock()

	if err := s.sessions.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete setup session: %w", err)
	}

	s.log.InfoContext(ctx, "setup cancelled", slog.Int64("user_id", int64(userID)))

	return nil
}

// SetupStatus returns the user's setup dialog state.
// Returns ErrNoActiveSession when no dialog is in progress.
func (s *Service) SetupStatus(ctx context.Context, userID domain.UserID) (*domain.SetupSession, error) {
	unlock := s.lockUser(userID)
	defer unlock()

	session, err := s.sessions.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNoActiveSession
		}
		return nil, fmt.Errorf("get setup session: %w", err)
	}

	return session, nil
}
