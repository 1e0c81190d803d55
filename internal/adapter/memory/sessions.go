package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/heartmarshall/myhealth-backend/internal/domain"
)

// SetupSessionRepo stores at most one setup session per user.
type SetupSessionRepo struct {
	mu     sync.RWMutex
	byUser map[domain.UserID]domain.SetupSession
}

// NewSetupSessionRepo creates an empty setup session repository.
func NewSetupSessionRepo() *SetupSessionRepo {
	return &SetupSessionRepo{byUser: make(map[domain.UserID]domain.SetupSession)}
}

// Put inserts or replaces the session for s.UserID.
func (r *SetupSessionRepo) Put(_ context.Context, s domain.SetupSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byUser[s.UserID] = s
	return nil
}

// Get returns the session for a user.
// Returns domain.ErrNotFound if the user has no session in progress.
func (r *SetupSessionRepo) Get(_ context.Context, userID domain.UserID) (*domain.SetupSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byUser[userID]
	if !ok {
		return nil, fmt.Errorf("setup session %d: %w", userID, domain.ErrNotFound)
	}

	return &s, nil
}

// Delete removes the session for a user.
// Deleting a session that does not exist is a no-op.
func (r *SetupSessionRepo) Delete(_ context.Context, userID domain.UserID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byUser, userID)
	return nil
}
