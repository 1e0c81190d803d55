// Package memory implements the tracker repositories with in-process maps.
//
// All repositories are safe for concurrent use. Values are copied on the way
// in and out, so a caller can never mutate stored state through a returned
// pointer.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/heartmarshall/myhealth-backend/internal/domain"
)

// ProfileRepo stores one profile per user.
type ProfileRepo struct {
	mu     sync.RWMutex
	byUser map[domain.UserID]domain.Profile
}

// NewProfileRepo creates an empty profile repository.
func NewProfileRepo() *ProfileRepo {
	return &ProfileRepo{byUser: make(map[domain.UserID]domain.Profile)}
}

// Put inserts or replaces the profile for p.UserID.
func (r *ProfileRepo) Put(_ context.Context, p domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byUser[p.UserID] = p
	return nil
}

// Get returns the profile for a user.
// Returns domain.ErrNotFound if the user has never completed setup.
func (r *ProfileRepo) Get(_ context.Context, userID domain.UserID) (*domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byUser[userID]
	if !ok {
		return nil, fmt.Errorf("profile %d: %w", userID, domain.ErrNotFound)
	}

	return &p, nil
}
