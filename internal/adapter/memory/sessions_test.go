package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/myhealth-backend/internal/domain"
)

func TestSetupSessionRepo_GetMissing(t *testing.T) {
	t.Parallel()

	repo := NewSetupSessionRepo()

	got, err := repo.Get(context.Background(), 42)

	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, got)
}

func TestSetupSessionRepo_PutGet(t *testing.T) {
	t.Parallel()

	repo := NewSetupSessionRepo()
	ctx := context.Background()
	started := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)

	s := domain.NewSetupSession(42, started)
	s.Draft.WeightKg = 80
	s.FieldIdx = 1
	s.State = domain.SetupFields[1].State

	require.NoError(t, repo.Put(ctx, s))

	got, err := repo.Get(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, s, *got)
	assert.Equal(t, 80.0, got.Draft.WeightKg)
}

func TestSetupSessionRepo_PutReplaces(t *testing.T) {
	t.Parallel()

	repo := NewSetupSessionRepo()
	ctx := context.Background()
	started := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Put(ctx, domain.NewSetupSession(42, started)))

	replacement := domain.NewSetupSession(42, started.Add(time.Hour))
	require.NoError(t, repo.Put(ctx, replacement))

	got, err := repo.Get(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, started.Add(time.Hour), got.StartedAt)
}

func TestSetupSessionRepo_Delete(t *testing.T) {
	t.Parallel()

	repo := NewSetupSessionRepo()
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, domain.NewSetupSession(42, time.Now())))
	require.NoError(t, repo.Delete(ctx, 42))

	_, err := repo.Get(ctx, 42)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSetupSessionRepo_DeleteMissing(t *testing.T) {
	t.Parallel()

	repo := NewSetupSessionRepo()

	assert.NoError(t, repo.Delete(context.Background(), 42))
}

func TestSetupSessionRepo_GetReturnsCopy(t *testing.T) {
	t.Parallel()

	repo := NewSetupSessionRepo()
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, domain.NewSetupSession(42, time.Now())))

	first, err := repo.Get(ctx, 42)
	require.NoError(t, err)
	first.Draft.WeightKg = 999
	first.FieldIdx = 5

	second, err := repo.Get(ctx, 42)
	require.NoError(t, err)
	assert.Zero(t, second.Draft.WeightKg)
	assert.Zero(t, second.FieldIdx)
}
