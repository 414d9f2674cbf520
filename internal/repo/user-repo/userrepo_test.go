package userrepo

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smmpanel/backend/internal/domain"
	"github.com/smmpanel/backend/internal/store"
	"github.com/smmpanel/backend/internal/store/memstore"
)

func newRepo() (*Repository, *memstore.Store) {
	st := memstore.New()
	return New(st), st
}

func testUser(id string) *domain.User {
	now := time.Date(2024, 11, 2, 16, 9, 57, 0, time.UTC)
	return &domain.User{
		ID:        id,
		Email:     "user@example.com",
		Balance:   decimal.NewFromInt(100),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestRepository_GetByID(t *testing.T) {
	repo, _ := newRepo()
	ctx := context.Background()

	got, err := repo.GetByID(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	user := testUser("u1")
	require.NoError(t, repo.Save(ctx, user))

	got, err = repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.ID)
	assert.Equal(t, user.Email, got.Email)
	assert.True(t, user.Balance.Equal(got.Balance))
	assert.True(t, user.CreatedAt.Equal(got.CreatedAt))
}

func TestRepository_SaveOverwrites(t *testing.T) {
	repo, _ := newRepo()
	ctx := context.Background()

	user := testUser("u1")
	require.NoError(t, repo.Save(ctx, user))

	user.Email = "other@example.com"
	require.NoError(t, repo.Save(ctx, user))

	got, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "other@example.com", got.Email)
}

func TestRepository_UpdateUsername(t *testing.T) {
	repo, _ := newRepo()
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, testUser("u1")))

	updatedAt := time.Date(2024, 11, 3, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.UpdateUsername(ctx, "u1", "panda42", updatedAt))

	got, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "panda42", got.Username)
	assert.True(t, updatedAt.Equal(got.UpdatedAt))

	err = repo.UpdateUsername(ctx, "missing", "panda42", updatedAt)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRepository_UpdateBalance(t *testing.T) {
	repo, _ := newRepo()
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, testUser("u1")))

	updatedAt := time.Date(2024, 11, 3, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.UpdateBalance(ctx, "u1", decimal.NewFromInt(420), updatedAt))

	got, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, got.Balance.Equal(decimal.NewFromInt(420)))

	err = repo.UpdateBalance(ctx, "missing", decimal.NewFromInt(1), updatedAt)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRepository_Delete(t *testing.T) {
	repo, _ := newRepo()
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, testUser("u1")))

	require.NoError(t, repo.Delete(ctx, "u1"))

	got, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, got)

	err = repo.Delete(ctx, "u1")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
