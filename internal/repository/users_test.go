package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SandeepaMuthukumari/Recipe-Sharing-Platform/internal/model"
	"github.com/SandeepaMuthukumari/Recipe-Sharing-Platform/internal/store"
)

func testUser(id, email string) model.User {
	return model.User{
		ID:        id,
		Username:  "user-" + id,
		Email:     email,
		AuthHash:  "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		CreatedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	repo := NewUserRepository(store.NewMemory())
	ctx := context.Background()

	u := testUser("u1", "a@example.com")
	require.NoError(t, repo.Create(ctx, u))

	byEmail, err := repo.GetByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, u, *byEmail)

	byID, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, u, *byID)
}

func TestUserRepository_GetMissing(t *testing.T) {
	repo := NewUserRepository(store.NewMemory())
	ctx := context.Background()

	_, err := repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(store.NewMemory())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testUser("u1", "dup@example.com")))

	err := repo.Create(ctx, testUser("u2", "dup@example.com"))
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1, "failed create must not modify the collection")
}

func TestUserRepository_CorruptCollection(t *testing.T) {
	s := store.NewMemory()
	ctx := context.Background()
	require.NoError(t, s.Write(ctx, store.CollectionUsers, []byte(`{not json`)))

	repo := NewUserRepository(s)
	_, err := repo.List(ctx)
	assert.Error(t, err, "a corrupt collection must surface a decode error")
}
