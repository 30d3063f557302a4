package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SandeepaMuthukumari/Recipe-Sharing-Platform/internal/store"
)

func TestFavoriteRepository_EmptyListNotNil(t *testing.T) {
	repo := NewFavoriteRepository(store.NewMemory())

	list, err := repo.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestFavoriteRepository_AddDeduplicates(t *testing.T) {
	repo := NewFavoriteRepository(store.NewMemory())
	ctx := context.Background()

	list, err := repo.Add(ctx, "u1", "r1")
	require.NoError(t, err)
	assert.Equal(t, []string{"r1"}, list)

	list, err = repo.Add(ctx, "u1", "r1")
	require.NoError(t, err)
	assert.Equal(t, []string{"r1"}, list, "adding twice must not duplicate")
}

func TestFavoriteRepository_InsertionOrder(t *testing.T) {
	repo := NewFavoriteRepository(store.NewMemory())
	ctx := context.Background()

	_, err := repo.Add(ctx, "u1", "r2")
	require.NoError(t, err)
	_, err = repo.Add(ctx, "u1", "r1")
	require.NoError(t, err)
	_, err = repo.Add(ctx, "u1", "r3")
	require.NoError(t, err)

	list, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"r2", "r1", "r3"}, list)
}

func TestFavoriteRepository_RemoveIdempotent(t *testing.T) {
	repo := NewFavoriteRepository(store.NewMemory())
	ctx := context.Background()

	list, err := repo.Remove(ctx, "u1", "r1")
	require.NoError(t, err, "removing from an empty list must not fail")
	assert.Empty(t, list)

	_, err = repo.Add(ctx, "u1", "r1")
	require.NoError(t, err)

	list, err = repo.Remove(ctx, "u1", "r1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFavoriteRepository_ListsAreIndependent(t *testing.T) {
	repo := NewFavoriteRepository(store.NewMemory())
	ctx := context.Background()

	_, err := repo.Add(ctx, "u1", "r1")
	require.NoError(t, err)
	_, err = repo.Add(ctx, "u2", "r1")
	require.NoError(t, err)

	_, err = repo.Remove(ctx, "u1", "r1")
	require.NoError(t, err)

	list, err := repo.ListByUser(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, []string{"r1"}, list)
}

func TestFavoriteRepository_RemoveRecipeFromAllUsers(t *testing.T) {
	repo := NewFavoriteRepository(store.NewMemory())
	ctx := context.Background()

	_, err := repo.Add(ctx, "u1", "r1")
	require.NoError(t, err)
	_, err = repo.Add(ctx, "u1", "r2")
	require.NoError(t, err)
	_, err = repo.Add(ctx, "u2", "r1")
	require.NoError(t, err)

	require.NoError(t, repo.RemoveRecipe(ctx, "r1"))

	list, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"r2"}, list)

	list, err = repo.ListByUser(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, list)
}
