package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SandeepaMuthukumari/Recipe-Sharing-Platform/internal/model"
)

func TestMemory_ReadMissing(t *testing.T) {
	m := NewMemory()

	_, err := m.Read(context.Background(), CollectionUsers)
	assert.ErrorIs(t, err, ErrCollectionMissing)
}

func TestMemory_WriteRead(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Write(ctx, CollectionRecipes, []byte(`[{"id":"r1"}]`)))

	data, err := m.Read(ctx, CollectionRecipes)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"r1"}]`, string(data))
}

func TestMemory_ReadReturnsCopy(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Write(ctx, CollectionFavorites, []byte(`{}`)))

	data, err := m.Read(ctx, CollectionFavorites)
	require.NoError(t, err)
	data[0] = 'X'

	again, err := m.Read(ctx, CollectionFavorites)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{}`), again, "mutating a read result must not affect the store")
}

func TestSeed_PopulatesMissingCollections(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, Seed(ctx, m))

	var users []model.User
	data, err := m.Read(ctx, CollectionUsers)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &users))
	require.Len(t, users, 2)
	assert.Equal(t, "ChefJohn", users[0].Username)
	assert.NotEmpty(t, users[0].AuthHash)
	assert.NotEqual(t, seedPassword, users[0].AuthHash, "passwords must never be stored in plain text")

	var recipes []model.Recipe
	data, err = m.Read(ctx, CollectionRecipes)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &recipes))
	require.Len(t, recipes, 3)
	assert.Equal(t, "Creamy Garlic Parmesan Pasta", recipes[0].Title)

	var favorites map[string][]string
	data, err = m.Read(ctx, CollectionFavorites)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &favorites))
	assert.Empty(t, favorites)
}

func TestSeed_DoesNotOverwriteExisting(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Write(ctx, CollectionRecipes, []byte(`[]`)))
	require.NoError(t, Seed(ctx, m))

	data, err := m.Read(ctx, CollectionRecipes)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), data, "an existing collection must be left untouched")
}

func TestSeed_Idempotent(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, Seed(ctx, m))
	first, err := m.Read(ctx, CollectionUsers)
	require.NoError(t, err)

	require.NoError(t, Seed(ctx, m))
	second, err := m.Read(ctx, CollectionUsers)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
