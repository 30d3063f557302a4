package state

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SandeepaMuthukumari/Recipe-Sharing-Platform/internal/model"
	"github.com/SandeepaMuthukumari/Recipe-Sharing-Platform/internal/repository"
	"github.com/SandeepaMuthukumari/Recipe-Sharing-Platform/internal/service"
	"github.com/SandeepaMuthukumari/Recipe-Sharing-Platform/internal/store"
)

func newTestRecipes(t *testing.T, seed bool) (*Recipes, *recorder) {
	t.Helper()
	s := store.NewMemory()
	if seed {
		require.NoError(t, store.Seed(context.Background(), s))
	}
	svc := service.NewRecipeService(
		repository.NewRecipeRepository(s),
		repository.NewFavoriteRepository(s),
	)
	rec := &recorder{}
	return NewRecipes(svc, rec.notify), rec
}

func createRequest(title string) model.CreateRecipeRequest {
	return model.CreateRecipeRequest{
		Title:        title,
		Description:  "test recipe",
		Ingredients:  []string{"salt"},
		Instructions: []string{"mix"},
		CookingTime:  5,
		Servings:     2,
		Difficulty:   model.DifficultyEasy,
		Image:        "https://example.com/r.jpg",
		Rating:       4,
		Tags:         []string{"test"},
		UserID:       "u1",
	}
}

func TestRecipes_FetchAll(t *testing.T) {
	c, _ := newTestRecipes(t, true)

	c.FetchAll(context.Background())

	s := c.Snapshot()
	assert.Len(t, s.Recipes, 3)
	assert.False(t, s.Loading)
	assert.Empty(t, s.Error)
}

func TestRecipes_FetchByID(t *testing.T) {
	c, _ := newTestRecipes(t, true)

	c.FetchByID(context.Background(), "recipe1")

	s := c.Snapshot()
	require.NotNil(t, s.CurrentRecipe)
	assert.Equal(t, "Creamy Garlic Parmesan Pasta", s.CurrentRecipe.Title)
}

func TestRecipes_FetchByID_NotFound(t *testing.T) {
	c, rec := newTestRecipes(t, true)

	c.FetchByID(context.Background(), "ghost")

	s := c.Snapshot()
	assert.Nil(t, s.CurrentRecipe)
	assert.Equal(t, service.ErrRecipeNotFound.Error(), s.Error)
	assert.Equal(t, LevelError, rec.last(t).Level)
}

func TestRecipes_CreatePrepends(t *testing.T) {
	c, rec := newTestRecipes(t, true)
	ctx := context.Background()

	c.FetchAll(ctx)
	c.FetchByOwner(ctx, "u1")
	c.Create(ctx, createRequest("Newest Dish"))

	s := c.Snapshot()
	require.Len(t, s.Recipes, 4)
	assert.Equal(t, "Newest Dish", s.Recipes[0].Title, "created recipe must be prepended")
	require.NotEmpty(t, s.UserRecipes)
	assert.Equal(t, "Newest Dish", s.UserRecipes[0].Title)
	assert.Equal(t, LevelSuccess, rec.last(t).Level)
}

func TestRecipes_UpdateReplacesEverywhere(t *testing.T) {
	c, _ := newTestRecipes(t, true)
	ctx := context.Background()

	c.FetchAll(ctx)
	c.FetchByOwner(ctx, "user1")
	c.FetchByID(ctx, "recipe1")

	title := "Renamed Pasta"
	c.Update(ctx, "recipe1", model.RecipePatch{Title: &title})

	s := c.Snapshot()
	require.NotNil(t, s.CurrentRecipe)
	assert.Equal(t, title, s.CurrentRecipe.Title)

	for _, r := range s.Recipes {
		if r.ID == "recipe1" {
			assert.Equal(t, title, r.Title)
		}
	}
	for _, r := range s.UserRecipes {
		if r.ID == "recipe1" {
			assert.Equal(t, title, r.Title)
		}
	}
}

func TestRecipes_UpdateNotFound(t *testing.T) {
	c, rec := newTestRecipes(t, true)

	title := "x"
	c.Update(context.Background(), "ghost", model.RecipePatch{Title: &title})

	s := c.Snapshot()
	assert.Equal(t, service.ErrRecipeNotFound.Error(), s.Error)
	assert.Equal(t, LevelError, rec.last(t).Level)
}

func TestRecipes_DeleteRemovesFromLists(t *testing.T) {
	c, _ := newTestRecipes(t, true)
	ctx := context.Background()

	c.FetchAll(ctx)
	c.FetchByOwner(ctx, "user1")

	c.Delete(ctx, "recipe1")

	s := c.Snapshot()
	assert.Len(t, s.Recipes, 2)
	for _, r := range s.Recipes {
		assert.NotEqual(t, "recipe1", r.ID)
	}
	for _, r := range s.UserRecipes {
		assert.NotEqual(t, "recipe1", r.ID)
	}
}

func TestRecipes_SearchFiltersList(t *testing.T) {
	c, _ := newTestRecipes(t, true)
	ctx := context.Background()

	c.Search(ctx, "pasta")

	s := c.Snapshot()
	require.Len(t, s.Recipes, 1)
	assert.Equal(t, "Creamy Garlic Parmesan Pasta", s.Recipes[0].Title)
}

func TestRecipes_EmptySearchRefetchesAll(t *testing.T) {
	c, _ := newTestRecipes(t, true)
	ctx := context.Background()

	c.Search(ctx, "pasta")
	require.Len(t, c.Snapshot().Recipes, 1)

	c.Search(ctx, "")
	assert.Len(t, c.Snapshot().Recipes, 3, "empty query must restore the full list")
}

func TestRecipes_FavoritesLastWriteWins(t *testing.T) {
	c, rec := newTestRecipes(t, true)
	ctx := context.Background()

	c.AddFavorite(ctx, "u1", "recipe1")
	assert.Equal(t, []string{"recipe1"}, c.Snapshot().Favorites)
	assert.Equal(t, LevelSuccess, rec.last(t).Level)

	c.AddFavorite(ctx, "u1", "recipe2")
	assert.Equal(t, []string{"recipe1", "recipe2"}, c.Snapshot().Favorites)

	c.RemoveFavorite(ctx, "u1", "recipe1")
	assert.Equal(t, []string{"recipe2"}, c.Snapshot().Favorites)

	c.FetchFavorites(ctx, "u1")
	assert.Equal(t, []string{"recipe2"}, c.Snapshot().Favorites)
}

func TestRecipes_ClearCurrent(t *testing.T) {
	c, _ := newTestRecipes(t, true)
	ctx := context.Background()

	c.FetchByID(ctx, "recipe1")
	require.NotNil(t, c.Snapshot().CurrentRecipe)

	c.ClearCurrent()
	assert.Nil(t, c.Snapshot().CurrentRecipe)
}

func TestRecipes_SnapshotIsACopy(t *testing.T) {
	c, _ := newTestRecipes(t, true)
	ctx := context.Background()

	c.FetchAll(ctx)

	s := c.Snapshot()
	s.Recipes[0].Title = "mutated"

	assert.NotEqual(t, "mutated", c.Snapshot().Recipes[0].Title)
}
