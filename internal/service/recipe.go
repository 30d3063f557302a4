package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SandeepaMuthukumari/Recipe-Sharing-Platform/internal/model"
	"github.com/SandeepaMuthukumari/Recipe-Sharing-Platform/internal/repository"
)

var (
	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrTitleRequired      = errors.New("title is required")
	ErrOwnerRequired      = errors.New("user_id is required")
	ErrInvalidDifficulty  = errors.New("difficulty must be Easy, Medium or Hard")
	ErrInvalidCookingTime = errors.New("cooking_time must be a positive number of minutes")
	ErrInvalidServings    = errors.New("servings must be positive")
	ErrInvalidRating      = errors.New("rating must not be negative")
)

// RecipeService handles recipe CRUD, search and the favorites index.
type RecipeService struct {
	recipes   *repository.RecipeRepository
	favorites *repository.FavoriteRepository
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(recipes *repository.RecipeRepository, favorites *repository.FavoriteRepository) *RecipeService {
	return &RecipeService{recipes: recipes, favorites: favorites}
}

// ListAll returns all recipes.
func (s *RecipeService) ListAll(ctx context.Context) ([]model.Recipe, error) {
	return s.recipes.List(ctx)
}

// GetByID returns the recipe with the given id, or ErrRecipeNotFound.
func (s *RecipeService) GetByID(ctx context.Context, id string) (model.Recipe, error) {
	recipe, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return model.Recipe{}, ErrRecipeNotFound
		}
		return model.Recipe{}, err
	}
	return *recipe, nil
}

// ListByOwner returns all recipes owned by the given user.
func (s *RecipeService) ListByOwner(ctx context.Context, userID string) ([]model.Recipe, error) {
	return s.recipes.ListByOwner(ctx, userID)
}

// Create validates the request, assigns a collision-resistant id and a
// creation timestamp, and appends the recipe.
func (s *RecipeService) Create(ctx context.Context, req model.CreateRecipeRequest) (model.Recipe, error) {
	if err := validateRecipe(req); err != nil {
		return model.Recipe{}, err
	}

	recipe := model.Recipe{
		ID:           uuid.NewString(),
		Title:        req.Title,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		CookingTime:  req.CookingTime,
		Servings:     req.Servings,
		Difficulty:   req.Difficulty,
		Image:        req.Image,
		Rating:       req.Rating,
		Tags:         req.Tags,
		UserID:       req.UserID,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.recipes.Create(ctx, recipe); err != nil {
		return model.Recipe{}, err
	}
	return recipe, nil
}

// Update shallow-merges the patch onto the stored recipe. Fields the
// patch omits keep their previous values. Returns ErrRecipeNotFound if
// the id is absent.
func (s *RecipeService) Update(ctx context.Context, id string, patch model.RecipePatch) (model.Recipe, error) {
	if patch.Difficulty != nil && !model.ValidDifficulty(*patch.Difficulty) {
		return model.Recipe{}, ErrInvalidDifficulty
	}
	if patch.CookingTime != nil && *patch.CookingTime <= 0 {
		return model.Recipe{}, ErrInvalidCookingTime
	}
	if patch.Servings != nil && *patch.Servings <= 0 {
		return model.Recipe{}, ErrInvalidServings
	}
	if patch.Rating != nil && *patch.Rating < 0 {
		return model.Recipe{}, ErrInvalidRating
	}

	existing, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return model.Recipe{}, ErrRecipeNotFound
		}
		return model.Recipe{}, err
	}

	updated := *existing
	patch.Apply(&updated)

	if err := s.recipes.Update(ctx, updated); err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return model.Recipe{}, ErrRecipeNotFound
		}
		return model.Recipe{}, err
	}
	return updated, nil
}

// Delete removes the recipe and drops its id from every user's
// favorites. Deleting an id that does not exist is a no-op, in contrast
// to Update's strict not-found policy.
func (s *RecipeService) Delete(ctx context.Context, id string) error {
	if err := s.recipes.Delete(ctx, id); err != nil {
		return err
	}
	return s.favorites.RemoveRecipe(ctx, id)
}

// Search returns recipes whose title, description, tags or ingredients
// contain the query, case-insensitively. An empty query matches every
// recipe.
func (s *RecipeService) Search(ctx context.Context, query string) ([]model.Recipe, error) {
	recipes, err := s.recipes.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	matched := []model.Recipe{}
	for _, r := range recipes {
		if recipeMatches(r, q) {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

func recipeMatches(r model.Recipe, q string) bool {
	if strings.Contains(strings.ToLower(r.Title), q) ||
		strings.Contains(strings.ToLower(r.Description), q) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing), q) {
			return true
		}
	}
	return false
}

// ListFavorites returns the user's favorite recipe ids.
func (s *RecipeService) ListFavorites(ctx context.Context, userID string) ([]string, error) {
	return s.favorites.ListByUser(ctx, userID)
}

// AddFavorite adds recipeID to the user's favorites, a no-op when
// already present, and returns the resulting list.
func (s *RecipeService) AddFavorite(ctx context.Context, userID, recipeID string) ([]string, error) {
	return s.favorites.Add(ctx, userID, recipeID)
}

// RemoveFavorite removes recipeID from the user's favorites and returns
// the resulting list whether or not it was present.
func (s *RecipeService) RemoveFavorite(ctx context.Context, userID, recipeID string) ([]string, error) {
	return s.favorites.Remove(ctx, userID, recipeID)
}

func validateRecipe(req model.CreateRecipeRequest) error {
	if req.Title == "" {
		return ErrTitleRequired
	}
	if req.UserID == "" {
		return ErrOwnerRequired
	}
	if !model.ValidDifficulty(req.Difficulty) {
		return ErrInvalidDifficulty
	}
	if req.CookingTime <= 0 {
		return ErrInvalidCookingTime
	}
	if req.Servings <= 0 {
		return ErrInvalidServings
	}
	if req.Rating < 0 {
		return ErrInvalidRating
	}
	return nil
}
