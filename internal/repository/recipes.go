package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/SandeepaMuthukumari/Recipe-Sharing-Platform/internal/model"
	"github.com/SandeepaMuthukumari/Recipe-Sharing-Platform/internal/store"
)

var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeRepository handles recipe persistence operations.
type RecipeRepository struct {
	mu    sync.Mutex
	store store.Store
}

// NewRecipeRepository creates a new RecipeRepository.
func NewRecipeRepository(s store.Store) *RecipeRepository {
	return &RecipeRepository{store: s}
}

func (r *RecipeRepository) load(ctx context.Context) ([]model.Recipe, error) {
	data, err := r.store.Read(ctx, store.CollectionRecipes)
	if err != nil {
		if errors.Is(err, store.ErrCollectionMissing) {
			return nil, nil
		}
		return nil, err
	}

	var recipes []model.Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, fmt.Errorf("decoding recipes collection: %w", err)
	}
	return recipes, nil
}

func (r *RecipeRepository) save(ctx context.Context, recipes []model.Recipe) error {
	data, err := json.Marshal(recipes)
	if err != nil {
		return fmt.Errorf("encoding recipes collection: %w", err)
	}
	return r.store.Write(ctx, store.CollectionRecipes, data)
}

// List returns all recipes in insertion order.
func (r *RecipeRepository) List(ctx context.Context) ([]model.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

// GetByID retrieves a recipe by id.
func (r *RecipeRepository) GetByID(ctx context.Context, id string) (*model.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	recipes, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range recipes {
		if recipes[i].ID == id {
			rec := recipes[i]
			return &rec, nil
		}
	}
	return nil, ErrRecipeNotFound
}

// ListByOwner returns all recipes whose UserID matches exactly.
func (r *RecipeRepository) ListByOwner(ctx context.Context, userID string) ([]model.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	recipes, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	owned := []model.Recipe{}
	for _, rec := range recipes {
		if rec.UserID == userID {
			owned = append(owned, rec)
		}
	}
	return owned, nil
}

// Create appends a new recipe.
func (r *RecipeRepository) Create(ctx context.Context, recipe model.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	recipes, err := r.load(ctx)
	if err != nil {
		return err
	}

	return r.save(ctx, append(recipes, recipe))
}

// Update replaces the stored recipe with the same id. Returns
// ErrRecipeNotFound if the id is absent.
func (r *RecipeRepository) Update(ctx context.Context, recipe model.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	recipes, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i := range recipes {
		if recipes[i].ID == recipe.ID {
			recipes[i] = recipe
			return r.save(ctx, recipes)
		}
	}
	return ErrRecipeNotFound
}

// Delete removes the recipe with the given id. Deleting an absent id is
// a silent no-op.
func (r *RecipeRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	recipes, err := r.load(ctx)
	if err != nil {
		return err
	}

	kept := recipes[:0]
	for _, rec := range recipes {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	return r.save(ctx, kept)
}
