package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/SandeepaMuthukumari/Recipe-Sharing-Platform/internal/store"
)

// FavoriteRepository handles the per-user favorites index: a mapping
// from user id to an ordered list of recipe ids.
type FavoriteRepository struct {
	mu    sync.Mutex
	store store.Store
}

// NewFavoriteRepository creates a new FavoriteRepository.
func NewFavoriteRepository(s store.Store) *FavoriteRepository {
	return &FavoriteRepository{store: s}
}

func (r *FavoriteRepository) load(ctx context.Context) (map[string][]string, error) {
	data, err := r.store.Read(ctx, store.CollectionFavorites)
	if err != nil {
		if errors.Is(err, store.ErrCollectionMissing) {
			return map[string][]string{}, nil
		}
		return nil, err
	}

	var favorites map[string][]string
	if err := json.Unmarshal(data, &favorites); err != nil {
		return nil, fmt.Errorf("decoding favorites collection: %w", err)
	}
	if favorites == nil {
		favorites = map[string][]string{}
	}
	return favorites, nil
}

func (r *FavoriteRepository) save(ctx context.Context, favorites map[string][]string) error {
	data, err := json.Marshal(favorites)
	if err != nil {
		return fmt.Errorf("encoding favorites collection: %w", err)
	}
	return r.store.Write(ctx, store.CollectionFavorites, data)
}

// ListByUser returns the user's favorite recipe ids in insertion order.
// A user with no favorites gets an empty list, never nil.
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	favorites, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	list := favorites[userID]
	if list == nil {
		list = []string{}
	}
	return list, nil
}

// Add appends recipeID to the user's favorites unless already present,
// and returns the resulting list.
func (r *FavoriteRepository) Add(ctx context.Context, userID, recipeID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	favorites, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	list := favorites[userID]
	for _, id := range list {
		if id == recipeID {
			return list, nil
		}
	}

	list = append(list, recipeID)
	favorites[userID] = list
	if err := r.save(ctx, favorites); err != nil {
		return nil, err
	}
	return list, nil
}

// Remove deletes recipeID from the user's favorites if present and
// returns the resulting list. Removing an absent id is not an error.
func (r *FavoriteRepository) Remove(ctx context.Context, userID, recipeID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	favorites, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	updated := []string{}
	for _, id := range favorites[userID] {
		if id != recipeID {
			updated = append(updated, id)
		}
	}

	favorites[userID] = updated
	if err := r.save(ctx, favorites); err != nil {
		return nil, err
	}
	return updated, nil
}

// RemoveRecipe drops recipeID from every user's favorites. Used to keep
// the index consistent when a recipe is deleted.
func (r *FavoriteRepository) RemoveRecipe(ctx context.Context, recipeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	favorites, err := r.load(ctx)
	if err != nil {
		return err
	}

	changed := false
	for userID, list := range favorites {
		kept := list[:0]
		for _, id := range list {
			if id != recipeID {
				kept = append(kept, id)
			}
		}
		if len(kept) != len(list) {
			favorites[userID] = kept
			changed = true
		}
	}

	if !changed {
		return nil
	}
	return r.save(ctx, favorites)
}
