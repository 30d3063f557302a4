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

// SessionRepository persists the current-session singleton: a
// denormalized copy of the authenticated user, stored independently of
// the users collection.
type SessionRepository struct {
	mu    sync.Mutex
	store store.Store
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(s store.Store) *SessionRepository {
	return &SessionRepository{store: s}
}

// Get returns the persisted session user, or nil when no session exists.
func (r *SessionRepository) Get(ctx context.Context) (*model.UserResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := r.store.Read(ctx, store.CollectionSession)
	if err != nil {
		if errors.Is(err, store.ErrCollectionMissing) {
			return nil, nil
		}
		return nil, err
	}

	var user *model.UserResponse
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("decoding session: %w", err)
	}
	return user, nil
}

// Set persists user as the current session. Passing nil clears it.
func (r *SessionRepository) Set(ctx context.Context, user *model.UserResponse) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	return r.store.Write(ctx, store.CollectionSession, data)
}
