// Package repository layers typed collection access on top of the blob
// store. Every mutation is a whole-collection read-modify-write guarded
// by a per-repository mutex, so operations on one collection never
// interleave.
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

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already in use")
)

// UserRepository handles user persistence operations.
type UserRepository struct {
	mu    sync.Mutex
	store store.Store
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(s store.Store) *UserRepository {
	return &UserRepository{store: s}
}

func (r *UserRepository) load(ctx context.Context) ([]model.User, error) {
	data, err := r.store.Read(ctx, store.CollectionUsers)
	if err != nil {
		if errors.Is(err, store.ErrCollectionMissing) {
			return nil, nil
		}
		return nil, err
	}

	var users []model.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("decoding users collection: %w", err)
	}
	return users, nil
}

func (r *UserRepository) save(ctx context.Context, users []model.User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encoding users collection: %w", err)
	}
	return r.store.Write(ctx, store.CollectionUsers, data)
}

// List returns all users.
func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

// GetByEmail retrieves a user by exact email match.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Email == email {
			u := users[i]
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

// GetByID retrieves a user by id.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].ID == id {
			u := users[i]
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

// Create appends a new user. Email uniqueness is enforced here, under
// the repository lock, so concurrent registrations cannot both win.
func (r *UserRepository) Create(ctx context.Context, user model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i := range users {
		if users[i].Email == user.Email {
			return ErrDuplicateEmail
		}
	}

	return r.save(ctx, append(users, user))
}
