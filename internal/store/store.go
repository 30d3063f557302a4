// Package store provides whole-collection JSON blob persistence. Each
// collection is read and written as a single value; callers layer their
// own serialization and locking on top.
package store

import (
	"context"
	"errors"
)

// Collection names persisted by the platform.
const (
	CollectionUsers     = "users"
	CollectionRecipes   = "recipes"
	CollectionFavorites = "favorites"
	CollectionSession   = "session"
)

// ErrCollectionMissing indicates the named collection has never been written.
var ErrCollectionMissing = errors.New("collection missing")

// Store reads and writes named collections as opaque JSON-encoded blobs.
type Store interface {
	Read(ctx context.Context, collection string) ([]byte, error)
	Write(ctx context.Context, collection string, data []byte) error
}
