package store

import (
	"context"
	"sync"
)

// Memory is an in-process Store backed by a map. It is the test backend
// and the fallback when no database is configured.
type Memory struct {
	mu          sync.RWMutex
	collections map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{collections: make(map[string][]byte)}
}

// Read returns a copy of the stored blob for the collection.
func (m *Memory) Read(_ context.Context, collection string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.collections[collection]
	if !ok {
		return nil, ErrCollectionMissing
	}

	cpy := make([]byte, len(data))
	copy(cpy, data)
	return cpy, nil
}

// Write stores a copy of the blob under the collection name.
func (m *Memory) Write(_ context.Context, collection string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cpy := make([]byte, len(data))
	copy(cpy, data)
	m.collections[collection] = cpy
	return nil
}
