// Package memory provides an in-memory implementation of driven.BlobStore,
// used in tests and as a throwaway backend.
package memory

import (
	"context"
	"sync"

	"github.com/repolens-labs/repolens-cli/internal/core/domain"
	"github.com/repolens-labs/repolens-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.BlobStore = (*Store)(nil)

// Store is an in-memory blob store.
type Store struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewStore creates an empty in-memory blob store.
func NewStore() *Store {
	return &Store{
		blobs: make(map[string][]byte),
	}
}

// Get returns the blob stored under key.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.blobs[key]
	if !ok {
		return nil, domain.ErrNotFound
	}

	// Return a copy to avoid callers mutating internal state.
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Put stores data under key, overwriting any previous value.
func (s *Store) Put(_ context.Context, key string, data []byte) error {
	stored := make([]byte, len(data))
	copy(stored, data)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = stored
	return nil
}

// Delete removes the blob under key. Deleting an absent key is a no-op.
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, key)
	return nil
}

// Close is a no-op for the in-memory store.
func (s *Store) Close() error {
	return nil
}
