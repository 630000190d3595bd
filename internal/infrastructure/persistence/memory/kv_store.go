// Package memory provides an in-process key/value store used for
// ephemeral sessions and tests.
package memory

import (
	"context"
	"sync"

	"github.com/bnema/omnitab/internal/domain/repository"
)

// KeyValueStore keeps values in a map.
type KeyValueStore struct {
	mu   sync.RWMutex
	data map[string]string
}

var _ repository.KeyValueStore = (*KeyValueStore)(nil)

// NewKeyValueStore returns an empty store.
func NewKeyValueStore() *KeyValueStore {
	return &KeyValueStore{data: make(map[string]string)}
}

// Get returns the value stored under key.
func (s *KeyValueStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

// Put stores value under key.
func (s *KeyValueStore) Put(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

// Close is a no-op.
func (s *KeyValueStore) Close() error {
	return nil
}
