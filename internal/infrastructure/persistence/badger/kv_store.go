// Package badger stores session state in an embedded Badger database.
package badger

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"

	"github.com/bnema/omnitab/internal/domain/repository"
	"github.com/bnema/omnitab/internal/logging"
)

const keyPrefix = "omnitab:kv:"

// KeyValueStore is a repository.KeyValueStore on top of Badger.
type KeyValueStore struct {
	db *badger.DB
}

var _ repository.KeyValueStore = (*KeyValueStore)(nil)

// Open opens (or creates) the Badger directory at path.
func Open(ctx context.Context, path string) (*KeyValueStore, error) {
	if path == "" {
		return nil, fmt.Errorf("badger path cannot be empty")
	}
	if err := os.MkdirAll(path, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create badger directory: %w", err)
	}

	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger: %w", err)
	}

	logging.FromContext(ctx).Info().Str("path", path).Msg("badger store opened")
	return &KeyValueStore{db: db}, nil
}

// Get returns the value stored under key.
func (s *KeyValueStore) Get(_ context.Context, key string) (string, bool, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return string(value), true, nil
}

// Put stores value under key.
func (s *KeyValueStore) Put(_ context.Context, key, value string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

// Close flushes and closes the database.
func (s *KeyValueStore) Close() error {
	return s.db.Close()
}
