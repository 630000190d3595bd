package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bnema/omnitab/internal/domain/repository"
)

type kvStore struct {
	db *sql.DB
}

// NewKeyValueStore returns a key/value store backed by the kv table.
// Closing the store closes db.
func NewKeyValueStore(db *sql.DB) repository.KeyValueStore {
	return &kvStore{db: db}
}

// Open connects to dbPath and returns a ready store.
func Open(ctx context.Context, dbPath string) (repository.KeyValueStore, error) {
	db, err := NewConnection(ctx, dbPath)
	if err != nil {
		return nil, err
	}
	return NewKeyValueStore(db), nil
}

func (s *kvStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, true, nil
}

func (s *kvStore) Put(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

func (s *kvStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
