// Package redis stores session state in a Redis hash so several devices can
// share one session.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bnema/omnitab/internal/domain/repository"
	"github.com/bnema/omnitab/internal/logging"
)

// DefaultHashKey is the hash holding every stored key.
const DefaultHashKey = "omnitab:kv"

// Options configures the Redis connection.
type Options struct {
	Addr        string
	Username    string
	Password    string
	DB          int
	HashKey     string
	DialTimeout time.Duration
}

// KeyValueStore is a repository.KeyValueStore on top of a Redis hash.
type KeyValueStore struct {
	client  *redis.Client
	hashKey string
}

var _ repository.KeyValueStore = (*KeyValueStore)(nil)

// Open connects and pings the server.
func Open(ctx context.Context, opts Options) (*KeyValueStore, error) {
	if opts.Addr == "" {
		return nil, fmt.Errorf("redis address cannot be empty")
	}
	if opts.HashKey == "" {
		opts.HashKey = DefaultHashKey
	}
	if opts.DialTimeout <= 0 {
		opts.DialTimeout = 5 * time.Second
	}

	client := redis.NewClient(&redis.Options{
		Addr:        opts.Addr,
		Username:    opts.Username,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: opts.DialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, opts.DialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", opts.Addr, err)
	}

	logging.FromContext(ctx).Info().Str("addr", opts.Addr).Str("hash", opts.HashKey).Msg("redis store connected")
	return NewKeyValueStore(client, opts.HashKey), nil
}

// NewKeyValueStore wraps an existing client.
func NewKeyValueStore(client *redis.Client, hashKey string) *KeyValueStore {
	if hashKey == "" {
		hashKey = DefaultHashKey
	}
	return &KeyValueStore{client: client, hashKey: hashKey}
}

// Get returns the value stored under key.
func (s *KeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.HGet(ctx, s.hashKey, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, true, nil
}

// Put stores value under key.
func (s *KeyValueStore) Put(ctx context.Context, key, value string) error {
	if err := s.client.HSet(ctx, s.hashKey, key, value).Err(); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

// Close closes the client.
func (s *KeyValueStore) Close() error {
	return s.client.Close()
}
