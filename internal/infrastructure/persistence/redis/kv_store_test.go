package redis_test

import (
	"context"
	"os"
	"testing"

	"github.com/bnema/omnitab/internal/infrastructure/persistence/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Requires a running server: OMNITAB_TEST_REDIS_ADDR=localhost:6379
func TestKeyValueStore_Integration(t *testing.T) {
	addr := os.Getenv("OMNITAB_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("OMNITAB_TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()

	store, err := redis.Open(ctx, redis.Options{Addr: addr, HashKey: "omnitab:test:" + t.Name()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Put(ctx, "tabs", "https://a.com||A||1"))
	value, found, err := store.Get(ctx, "tabs")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "https://a.com||A||1", value)

	_, found, err = store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestOpen_RequiresAddr(t *testing.T) {
	_, err := redis.Open(context.Background(), redis.Options{})
	assert.Error(t, err)
}
