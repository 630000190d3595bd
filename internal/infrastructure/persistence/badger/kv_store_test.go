package badger_test

import (
	"context"
	"testing"

	"github.com/bnema/omnitab/internal/infrastructure/persistence/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyValueStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := badger.Open(ctx, dir)
	require.NoError(t, err)

	_, found, err := store.Get(ctx, "bookmarks")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Put(ctx, "bookmarks", `{"next_id":2}`))
	require.NoError(t, store.Close())

	reopened, err := badger.Open(ctx, dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	value, found, err := reopened.Get(ctx, "bookmarks")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"next_id":2}`, value)
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := badger.Open(context.Background(), "")
	assert.Error(t, err)
}
