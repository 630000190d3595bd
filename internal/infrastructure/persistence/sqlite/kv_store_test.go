package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/bnema/omnitab/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/omnitab/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func TestKeyValueStore_GetPut(t *testing.T) {
	ctx := testCtx()
	store, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "omnitab.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	_, found, err := store.Get(ctx, "tabs")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Put(ctx, "tabs", "a||b"))
	require.NoError(t, store.Put(ctx, "tabs", "c||d"))

	value, found, err := store.Get(ctx, "tabs")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "c||d", value)
}

func TestKeyValueStore_ReopenKeepsData(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "nested", "omnitab.db")

	store, err := sqlite.Open(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, "history", `[]`))
	require.NoError(t, store.Close())

	reopened, err := sqlite.Open(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	value, found, err := reopened.Get(ctx, "history")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[]`, value)
}

func TestNewConnection_EmptyPath(t *testing.T) {
	_, err := sqlite.NewConnection(testCtx(), "")
	assert.Error(t, err)
}
