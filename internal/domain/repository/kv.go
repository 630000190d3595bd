package repository

import "context"

// Keys under which session state is persisted.
const (
	KeyTabs            = "tabs"
	KeyHistory         = "history"
	KeyBookmarks       = "bookmarks"
	KeySearchEngineDoc = "search_config"
)

// KeyValueStore is the persistent store behind tabs, history, bookmarks and
// cached search configuration.
type KeyValueStore interface {
	// Get returns the value stored under key. found is false for unknown keys.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key, value string) error

	// Close releases the underlying resources.
	Close() error
}
