package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bnema/omnitab/internal/domain/entity"
	"github.com/bnema/omnitab/internal/domain/repository"
	"github.com/bnema/omnitab/internal/logging"
)

// DefaultHistoryLimit caps the number of history entries kept.
const DefaultHistoryLimit = 100

// logURLMaxLen is the max length for URLs in log messages.
const logURLMaxLen = 60

// ManageHistoryUseCase keeps a recency-ordered, de-duplicated visit list and
// persists it to the key/value store after every change.
type ManageHistoryUseCase struct {
	store      repository.KeyValueStore
	maxEntries int
	now        func() time.Time

	mu      sync.RWMutex
	entries []*entity.HistoryEntry // head is the most recent visit

	persistMu sync.Mutex
}

// NewManageHistoryUseCase creates a new history use case.
func NewManageHistoryUseCase(store repository.KeyValueStore, maxEntries int) *ManageHistoryUseCase {
	if maxEntries <= 0 {
		maxEntries = DefaultHistoryLimit
	}
	return &ManageHistoryUseCase{
		store:      store,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// Load replaces the in-memory list with the persisted one. A corrupt
// document leaves history empty.
func (uc *ManageHistoryUseCase) Load(ctx context.Context) error {
	log := logging.FromContext(ctx)

	raw, found, err := uc.store.Get(ctx, repository.KeyHistory)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	var entries []*entity.HistoryEntry
	if found && raw != "" {
		if err := json.Unmarshal([]byte(raw), &entries); err != nil {
			log.Warn().Err(err).Msg("history document is corrupt, starting empty")
			entries = nil
		}
	}
	if len(entries) > uc.maxEntries {
		entries = entries[:uc.maxEntries]
	}

	uc.mu.Lock()
	uc.entries = entries
	uc.mu.Unlock()

	log.Debug().Int("count", len(entries)).Msg("history loaded")
	return nil
}

// RecordVisit moves url to the head of history with the latest title and
// evicts the oldest entries beyond the cap. Blank pages are ignored.
func (uc *ManageHistoryUseCase) RecordVisit(ctx context.Context, rawURL, title string) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" || rawURL == "about:blank" {
		return
	}
	now := uc.now()

	uc.mu.Lock()
	entry := entity.NewHistoryEntry(rawURL, title, now)
	for i, existing := range uc.entries {
		if existing.URL == rawURL {
			entry.VisitCount = existing.VisitCount + 1
			entry.CreatedAt = existing.CreatedAt
			if title == "" {
				entry.Title = existing.Title
			}
			uc.entries = append(uc.entries[:i], uc.entries[i+1:]...)
			break
		}
	}
	uc.entries = append([]*entity.HistoryEntry{entry}, uc.entries...)
	if len(uc.entries) > uc.maxEntries {
		uc.entries = uc.entries[:uc.maxEntries]
	}
	uc.mu.Unlock()

	logging.FromContext(ctx).Debug().
		Str("url", logging.TruncateURL(rawURL, logURLMaxLen)).
		Int64("visits", entry.VisitCount).
		Msg("history visit recorded")

	uc.persist(ctx)
}

// Search returns entries whose title, url or domain contains query,
// most recent first.
func (uc *ManageHistoryUseCase) Search(_ context.Context, query string, limit int) []entity.HistoryEntry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	uc.mu.RLock()
	defer uc.mu.RUnlock()

	var out []entity.HistoryEntry
	for _, e := range uc.entries {
		if limit > 0 && len(out) >= limit {
			break
		}
		if e.Matches(q) {
			out = append(out, *e)
		}
	}
	return out
}

// Recent returns up to limit entries, most recent first. limit <= 0 returns all.
func (uc *ManageHistoryUseCase) Recent(limit int) []entity.HistoryEntry {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	n := len(uc.entries)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]entity.HistoryEntry, n)
	for i := 0; i < n; i++ {
		out[i] = *uc.entries[i]
	}
	return out
}

// Snapshot returns a copy of all entries for the suggestion worker.
func (uc *ManageHistoryUseCase) Snapshot(_ context.Context) ([]entity.HistoryEntry, error) {
	return uc.Recent(0), nil
}

// Delete removes the entry for url. Returns false when url is unknown.
func (uc *ManageHistoryUseCase) Delete(ctx context.Context, rawURL string) bool {
	uc.mu.Lock()
	removed := false
	for i, e := range uc.entries {
		if e.URL == rawURL {
			uc.entries = append(uc.entries[:i], uc.entries[i+1:]...)
			removed = true
			break
		}
	}
	uc.mu.Unlock()

	if removed {
		uc.persist(ctx)
	}
	return removed
}

// ClearAll removes every entry.
func (uc *ManageHistoryUseCase) ClearAll(ctx context.Context) {
	uc.mu.Lock()
	uc.entries = nil
	uc.mu.Unlock()

	logging.FromContext(ctx).Info().Msg("history cleared")
	uc.persist(ctx)
}

// Count returns the number of entries.
func (uc *ManageHistoryUseCase) Count() int {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return len(uc.entries)
}

// persist writes the current list. Failures are logged and swallowed.
func (uc *ManageHistoryUseCase) persist(ctx context.Context) {
	uc.persistMu.Lock()
	defer uc.persistMu.Unlock()

	uc.mu.RLock()
	data, err := json.Marshal(uc.entries)
	uc.mu.RUnlock()

	log := logging.FromContext(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to encode history")
		return
	}
	if err := uc.store.Put(ctx, repository.KeyHistory, string(data)); err != nil {
		log.Warn().Err(err).Msg("failed to persist history")
	}
}
