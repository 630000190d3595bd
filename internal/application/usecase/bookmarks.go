package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bnema/omnitab/internal/domain/entity"
	"github.com/bnema/omnitab/internal/domain/repository"
	"github.com/bnema/omnitab/internal/logging"
)

// ErrEmptyURL is returned when bookmarking a blank URL.
var ErrEmptyURL = errors.New("url is empty")

// bookmarkDocument is the persisted form of the bookmark list.
type bookmarkDocument struct {
	NextID    entity.BookmarkID  `json:"next_id"`
	Bookmarks []*entity.Bookmark `json:"bookmarks"`
}

// ManageBookmarksUseCase keeps bookmarks in insertion order with a URL index
// for constant-time membership checks. Every mutation is persisted.
type ManageBookmarksUseCase struct {
	store repository.KeyValueStore
	now   func() time.Time

	mu        sync.RWMutex
	bookmarks []*entity.Bookmark
	byURL     map[string]struct{}
	nextID    entity.BookmarkID

	persistMu sync.Mutex
}

// NewManageBookmarksUseCase creates a new bookmarks use case.
func NewManageBookmarksUseCase(store repository.KeyValueStore) *ManageBookmarksUseCase {
	return &ManageBookmarksUseCase{
		store:  store,
		now:    time.Now,
		byURL:  make(map[string]struct{}),
		nextID: 1,
	}
}

// Load replaces the in-memory list with the persisted one.
func (uc *ManageBookmarksUseCase) Load(ctx context.Context) error {
	log := logging.FromContext(ctx)

	raw, found, err := uc.store.Get(ctx, repository.KeyBookmarks)
	if err != nil {
		return fmt.Errorf("failed to load bookmarks: %w", err)
	}

	var doc bookmarkDocument
	if found && raw != "" {
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			log.Warn().Err(err).Msg("bookmark document is corrupt, starting empty")
			doc = bookmarkDocument{}
		}
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.bookmarks = nil
	uc.byURL = make(map[string]struct{}, len(doc.Bookmarks))
	uc.nextID = max(doc.NextID, 1)
	for _, b := range doc.Bookmarks {
		if b == nil || b.URL == "" {
			continue
		}
		if _, dup := uc.byURL[b.URL]; dup {
			continue
		}
		uc.bookmarks = append(uc.bookmarks, b)
		uc.byURL[b.URL] = struct{}{}
		if b.ID >= uc.nextID {
			uc.nextID = b.ID + 1
		}
	}

	log.Debug().Int("count", len(uc.bookmarks)).Msg("bookmarks loaded")
	return nil
}

// Add bookmarks url. Returns ErrDuplicateBookmark when url is already saved.
func (uc *ManageBookmarksUseCase) Add(ctx context.Context, rawURL, title string) (entity.Bookmark, error) {
	log := logging.FromContext(ctx)
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return entity.Bookmark{}, ErrEmptyURL
	}

	uc.mu.Lock()
	if _, exists := uc.byURL[rawURL]; exists {
		uc.mu.Unlock()
		log.Debug().Str("url", rawURL).Msg("URL already bookmarked")
		return entity.Bookmark{}, fmt.Errorf("failed to add bookmark %q: %w", rawURL, entity.ErrDuplicateBookmark)
	}
	b := entity.NewBookmark(uc.nextID, rawURL, title, uc.now())
	uc.nextID++
	uc.bookmarks = append(uc.bookmarks, b)
	uc.byURL[rawURL] = struct{}{}
	added := *b
	uc.mu.Unlock()

	log.Info().Str("url", rawURL).Int64("id", int64(added.ID)).Msg("bookmark added")
	uc.persist(ctx)
	return added, nil
}

// IsBookmarked reports whether url is saved.
func (uc *ManageBookmarksUseCase) IsBookmarked(rawURL string) bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	_, ok := uc.byURL[rawURL]
	return ok
}

// Delete removes the bookmark with id.
func (uc *ManageBookmarksUseCase) Delete(ctx context.Context, id entity.BookmarkID) error {
	uc.mu.Lock()
	idx := -1
	for i, b := range uc.bookmarks {
		if b.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		uc.mu.Unlock()
		return fmt.Errorf("failed to delete bookmark %d: %w", id, entity.ErrBookmarkNotFound)
	}
	delete(uc.byURL, uc.bookmarks[idx].URL)
	uc.bookmarks = append(uc.bookmarks[:idx], uc.bookmarks[idx+1:]...)
	uc.mu.Unlock()

	logging.FromContext(ctx).Info().Int64("id", int64(id)).Msg("bookmark deleted")
	uc.persist(ctx)
	return nil
}

// Toggle adds url when missing and removes it otherwise. Returns true when
// the URL ends up bookmarked.
func (uc *ManageBookmarksUseCase) Toggle(ctx context.Context, rawURL, title string) (bool, error) {
	if b, ok := uc.FindByURL(rawURL); ok {
		return false, uc.Delete(ctx, b.ID)
	}
	if _, err := uc.Add(ctx, rawURL, title); err != nil {
		return false, err
	}
	return true, nil
}

// FindByURL returns the bookmark saved for url.
func (uc *ManageBookmarksUseCase) FindByURL(rawURL string) (entity.Bookmark, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	for _, b := range uc.bookmarks {
		if b.URL == rawURL {
			return *b, true
		}
	}
	return entity.Bookmark{}, false
}

// RecordVisit bumps the visit count of the bookmark for url, if any.
func (uc *ManageBookmarksUseCase) RecordVisit(ctx context.Context, rawURL string) bool {
	uc.mu.Lock()
	if _, ok := uc.byURL[rawURL]; !ok {
		uc.mu.Unlock()
		return false
	}
	for _, b := range uc.bookmarks {
		if b.URL == rawURL {
			b.RecordVisit(uc.now())
			break
		}
	}
	uc.mu.Unlock()

	uc.persist(ctx)
	return true
}

// ClearAll removes every bookmark.
func (uc *ManageBookmarksUseCase) ClearAll(ctx context.Context) {
	uc.mu.Lock()
	uc.bookmarks = nil
	uc.byURL = make(map[string]struct{})
	uc.mu.Unlock()

	logging.FromContext(ctx).Info().Msg("bookmarks cleared")
	uc.persist(ctx)
}

// Search returns bookmarks whose title or url contains query, in insertion order.
func (uc *ManageBookmarksUseCase) Search(_ context.Context, query string, limit int) []entity.Bookmark {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	uc.mu.RLock()
	defer uc.mu.RUnlock()

	var out []entity.Bookmark
	for _, b := range uc.bookmarks {
		if limit > 0 && len(out) >= limit {
			break
		}
		if b.Matches(q) {
			out = append(out, *b)
		}
	}
	return out
}

// List returns all bookmarks in insertion order.
func (uc *ManageBookmarksUseCase) List() []entity.Bookmark {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	out := make([]entity.Bookmark, len(uc.bookmarks))
	for i, b := range uc.bookmarks {
		out[i] = *b
	}
	return out
}

// Snapshot returns a copy of all bookmarks for the suggestion worker.
func (uc *ManageBookmarksUseCase) Snapshot(_ context.Context) ([]entity.Bookmark, error) {
	return uc.List(), nil
}

func (uc *ManageBookmarksUseCase) persist(ctx context.Context) {
	uc.persistMu.Lock()
	defer uc.persistMu.Unlock()

	uc.mu.RLock()
	data, err := json.Marshal(bookmarkDocument{NextID: uc.nextID, Bookmarks: uc.bookmarks})
	uc.mu.RUnlock()

	log := logging.FromContext(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to encode bookmarks")
		return
	}
	if err := uc.store.Put(ctx, repository.KeyBookmarks, string(data)); err != nil {
		log.Warn().Err(err).Msg("failed to persist bookmarks")
	}
}
