package entity

import "time"

// BookmarkID uniquely identifies a bookmark.
type BookmarkID int64

// Bookmark represents a saved URL. At most one bookmark exists per URL.
type Bookmark struct {
	ID          BookmarkID `json:"id"`
	URL         string     `json:"url"`
	Title       string     `json:"title"`
	VisitCount  int64      `json:"visit_count"`
	CreatedAt   time.Time  `json:"created_at"`
	LastVisited time.Time  `json:"last_visited,omitempty"`
}

// NewBookmark creates a new bookmark for a URL.
func NewBookmark(id BookmarkID, rawURL, title string, now time.Time) *Bookmark {
	if title == "" {
		title = rawURL
	}
	return &Bookmark{
		ID:        id,
		URL:       rawURL,
		Title:     title,
		CreatedAt: now,
	}
}

// RecordVisit bumps the visit counter.
func (b *Bookmark) RecordVisit(now time.Time) {
	b.VisitCount++
	b.LastVisited = now
}

// Matches reports a case-insensitive substring hit on title or url.
// query must already be lower-cased.
func (b *Bookmark) Matches(query string) bool {
	return matchesAny(query, b.Title, b.URL)
}
