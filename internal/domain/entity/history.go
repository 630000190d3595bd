package entity

import (
	"strings"
	"time"

	"github.com/bnema/omnitab/internal/domain/url"
)

// HistoryEntry represents a visited URL in browsing history.
type HistoryEntry struct {
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	VisitCount  int64     `json:"visit_count"`
	LastVisited time.Time `json:"last_visited"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewHistoryEntry creates a new history entry for a URL.
func NewHistoryEntry(rawURL, title string, now time.Time) *HistoryEntry {
	return &HistoryEntry{
		URL:         rawURL,
		Title:       title,
		VisitCount:  1,
		LastVisited: now,
		CreatedAt:   now,
	}
}

// Matches reports a case-insensitive substring hit on title, url or domain.
// query must already be lower-cased.
func (h *HistoryEntry) Matches(query string) bool {
	return matchesAny(query, h.Title, h.URL, url.ExtractDomain(h.URL))
}

func matchesAny(lowerQuery string, fields ...string) bool {
	if lowerQuery == "" {
		return false
	}
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), lowerQuery) {
			return true
		}
	}
	return false
}
