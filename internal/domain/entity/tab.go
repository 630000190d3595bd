package entity

import (
	"time"

	"github.com/bnema/omnitab/internal/domain/url"
)

// TabID uniquely identifies a tab. IDs are never reused within a session.
type TabID string

// IDGenerator is a function that generates unique IDs.
type IDGenerator func() string

// DefaultTabTitle is shown for tabs that have not loaded a page yet.
const DefaultTabTitle = "New Tab"

// TabState tracks a tab through its navigation lifecycle.
type TabState int

const (
	// TabCreated means no navigation was issued yet (url empty).
	TabCreated TabState = iota
	// TabLoading means a navigation was issued.
	TabLoading
	// TabLoaded means the renderer reported completion.
	TabLoaded
)

// String returns a human-readable representation of the state.
func (s TabState) String() string {
	switch s {
	case TabCreated:
		return "created"
	case TabLoading:
		return "loading"
	case TabLoaded:
		return "loaded"
	default:
		return "unknown"
	}
}

// Tab is a single browsing context in the session.
type Tab struct {
	ID          TabID
	URL         string
	Title       string
	FaviconRef  string // opaque, never inspected
	Incognito   bool
	Active      bool
	Group       string // set by auto-grouping, empty otherwise
	Category    TabCategory
	State       TabState
	CreatedAt   time.Time
	LastVisitAt time.Time
}

// NewTab creates a blank tab.
func NewTab(id TabID, incognito bool, now time.Time) *Tab {
	return &Tab{
		ID:          id,
		Title:       DefaultTabTitle,
		Incognito:   incognito,
		Category:    CategoryDefault,
		State:       TabCreated,
		CreatedAt:   now,
		LastVisitAt: now,
	}
}

// Navigate records a navigation on the tab. An empty title keeps the
// current one. LastVisitAt never moves backwards.
func (t *Tab) Navigate(rawURL, title string, finished bool, now time.Time) {
	t.URL = rawURL
	if title != "" {
		t.Title = title
	}
	if now.After(t.LastVisitAt) {
		t.LastVisitAt = now
	}
	switch {
	case rawURL == "":
		t.State = TabCreated
	case finished:
		t.State = TabLoaded
	default:
		t.State = TabLoading
	}
	t.Category = CategorizeURL(rawURL)
}

// Host returns the tab's normalized host, or "" for blank tabs.
func (t *Tab) Host() string {
	return url.ExtractDomain(t.URL)
}

// DisplayTitle returns the title, falling back to the URL.
func (t *Tab) DisplayTitle() string {
	if t.Title != "" && t.Title != DefaultTabTitle {
		return t.Title
	}
	if t.URL != "" {
		return t.URL
	}
	return DefaultTabTitle
}

// TabList is the ordered tab collection with exactly one active tab
// whenever it is non-empty.
type TabList struct {
	Tabs        []*Tab
	ActiveIndex int
}

// NewTabList creates an empty tab list.
func NewTabList() *TabList {
	return &TabList{
		Tabs:        make([]*Tab, 0),
		ActiveIndex: -1,
	}
}

// Count returns the number of tabs.
func (tl *TabList) Count() int {
	return len(tl.Tabs)
}

// Get returns the tab at index.
func (tl *TabList) Get(index int) (*Tab, error) {
	if index < 0 || index >= len(tl.Tabs) {
		return nil, ErrIndexOutOfRange
	}
	return tl.Tabs[index], nil
}

// Active returns the active tab, or nil for an empty list.
func (tl *TabList) Active() *Tab {
	if tl.ActiveIndex < 0 || tl.ActiveIndex >= len(tl.Tabs) {
		return nil
	}
	return tl.Tabs[tl.ActiveIndex]
}

// Find returns a tab and its index by ID, or (nil, -1).
func (tl *TabList) Find(id TabID) (*Tab, int) {
	for i, tab := range tl.Tabs {
		if tab.ID == id {
			return tab, i
		}
	}
	return nil, -1
}

// Append adds tab at the end and activates it. Fails at maxTabs.
func (tl *TabList) Append(tab *Tab, maxTabs int) error {
	if maxTabs > 0 && len(tl.Tabs) >= maxTabs {
		return ErrCapacityExceeded
	}
	tl.Tabs = append(tl.Tabs, tab)
	return tl.Activate(len(tl.Tabs) - 1)
}

// Activate moves the active flag to index.
func (tl *TabList) Activate(index int) error {
	if index < 0 || index >= len(tl.Tabs) {
		return ErrIndexOutOfRange
	}
	for i, tab := range tl.Tabs {
		tab.Active = i == index
	}
	tl.ActiveIndex = index
	return nil
}

// RemoveAt removes the tab at index. Removing the active tab activates the
// preceding one, or the new first tab when index was 0.
func (tl *TabList) RemoveAt(index int) (*Tab, error) {
	if index < 0 || index >= len(tl.Tabs) {
		return nil, ErrIndexOutOfRange
	}
	if len(tl.Tabs) == 1 {
		return nil, ErrLastTabProtected
	}

	removed := tl.Tabs[index]
	tl.Tabs = append(tl.Tabs[:index], tl.Tabs[index+1:]...)
	removed.Active = false

	next := tl.ActiveIndex
	switch {
	case index == tl.ActiveIndex:
		next = max(index-1, 0)
	case index < tl.ActiveIndex:
		next = tl.ActiveIndex - 1
	}
	if err := tl.Activate(next); err != nil {
		return nil, err
	}
	return removed, nil
}

// Move moves the tab at from to position to, keeping the same tab active.
func (tl *TabList) Move(from, to int) error {
	if from < 0 || from >= len(tl.Tabs) || to < 0 || to >= len(tl.Tabs) {
		return ErrIndexOutOfRange
	}
	if from == to {
		return nil
	}
	active := tl.Active()
	tab := tl.Tabs[from]
	tl.Tabs = append(tl.Tabs[:from], tl.Tabs[from+1:]...)
	tl.Tabs = append(tl.Tabs[:to], append([]*Tab{tab}, tl.Tabs[to:]...)...)
	for i, t := range tl.Tabs {
		if t == active {
			tl.ActiveIndex = i
		}
	}
	return nil
}

// AutoGroup recomputes every tab's group from scratch: tabs sharing a host
// with at least one other tab get group = host, all others get "".
func (tl *TabList) AutoGroup() map[string]int {
	counts := make(map[string]int)
	for _, tab := range tl.Tabs {
		if host := tab.Host(); host != "" {
			counts[host]++
		}
	}

	groups := make(map[string]int)
	for _, tab := range tl.Tabs {
		host := tab.Host()
		if host != "" && counts[host] >= 2 {
			tab.Group = host
			groups[host]++
			continue
		}
		tab.Group = ""
	}
	return groups
}

// Snapshot returns value copies of all tabs in order.
func (tl *TabList) Snapshot() []Tab {
	out := make([]Tab, len(tl.Tabs))
	for i, tab := range tl.Tabs {
		out[i] = *tab
	}
	return out
}
