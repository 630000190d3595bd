package entity_test

import (
	"testing"
	"time"

	"github.com/bnema/omnitab/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func newList(t *testing.T, urls ...string) *entity.TabList {
	t.Helper()
	tl := entity.NewTabList()
	for i, u := range urls {
		tab := entity.NewTab(entity.TabID(string(rune('a'+i))), false, t0)
		if u != "" {
			tab.Navigate(u, "", true, t0)
		}
		require.NoError(t, tl.Append(tab, 10))
	}
	return tl
}

func activeCount(tl *entity.TabList) int {
	n := 0
	for _, tab := range tl.Tabs {
		if tab.Active {
			n++
		}
	}
	return n
}

func TestTabList_AppendActivatesAndCaps(t *testing.T) {
	tl := entity.NewTabList()
	for i := 0; i < 3; i++ {
		require.NoError(t, tl.Append(entity.NewTab(entity.TabID(string(rune('a'+i))), false, t0), 3))
		assert.Equal(t, i, tl.ActiveIndex)
		assert.Equal(t, 1, activeCount(tl))
	}

	err := tl.Append(entity.NewTab("x", false, t0), 3)
	assert.ErrorIs(t, err, entity.ErrCapacityExceeded)
	assert.Equal(t, 3, tl.Count())
	assert.Equal(t, 2, tl.ActiveIndex)
}

func TestTabList_RemoveAt(t *testing.T) {
	tests := []struct {
		name       string
		active     int
		remove     int
		wantActive entity.TabID
		wantErr    error
	}{
		{name: "close active middle activates previous", active: 1, remove: 1, wantActive: "a"},
		{name: "close active first activates new first", active: 0, remove: 0, wantActive: "b"},
		{name: "close before active keeps active", active: 2, remove: 0, wantActive: "c"},
		{name: "close after active keeps active", active: 0, remove: 2, wantActive: "a"},
		{name: "out of range", active: 0, remove: 3, wantActive: "a", wantErr: entity.ErrIndexOutOfRange},
		{name: "negative", active: 0, remove: -1, wantActive: "a", wantErr: entity.ErrIndexOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl := newList(t, "", "", "")
			require.NoError(t, tl.Activate(tt.active))

			_, err := tl.RemoveAt(tt.remove)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 3, tl.Count())
			} else {
				require.NoError(t, err)
				assert.Equal(t, 2, tl.Count())
			}
			assert.Equal(t, tt.wantActive, tl.Active().ID)
			assert.Equal(t, 1, activeCount(tl))
		})
	}
}

func TestTabList_RemoveLastTabProtected(t *testing.T) {
	tl := newList(t, "https://example.com")
	_, err := tl.RemoveAt(0)
	assert.ErrorIs(t, err, entity.ErrLastTabProtected)
	assert.Equal(t, 1, tl.Count())
	assert.True(t, tl.Tabs[0].Active)
}

func TestTabList_Move(t *testing.T) {
	tl := newList(t, "", "", "")
	require.NoError(t, tl.Activate(0))

	require.NoError(t, tl.Move(0, 2))
	assert.Equal(t, []entity.TabID{"b", "c", "a"}, []entity.TabID{tl.Tabs[0].ID, tl.Tabs[1].ID, tl.Tabs[2].ID})
	assert.Equal(t, entity.TabID("a"), tl.Active().ID)
	assert.Equal(t, 2, tl.ActiveIndex)

	assert.ErrorIs(t, tl.Move(0, 5), entity.ErrIndexOutOfRange)
}

func TestTabList_AutoGroup(t *testing.T) {
	tl := newList(t, "https://example.com/a", "https://www.example.com/b", "https://other.com")

	groups := tl.AutoGroup()
	assert.Equal(t, map[string]int{"example.com": 2}, groups)
	assert.Equal(t, "example.com", tl.Tabs[0].Group)
	assert.Equal(t, tl.Tabs[0].Group, tl.Tabs[1].Group)
	assert.Empty(t, tl.Tabs[2].Group)

	// Recomputed from scratch.
	tl.Tabs[1].Navigate("https://third.org", "", true, t0)
	tl.AutoGroup()
	for _, tab := range tl.Tabs {
		assert.Empty(t, tab.Group)
	}
}

func TestTab_NavigateLifecycle(t *testing.T) {
	tab := entity.NewTab("a", true, t0)
	assert.Equal(t, entity.TabCreated, tab.State)
	assert.Equal(t, entity.DefaultTabTitle, tab.Title)

	tab.Navigate("https://www.youtube.com/watch", "", false, t0.Add(time.Second))
	assert.Equal(t, entity.TabLoading, tab.State)
	assert.Equal(t, entity.CategoryVideo, tab.Category)
	assert.Equal(t, entity.DefaultTabTitle, tab.Title)

	tab.Navigate("https://www.youtube.com/watch", "Video", true, t0.Add(2*time.Second))
	assert.Equal(t, entity.TabLoaded, tab.State)
	assert.Equal(t, "Video", tab.Title)
	assert.Equal(t, t0.Add(2*time.Second), tab.LastVisitAt)

	// Clock skew never moves the visit time backwards.
	tab.Navigate("https://github.com", "", true, t0)
	assert.Equal(t, t0.Add(2*time.Second), tab.LastVisitAt)
	assert.True(t, tab.Incognito)
}

func TestTabState_String(t *testing.T) {
	assert.Equal(t, "created", entity.TabCreated.String())
	assert.Equal(t, "loading", entity.TabLoading.String())
	assert.Equal(t, "loaded", entity.TabLoaded.String())
	assert.Equal(t, "unknown", entity.TabState(42).String())
}
