package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/omnitab/internal/application/usecase"
	"github.com/bnema/omnitab/internal/domain/entity"
	"github.com/bnema/omnitab/internal/infrastructure/persistence/memory"
)

func TestManageBookmarks_AddRejectsDuplicate(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageBookmarksUseCase(memory.NewKeyValueStore())

	assert.False(t, uc.IsBookmarked("https://go.dev"))

	b, err := uc.Add(ctx, "https://go.dev", "t1")
	require.NoError(t, err)
	assert.Equal(t, entity.BookmarkID(1), b.ID)
	assert.True(t, uc.IsBookmarked("https://go.dev"))

	_, err = uc.Add(ctx, "https://go.dev", "t2")
	require.ErrorIs(t, err, entity.ErrDuplicateBookmark)

	list := uc.List()
	require.Len(t, list, 1)
	assert.Equal(t, "t1", list[0].Title)
}

func TestManageBookmarks_AddEmptyURL(t *testing.T) {
	uc := usecase.NewManageBookmarksUseCase(memory.NewKeyValueStore())
	_, err := uc.Add(testContext(), "   ", "x")
	require.ErrorIs(t, err, usecase.ErrEmptyURL)
}

func TestManageBookmarks_Delete(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageBookmarksUseCase(memory.NewKeyValueStore())
	b, err := uc.Add(ctx, "https://go.dev", "Go")
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, b.ID))
	assert.False(t, uc.IsBookmarked("https://go.dev"))
	require.ErrorIs(t, uc.Delete(ctx, b.ID), entity.ErrBookmarkNotFound)
}

func TestManageBookmarks_Toggle(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageBookmarksUseCase(memory.NewKeyValueStore())

	on, err := uc.Toggle(ctx, "https://go.dev", "Go")
	require.NoError(t, err)
	assert.True(t, on)

	on, err = uc.Toggle(ctx, "https://go.dev", "Go")
	require.NoError(t, err)
	assert.False(t, on)
	assert.Empty(t, uc.List())
}

func TestManageBookmarks_PersistsAndKeepsIDs(t *testing.T) {
	ctx := testContext()
	store := memory.NewKeyValueStore()

	first := usecase.NewManageBookmarksUseCase(store)
	_, err := first.Add(ctx, "https://a.test", "A")
	require.NoError(t, err)
	b, err := first.Add(ctx, "https://b.test", "B")
	require.NoError(t, err)
	require.NoError(t, first.Delete(ctx, b.ID))
	assert.True(t, first.RecordVisit(ctx, "https://a.test"))
	assert.False(t, first.RecordVisit(ctx, "https://unknown.test"))

	second := usecase.NewManageBookmarksUseCase(store)
	require.NoError(t, second.Load(ctx))

	list := second.List()
	require.Len(t, list, 1)
	assert.Equal(t, "https://a.test", list[0].URL)
	assert.Equal(t, int64(1), list[0].VisitCount)

	c, err := second.Add(ctx, "https://c.test", "C")
	require.NoError(t, err)
	assert.Equal(t, entity.BookmarkID(3), c.ID, "ids are never reused")
}

func TestManageBookmarks_SearchAndClear(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageBookmarksUseCase(memory.NewKeyValueStore())
	for _, u := range []string{"https://go.dev", "https://example.com", "https://golang.org"} {
		_, err := uc.Add(ctx, u, "")
		require.NoError(t, err)
	}

	hits := uc.Search(ctx, "go", 0)
	require.Len(t, hits, 2)
	assert.Equal(t, "https://go.dev", hits[0].URL, "insertion order")

	uc.ClearAll(ctx)
	assert.Empty(t, uc.List())
	assert.False(t, uc.IsBookmarked("https://go.dev"))
}
