package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/omnitab/internal/application/port/mocks"
	"github.com/bnema/omnitab/internal/application/usecase"
	"github.com/bnema/omnitab/internal/domain/autocomplete"
	"github.com/bnema/omnitab/internal/domain/entity"
)

type fakeHistory struct {
	entries []entity.HistoryEntry
	err     error
	calls   atomic.Int32
}

func (f *fakeHistory) Snapshot(context.Context) ([]entity.HistoryEntry, error) {
	f.calls.Add(1)
	return f.entries, f.err
}

type fakeBookmarks struct {
	bookmarks []entity.Bookmark
	err       error
}

func (f *fakeBookmarks) Snapshot(context.Context) ([]entity.Bookmark, error) {
	return f.bookmarks, f.err
}

func suggestionTypes(items []autocomplete.Suggestion) []autocomplete.SuggestionType {
	out := make([]autocomplete.SuggestionType, len(items))
	for i, s := range items {
		out[i] = s.Type
	}
	return out
}

func TestSuggest_ComputeOrder(t *testing.T) {
	ctx := testContext()
	history := &fakeHistory{entries: []entity.HistoryEntry{
		{URL: "https://github.com/bnema/omnitab", Title: "omnitab"},
		{URL: "https://example.com", Title: "Example"},
	}}
	bookmarks := &fakeBookmarks{bookmarks: []entity.Bookmark{
		{ID: 1, URL: "https://docs.github.com", Title: "GitHub Docs"},
	}}
	uc := usecase.NewSuggestUseCase(history, bookmarks, nil, usecase.SuggestOptions{})

	got := uc.Compute(ctx, "github")

	assert.Equal(t, []autocomplete.SuggestionType{
		autocomplete.TypeDomainCompletion,
		autocomplete.TypeSearchEngine,
		autocomplete.TypeSearchEngine,
		autocomplete.TypeHistory,
		autocomplete.TypeBookmark,
		autocomplete.TypeNewTabAction,
	}, suggestionTypes(got))
	assert.Equal(t, "https://www.github.com", got[0].TargetURL)
	assert.Equal(t, "https://www.google.com/search?q=github", got[1].TargetURL)
	assert.Equal(t, "https://www.bing.com/search?q=github", got[2].TargetURL)
	assert.Equal(t, "https://github.com/bnema/omnitab", got[3].TargetURL)
	assert.Equal(t, "https://www.google.com/search?q=github", got[5].TargetURL)
}

func TestSuggest_URLLiteralAndQuickActions(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewSuggestUseCase(nil, nil, nil, usecase.SuggestOptions{MaxSuggestions: 10})

	got := uc.Compute(ctx, "maps.example.com")
	types := suggestionTypes(got)
	assert.Contains(t, types, autocomplete.TypeURLLiteral)
	assert.Contains(t, types, autocomplete.TypeQuickAction)

	for _, s := range got {
		if s.Type == autocomplete.TypeURLLiteral {
			assert.Equal(t, "https://maps.example.com", s.TargetURL)
		}
	}
}

func TestSuggest_CapAndDomainFirst(t *testing.T) {
	ctx := testContext()
	history := &fakeHistory{}
	for i := range 20 {
		history.entries = append(history.entries, entity.HistoryEntry{
			URL: fmt.Sprintf("https://site%d.test/match", i),
		})
	}
	uc := usecase.NewSuggestUseCase(history, nil, nil, usecase.SuggestOptions{})

	got := uc.Compute(ctx, "match")
	require.Len(t, got, usecase.DefaultMaxSuggestions)
	assert.Equal(t, autocomplete.TypeDomainCompletion, got[0].Type)
}

func TestSuggest_DedupesByTarget(t *testing.T) {
	ctx := testContext()
	history := &fakeHistory{entries: []entity.HistoryEntry{{URL: "https://www.github.com", Title: "GitHub"}}}
	bookmarks := &fakeBookmarks{bookmarks: []entity.Bookmark{{URL: "https://www.github.com", Title: "GitHub"}}}
	uc := usecase.NewSuggestUseCase(history, bookmarks, nil, usecase.SuggestOptions{})

	got := uc.Compute(ctx, "github")
	seen := map[string]int{}
	for _, s := range got {
		if s.Type != autocomplete.TypeNewTabAction {
			seen[s.TargetURL]++
		}
	}
	for target, n := range seen {
		assert.Equal(t, 1, n, target)
	}
	assert.Equal(t, autocomplete.TypeDomainCompletion, got[0].Type)
}

func TestSuggest_FailingSourcesContributeNothing(t *testing.T) {
	ctx := testContext()
	history := &fakeHistory{err: errors.New("history locked")}
	bookmarks := &fakeBookmarks{err: errors.New("bookmarks locked")}
	uc := usecase.NewSuggestUseCase(history, bookmarks, nil, usecase.SuggestOptions{})

	got := uc.Compute(ctx, "rust book")
	require.NotEmpty(t, got)
	for _, s := range got {
		assert.NotEqual(t, autocomplete.TypeHistory, s.Type)
		assert.NotEqual(t, autocomplete.TypeBookmark, s.Type)
	}
	assert.Equal(t, autocomplete.TypeSearchEngine, got[0].Type)
}

func TestSuggest_EmptyQuery(t *testing.T) {
	uc := usecase.NewSuggestUseCase(nil, nil, nil, usecase.SuggestOptions{})
	assert.Nil(t, uc.Compute(testContext(), "   "))
}

func TestSuggest_CurrentEngineAlwaysOffered(t *testing.T) {
	tests := []struct {
		name      string
		template  string
		wantFirst string
		wantName  string
		wantNext  string
	}{
		{
			name:      "raw template outside the engine list",
			template:  "https://search.brave.com/search?q=%s",
			wantFirst: "https://search.brave.com/search?q=hello+world",
			wantName:  "search.brave.com",
			wantNext:  "https://www.google.com/search?q=hello+world",
		},
		{
			name:      "listed engine is not offered twice",
			template:  "https://www.bing.com/search?q=%s",
			wantFirst: "https://www.bing.com/search?q=hello+world",
			wantName:  "Bing",
			wantNext:  "https://www.google.com/search?q=hello+world",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()
			provider := mocks.NewMockSearchConfigProvider(t)
			provider.EXPECT().DefaultEngineTemplate(mock.Anything).Return(tt.template, nil)
			provider.EXPECT().Engines(mock.Anything).Return(entity.DefaultSearchEngines(), nil)
			resolver := usecase.NewResolveInputUseCase(provider)
			uc := usecase.NewSuggestUseCase(nil, nil, resolver, usecase.SuggestOptions{})

			got := uc.Compute(ctx, "hello world")

			require.GreaterOrEqual(t, len(got), 2)
			assert.Equal(t, autocomplete.TypeSearchEngine, got[0].Type)
			assert.Equal(t, tt.wantFirst, got[0].TargetURL)
			assert.Equal(t, tt.wantName, got[0].Subtitle)
			assert.Equal(t, autocomplete.TypeSearchEngine, got[1].Type)
			assert.Equal(t, tt.wantNext, got[1].TargetURL)
			assert.Equal(t, resolver.Resolve(ctx, "hello world").URL, got[0].TargetURL)
		})
	}
}
