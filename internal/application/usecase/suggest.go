package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/omnitab/internal/domain/autocomplete"
	"github.com/bnema/omnitab/internal/domain/entity"
	"github.com/bnema/omnitab/internal/domain/url"
	"github.com/bnema/omnitab/internal/logging"
)

const (
	// DefaultMaxSuggestions caps the merged suggestion list.
	DefaultMaxSuggestions = 8
	// DefaultMaxSearchSuggestions caps the search engine offers.
	DefaultMaxSearchSuggestions = 2
)

// HistorySource provides a point-in-time copy of history.
type HistorySource interface {
	Snapshot(ctx context.Context) ([]entity.HistoryEntry, error)
}

// BookmarkSource provides a point-in-time copy of bookmarks.
type BookmarkSource interface {
	Snapshot(ctx context.Context) ([]entity.Bookmark, error)
}

// SuggestOptions bounds the suggestion list.
type SuggestOptions struct {
	MaxSuggestions       int
	MaxSearchSuggestions int
}

// SuggestUseCase merges every suggestion source into one ranked list.
// It holds no state between calls.
type SuggestUseCase struct {
	history   HistorySource
	bookmarks BookmarkSource
	resolver  *ResolveInputUseCase
	opts      SuggestOptions
}

// NewSuggestUseCase creates a new suggestion use case. Sources may be nil.
func NewSuggestUseCase(
	history HistorySource,
	bookmarks BookmarkSource,
	resolver *ResolveInputUseCase,
	opts SuggestOptions,
) *SuggestUseCase {
	if opts.MaxSuggestions <= 0 {
		opts.MaxSuggestions = DefaultMaxSuggestions
	}
	if opts.MaxSearchSuggestions <= 0 {
		opts.MaxSearchSuggestions = DefaultMaxSearchSuggestions
	}
	if resolver == nil {
		resolver = NewResolveInputUseCase(nil)
	}
	return &SuggestUseCase{
		history:   history,
		bookmarks: bookmarks,
		resolver:  resolver,
		opts:      opts,
	}
}

// Compute returns at most MaxSuggestions suggestions for query, in source
// priority order: domain completion, search offers, URL literal, history,
// bookmarks, quick actions, new-tab search. Entries pointing at an already
// listed target are dropped.
func (uc *SuggestUseCase) Compute(ctx context.Context, query string) []autocomplete.Suggestion {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil
	}
	log := logging.FromContext(ctx)
	lower := strings.ToLower(q)

	var (
		historyHits  []autocomplete.Suggestion
		bookmarkHits []autocomplete.Suggestion
		engines      []entity.SearchEngine
		template     string
	)

	// Each goroutine owns one result slot.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		hits, err := uc.historyMatches(gctx, lower)
		if err != nil {
			log.Debug().Err(err).Msg("history source unavailable")
			return nil
		}
		historyHits = hits
		return nil
	})
	g.Go(func() error {
		hits, err := uc.bookmarkMatches(gctx, lower)
		if err != nil {
			log.Debug().Err(err).Msg("bookmark source unavailable")
			return nil
		}
		bookmarkHits = hits
		return nil
	})
	g.Go(func() error {
		engines = uc.resolver.Engines(gctx)
		template = uc.resolver.SearchTemplate(gctx)
		return nil
	})
	_ = g.Wait()

	out := make([]autocomplete.Suggestion, 0, uc.opts.MaxSuggestions*2)

	if target, ok := autocomplete.Complete(q); ok {
		out = append(out, autocomplete.Suggestion{
			Type:      autocomplete.TypeDomainCompletion,
			Title:     autocomplete.StripProtocol(target),
			Subtitle:  "Go to site",
			TargetURL: target,
		})
	}

	out = append(out, uc.searchOffers(q, template, engines)...)

	if url.LooksLikeURL(q) {
		target := url.Normalize(q)
		out = append(out, autocomplete.Suggestion{
			Type:      autocomplete.TypeURLLiteral,
			Title:     target,
			Subtitle:  "Open URL",
			TargetURL: target,
		})
	}

	out = append(out, historyHits...)
	out = append(out, bookmarkHits...)
	out = append(out, capSuggestions(autocomplete.QuickActions(q), uc.opts.MaxSuggestions)...)
	out = append(out, autocomplete.NewTabSearch(q, url.BuildSearchURL(template, q)))

	out = autocomplete.Dedupe(out)
	if len(out) > uc.opts.MaxSuggestions {
		out = out[:uc.opts.MaxSuggestions]
	}

	log.Debug().Str("query", q).Int("count", len(out)).Msg("suggestions computed")
	return out
}

// searchOffers always leads with the current engine template, which may be a
// raw template not present in engines, then fills from engines.
func (uc *SuggestUseCase) searchOffers(q, template string, engines []entity.SearchEngine) []autocomplete.Suggestion {
	offers := make([]autocomplete.Suggestion, 0, uc.opts.MaxSearchSuggestions)
	offers = append(offers, searchOffer(q, engineName(template, engines), template))
	for _, engine := range engines {
		if len(offers) >= uc.opts.MaxSearchSuggestions {
			break
		}
		if engine.Template == "" || engine.Template == template {
			continue
		}
		offers = append(offers, searchOffer(q, engine.Name, engine.Template))
	}
	return offers
}

func searchOffer(q, name, template string) autocomplete.Suggestion {
	return autocomplete.Suggestion{
		Type:      autocomplete.TypeSearchEngine,
		Title:     fmt.Sprintf("Search %s for %q", name, q),
		Subtitle:  name,
		TargetURL: url.BuildSearchURL(template, q),
	}
}

// engineName names template after its configured engine, or its host.
func engineName(template string, engines []entity.SearchEngine) string {
	for _, e := range engines {
		if e.Template == template && e.Name != "" {
			return e.Name
		}
	}
	if host := url.ExtractDomain(strings.Replace(template, "%s", "", 1)); host != "" {
		return host
	}
	return template
}

func (uc *SuggestUseCase) historyMatches(ctx context.Context, lower string) ([]autocomplete.Suggestion, error) {
	if uc.history == nil {
		return nil, nil
	}
	entries, err := uc.history.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot history: %w", err)
	}

	var hits []autocomplete.Suggestion
	for i := range entries {
		if len(hits) >= uc.opts.MaxSuggestions {
			break
		}
		if entries[i].Matches(lower) {
			hits = append(hits, autocomplete.Suggestion{
				Type:      autocomplete.TypeHistory,
				Title:     titleOr(entries[i].Title, entries[i].URL),
				Subtitle:  entries[i].URL,
				TargetURL: entries[i].URL,
			})
		}
	}
	return hits, nil
}

func (uc *SuggestUseCase) bookmarkMatches(ctx context.Context, lower string) ([]autocomplete.Suggestion, error) {
	if uc.bookmarks == nil {
		return nil, nil
	}
	bookmarks, err := uc.bookmarks.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot bookmarks: %w", err)
	}

	var hits []autocomplete.Suggestion
	for i := range bookmarks {
		if len(hits) >= uc.opts.MaxSuggestions {
			break
		}
		if bookmarks[i].Matches(lower) {
			hits = append(hits, autocomplete.Suggestion{
				Type:      autocomplete.TypeBookmark,
				Title:     titleOr(bookmarks[i].Title, bookmarks[i].URL),
				Subtitle:  bookmarks[i].URL,
				TargetURL: bookmarks[i].URL,
			})
		}
	}
	return hits, nil
}

func capSuggestions(items []autocomplete.Suggestion, limit int) []autocomplete.Suggestion {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}

func titleOr(title, fallback string) string {
	if strings.TrimSpace(title) == "" {
		return fallback
	}
	return title
}
