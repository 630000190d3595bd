package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/omnitab/internal/application/port"
	"github.com/bnema/omnitab/internal/domain/entity"
	"github.com/bnema/omnitab/internal/domain/url"
	"github.com/bnema/omnitab/internal/logging"
)

// DefaultHomepageURL is used when the provider has no usable homepage.
const DefaultHomepageURL = "https://www.google.com"

// ResolveInputUseCase classifies omnibox input and reads search settings,
// falling back to built-in defaults whenever the provider fails.
type ResolveInputUseCase struct {
	provider port.SearchConfigProvider
}

// NewResolveInputUseCase creates a new input resolver. provider may be nil.
func NewResolveInputUseCase(provider port.SearchConfigProvider) *ResolveInputUseCase {
	return &ResolveInputUseCase{provider: provider}
}

// Resolve classifies raw input into a navigable target. It never fails.
func (uc *ResolveInputUseCase) Resolve(ctx context.Context, raw string) url.Target {
	target := url.Classify(raw, uc.SearchTemplate(ctx))
	logging.FromContext(ctx).Debug().
		Str("input", raw).
		Str("kind", target.Kind.String()).
		Str("url", logging.TruncateURL(target.URL, logURLMaxLen)).
		Msg("input resolved")
	return target
}

// SearchTemplate returns the configured engine template or the default one.
func (uc *ResolveInputUseCase) SearchTemplate(ctx context.Context) string {
	if uc.provider == nil {
		return url.DefaultSearchTemplate
	}
	template, err := uc.provider.DefaultEngineTemplate(ctx)
	if err != nil || strings.TrimSpace(template) == "" {
		uc.logFallback(ctx, "search template", err)
		return url.DefaultSearchTemplate
	}
	return template
}

// Engines returns the configured engines, current engine first.
func (uc *ResolveInputUseCase) Engines(ctx context.Context) []entity.SearchEngine {
	if uc.provider == nil {
		return entity.DefaultSearchEngines()
	}
	engines, err := uc.provider.Engines(ctx)
	if err != nil || len(engines) == 0 {
		uc.logFallback(ctx, "search engines", err)
		return entity.DefaultSearchEngines()
	}
	return engines
}

// Homepage returns whether the homepage is enabled and its URL.
func (uc *ResolveInputUseCase) Homepage(ctx context.Context) (bool, string) {
	if uc.provider == nil {
		return true, DefaultHomepageURL
	}

	enabled, err := uc.provider.IsHomepageEnabled(ctx)
	if err != nil {
		uc.logFallback(ctx, "homepage toggle", err)
		enabled = true
	}
	home, err := uc.provider.DefaultHomepageURL(ctx)
	if err != nil || strings.TrimSpace(home) == "" {
		uc.logFallback(ctx, "homepage url", err)
		home = DefaultHomepageURL
	}
	return enabled, home
}

func (uc *ResolveInputUseCase) logFallback(ctx context.Context, what string, err error) {
	if err == nil {
		err = fmt.Errorf("empty %s: %w", what, entity.ErrConfigUnavailable)
	}
	logging.FromContext(ctx).Debug().Err(err).Str("setting", what).Msg("using built-in default")
}
