package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/omnitab/internal/application/port"
	"github.com/bnema/omnitab/internal/domain/url"
	"github.com/bnema/omnitab/internal/logging"
)

// NavigateUseCase turns omnibox input into navigations on the active tab and
// feeds renderer events back into tab state, history and bookmarks.
type NavigateUseCase struct {
	tabs      *ManageTabsUseCase
	resolver  *ResolveInputUseCase
	history   *ManageHistoryUseCase
	bookmarks *ManageBookmarksUseCase
	ctx       context.Context // base context for renderer callbacks
}

// NewNavigateUseCase creates a navigation use case and registers itself for
// the renderer's callbacks.
func NewNavigateUseCase(
	ctx context.Context,
	tabs *ManageTabsUseCase,
	resolver *ResolveInputUseCase,
	history *ManageHistoryUseCase,
	bookmarks *ManageBookmarksUseCase,
	renderer port.Renderer,
) *NavigateUseCase {
	uc := &NavigateUseCase{
		tabs:      tabs,
		resolver:  resolver,
		history:   history,
		bookmarks: bookmarks,
		ctx:       logging.WithComponent(ctx, "navigate"),
	}
	renderer.SetCallbacks(port.RendererCallbacks{
		OnURLChanged:   uc.onURLChanged,
		OnTitleChanged: uc.onTitleChanged,
		OnPageFinished: uc.onPageFinished,
	})
	return uc
}

// Open resolves input and navigates the active tab to it.
func (uc *NavigateUseCase) Open(ctx context.Context, input string) (url.Target, error) {
	target := uc.resolver.Resolve(ctx, input)
	if err := uc.tabs.NavigateActive(ctx, target.URL); err != nil {
		return target, fmt.Errorf("failed to open %q: %w", input, err)
	}
	return target, nil
}

// OpenInNewTab creates a tab and opens input in it.
func (uc *NavigateUseCase) OpenInNewTab(ctx context.Context, input string, incognito bool) (url.Target, error) {
	target := uc.resolver.Resolve(ctx, input)
	if _, err := uc.tabs.CreateAndNavigate(ctx, incognito, target.URL); err != nil {
		return target, fmt.Errorf("failed to open %q in new tab: %w", input, err)
	}
	return target, nil
}

// GoHome opens the configured homepage in the active tab. A disabled
// homepage leaves the tab blank.
func (uc *NavigateUseCase) GoHome(ctx context.Context) error {
	enabled, home := uc.resolver.Homepage(ctx)
	if !enabled {
		return uc.tabs.ClearActive(ctx)
	}
	return uc.tabs.NavigateActive(ctx, home)
}

// Back navigates back in the renderer.
func (uc *NavigateUseCase) Back(ctx context.Context) (bool, error) {
	return uc.tabs.Back(ctx)
}

// Forward navigates forward in the renderer.
func (uc *NavigateUseCase) Forward(ctx context.Context) (bool, error) {
	return uc.tabs.Forward(ctx)
}

// Reload reloads the active page.
func (uc *NavigateUseCase) Reload(ctx context.Context) error {
	return uc.tabs.Reload(ctx)
}

// isBlank reports whether rawURL is the cleared surface rather than a page.
func isBlank(rawURL string) bool {
	return rawURL == "" || rawURL == "about:blank"
}

func (uc *NavigateUseCase) onURLChanged(rawURL string) {
	if isBlank(rawURL) {
		return
	}
	uc.tabs.URLChanged(uc.ctx, rawURL)
}

func (uc *NavigateUseCase) onTitleChanged(title string) {
	uc.tabs.TitleChanged(uc.ctx, title)
}

func (uc *NavigateUseCase) onPageFinished(rawURL, title string) {
	if isBlank(rawURL) {
		return
	}
	uc.tabs.UpdateActive(uc.ctx, rawURL, title)

	active, _, ok := uc.tabs.Active()
	if !ok || active.Incognito {
		return
	}
	if uc.history != nil {
		uc.history.RecordVisit(uc.ctx, rawURL, active.Title)
	}
	if uc.bookmarks != nil {
		uc.bookmarks.RecordVisit(uc.ctx, rawURL)
	}
}
