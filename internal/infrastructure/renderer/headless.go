package renderer

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/bnema/omnitab/internal/application/port"
	"github.com/bnema/omnitab/internal/domain/url"
	"github.com/bnema/omnitab/internal/logging"
)

const blankPage = "about:blank"

// TitleFunc derives a page title from its URL.
type TitleFunc func(pageURL string) string

// HostTitle titles a page after its host, or the URL itself when it has none.
func HostTitle(pageURL string) string {
	if host := url.ExtractDomain(pageURL); host != "" {
		return host
	}
	return pageURL
}

// Headless is an in-process renderer. Navigations complete immediately and
// callbacks fire on the caller's goroutine before LoadURL returns.
type Headless struct {
	title TitleFunc

	mu        sync.Mutex
	callbacks port.RendererCallbacks
	entries   []string
	current   int
	visits    []string
	closed    atomic.Bool
}

var _ port.Renderer = (*Headless)(nil)

// NewHeadless creates a headless renderer. A nil title uses HostTitle.
func NewHeadless(title TitleFunc) *Headless {
	if title == nil {
		title = HostTitle
	}
	return &Headless{title: title, current: -1}
}

func (h *Headless) LoadURL(ctx context.Context, pageURL string) error {
	if h.closed.Load() {
		return ErrClosed
	}
	if strings.TrimSpace(pageURL) == "" {
		return fmt.Errorf("empty url")
	}

	h.mu.Lock()
	h.entries = append(h.entries[:h.current+1], pageURL)
	h.current = len(h.entries) - 1
	h.mu.Unlock()

	h.commit(ctx, pageURL)
	return nil
}

func (h *Headless) Clear(ctx context.Context) error {
	if h.closed.Load() {
		return ErrClosed
	}
	h.mu.Lock()
	h.entries = nil
	h.current = -1
	h.mu.Unlock()

	logging.FromContext(ctx).Trace().Msg("headless surface cleared")
	return nil
}

func (h *Headless) GoBack(ctx context.Context) (bool, error) {
	return h.step(ctx, -1)
}

func (h *Headless) GoForward(ctx context.Context) (bool, error) {
	return h.step(ctx, 1)
}

func (h *Headless) step(ctx context.Context, delta int) (bool, error) {
	if h.closed.Load() {
		return false, ErrClosed
	}
	h.mu.Lock()
	next := h.current + delta
	if next < 0 || next >= len(h.entries) {
		h.mu.Unlock()
		return false, nil
	}
	h.current = next
	pageURL := h.entries[next]
	h.mu.Unlock()

	h.commit(ctx, pageURL)
	return true, nil
}

func (h *Headless) Reload(ctx context.Context) error {
	if h.closed.Load() {
		return ErrClosed
	}
	h.mu.Lock()
	if h.current < 0 {
		h.mu.Unlock()
		return nil
	}
	pageURL := h.entries[h.current]
	h.mu.Unlock()

	h.commit(ctx, pageURL)
	return nil
}

func (h *Headless) SetCallbacks(callbacks port.RendererCallbacks) {
	h.mu.Lock()
	h.callbacks = callbacks
	h.mu.Unlock()
}

func (h *Headless) Close() error {
	h.closed.Store(true)
	return nil
}

// CurrentURL returns the displayed URL, or about:blank.
func (h *Headless) CurrentURL() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.current < 0 {
		return blankPage
	}
	return h.entries[h.current]
}

// Visits returns every URL committed so far, oldest first.
func (h *Headless) Visits() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.visits...)
}

// commit runs the load lifecycle for pageURL without holding h.mu.
func (h *Headless) commit(ctx context.Context, pageURL string) {
	title := h.title(pageURL)

	h.mu.Lock()
	h.visits = append(h.visits, pageURL)
	cb := h.callbacks
	h.mu.Unlock()

	logging.FromContext(ctx).Trace().
		Str("url", logging.TruncateURL(pageURL, 80)).
		Msg("headless navigation")

	if cb.OnLoadChanged != nil {
		cb.OnLoadChanged(port.LoadStarted)
	}
	if cb.OnURLChanged != nil {
		cb.OnURLChanged(pageURL)
	}
	if cb.OnProgress != nil {
		cb.OnProgress(1.0)
	}
	if cb.OnTitleChanged != nil {
		cb.OnTitleChanged(title)
	}
	if cb.OnLoadChanged != nil {
		cb.OnLoadChanged(port.LoadFinished)
	}
	if cb.OnPageFinished != nil {
		cb.OnPageFinished(pageURL, title)
	}
}
