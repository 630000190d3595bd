package renderer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/bnema/omnitab/internal/application/port"
	"github.com/bnema/omnitab/internal/logging"
)

// DefaultNavigationTimeout bounds a single Chrome navigation.
const DefaultNavigationTimeout = 15 * time.Second

// ChromeOptions configures a Chrome renderer.
type ChromeOptions struct {
	// ExecPath overrides the Chrome binary lookup.
	ExecPath          string
	Headless          bool
	NavigationTimeout time.Duration
}

// Chrome drives a single Chrome tab over the DevTools protocol. Navigation
// calls block until the page's load event or the navigation timeout.
type Chrome struct {
	opts ChromeOptions

	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc

	mu        sync.Mutex
	navMu     sync.Mutex
	callbacks port.RendererCallbacks
	closed    atomic.Bool
}

var _ port.Renderer = (*Chrome)(nil)

// NewChrome launches Chrome and opens its first tab.
func NewChrome(ctx context.Context, opts ChromeOptions) (*Chrome, error) {
	if opts.NavigationTimeout <= 0 {
		opts.NavigationTimeout = DefaultNavigationTimeout
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", opts.Headless),
		chromedp.Flag("disable-gpu", true),
	)
	if opts.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(opts.ExecPath))
	}

	// The browser outlives ctx; it is torn down by Close.
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.WithoutCancel(ctx), allocOpts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("failed to start chrome: %w", err)
	}

	logging.FromContext(ctx).Debug().Bool("headless", opts.Headless).Msg("chrome renderer started")
	return &Chrome{
		opts:          opts,
		allocCancel:   allocCancel,
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
	}, nil
}

func (c *Chrome) LoadURL(ctx context.Context, pageURL string) error {
	return c.navigate(ctx, chromedp.Navigate(pageURL))
}

func (c *Chrome) Clear(ctx context.Context) error {
	return c.navigate(ctx, chromedp.Navigate(blankPage))
}

func (c *Chrome) GoBack(ctx context.Context) (bool, error) {
	return c.traverse(ctx, -1)
}

func (c *Chrome) GoForward(ctx context.Context) (bool, error) {
	return c.traverse(ctx, 1)
}

func (c *Chrome) Reload(ctx context.Context) error {
	return c.navigate(ctx, chromedp.Reload())
}

func (c *Chrome) SetCallbacks(callbacks port.RendererCallbacks) {
	c.mu.Lock()
	c.callbacks = callbacks
	c.mu.Unlock()
}

func (c *Chrome) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	err := chromedp.Cancel(c.browserCtx)
	c.browserCancel()
	c.allocCancel()
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("failed to close chrome: %w", err)
	}
	return nil
}

// traverse moves delta entries through the tab's session history.
func (c *Chrome) traverse(ctx context.Context, delta int) (bool, error) {
	if c.closed.Load() {
		return false, ErrClosed
	}

	var entryID int64
	moved := false
	readCtx, cancel := context.WithTimeout(c.browserCtx, c.opts.NavigationTimeout)
	defer cancel()
	err := chromedp.Run(readCtx, chromedp.ActionFunc(func(ctx context.Context) error {
		current, entries, err := page.GetNavigationHistory().Do(ctx)
		if err != nil {
			return err
		}
		next := int(current) + delta
		if next < 0 || next >= len(entries) {
			return nil
		}
		entryID, moved = entries[next].ID, true
		return nil
	}))
	if err != nil {
		return false, fmt.Errorf("failed to read navigation history: %w", err)
	}
	if !moved {
		return false, nil
	}

	action := chromedp.Tasks{
		chromedp.ActionFunc(func(ctx context.Context) error {
			return page.NavigateToHistoryEntry(entryID).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
	}
	if err := c.navigate(ctx, action); err != nil {
		return false, err
	}
	return true, nil
}

// navigate runs action and reports the resulting page through callbacks.
func (c *Chrome) navigate(ctx context.Context, action chromedp.Action) error {
	if c.closed.Load() {
		return ErrClosed
	}
	c.navMu.Lock()
	defer c.navMu.Unlock()

	log := logging.FromContext(ctx)
	cb := c.currentCallbacks()
	if cb.OnLoadChanged != nil {
		cb.OnLoadChanged(port.LoadStarted)
	}

	runCtx, cancel := context.WithTimeout(c.browserCtx, c.opts.NavigationTimeout)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	var location, title string
	err := chromedp.Run(runCtx,
		action,
		chromedp.Location(&location),
		chromedp.Title(&title),
	)
	if err != nil {
		log.Warn().Err(err).Msg("chrome navigation failed")
		if cb.OnLoadChanged != nil {
			cb.OnLoadChanged(port.LoadFailed)
		}
		return fmt.Errorf("failed to navigate: %w", err)
	}

	log.Debug().Str("url", logging.TruncateURL(location, 80)).Str("title", title).Msg("chrome navigation finished")
	if cb.OnURLChanged != nil {
		cb.OnURLChanged(location)
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
		cb.OnPageFinished(location, title)
	}
	return nil
}

func (c *Chrome) currentCallbacks() port.RendererCallbacks {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.callbacks
}
