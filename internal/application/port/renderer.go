// Package port defines application-layer interfaces for external capabilities.
// Ports abstract infrastructure concerns, allowing the application layer to
// remain independent of specific implementations (chromedp, headless, etc.).
package port

import "context"

//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks

// LoadEvent represents page load state transitions.
type LoadEvent int

const (
	// LoadStarted indicates navigation has begun.
	LoadStarted LoadEvent = iota
	// LoadFinished indicates the page has fully loaded.
	LoadFinished
	// LoadFailed indicates the navigation did not complete.
	LoadFailed
)

// String returns a human-readable representation of the load event.
func (e LoadEvent) String() string {
	switch e {
	case LoadStarted:
		return "started"
	case LoadFinished:
		return "finished"
	case LoadFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// RendererCallbacks are invoked by the renderer as a page loads. Any field
// may be nil. Callbacks can arrive on any goroutine.
type RendererCallbacks struct {
	OnURLChanged   func(url string)
	OnTitleChanged func(title string)
	OnProgress     func(progress float64) // 0.0 to 1.0
	OnLoadChanged  func(event LoadEvent)
	OnPageFinished func(url, title string)
}

// Renderer is the single shared surface that displays the active tab.
type Renderer interface {
	// LoadURL starts navigating to url.
	LoadURL(ctx context.Context, url string) error

	// Clear resets the surface to a blank page.
	Clear(ctx context.Context) error

	// GoBack navigates back in history if possible.
	GoBack(ctx context.Context) (bool, error)

	// GoForward navigates forward in history if possible.
	GoForward(ctx context.Context) (bool, error)

	// Reload reloads the current page.
	Reload(ctx context.Context) error

	// SetCallbacks replaces the registered callbacks.
	SetCallbacks(callbacks RendererCallbacks)

	// Close releases the renderer.
	Close() error
}
