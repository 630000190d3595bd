// Package renderer provides port.Renderer adapters: an in-process headless
// surface and a Chrome DevTools surface driven by chromedp.
package renderer

import "errors"

// ErrClosed is returned by every operation after Close.
var ErrClosed = errors.New("renderer is closed")
