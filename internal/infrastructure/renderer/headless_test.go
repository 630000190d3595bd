package renderer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/omnitab/internal/application/port"
)

type recorded struct {
	events   []port.LoadEvent
	urls     []string
	titles   []string
	finished []string
}

func (r *recorded) callbacks() port.RendererCallbacks {
	return port.RendererCallbacks{
		OnURLChanged:   func(u string) { r.urls = append(r.urls, u) },
		OnTitleChanged: func(t string) { r.titles = append(r.titles, t) },
		OnLoadChanged:  func(e port.LoadEvent) { r.events = append(r.events, e) },
		OnPageFinished: func(u, _ string) { r.finished = append(r.finished, u) },
	}
}

func TestHeadless_LoadURLFiresLifecycle(t *testing.T) {
	h := NewHeadless(nil)
	rec := &recorded{}
	h.SetCallbacks(rec.callbacks())

	require.NoError(t, h.LoadURL(context.Background(), "https://www.github.com/bnema"))

	assert.Equal(t, []port.LoadEvent{port.LoadStarted, port.LoadFinished}, rec.events)
	assert.Equal(t, []string{"https://www.github.com/bnema"}, rec.urls)
	assert.Equal(t, []string{"github.com"}, rec.titles)
	assert.Equal(t, []string{"https://www.github.com/bnema"}, rec.finished)
	assert.Equal(t, "https://www.github.com/bnema", h.CurrentURL())
}

func TestHeadless_BackForward(t *testing.T) {
	ctx := context.Background()
	h := NewHeadless(func(string) string { return "t" })

	ok, err := h.GoBack(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "empty history")

	require.NoError(t, h.LoadURL(ctx, "https://a.test"))
	require.NoError(t, h.LoadURL(ctx, "https://b.test"))
	require.NoError(t, h.LoadURL(ctx, "https://c.test"))

	ok, err = h.GoBack(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, _ = h.GoBack(ctx)
	assert.True(t, ok)
	assert.Equal(t, "https://a.test", h.CurrentURL())

	ok, _ = h.GoBack(ctx)
	assert.False(t, ok)

	ok, _ = h.GoForward(ctx)
	assert.True(t, ok)
	assert.Equal(t, "https://b.test", h.CurrentURL())

	// a new load drops the forward entries
	require.NoError(t, h.LoadURL(ctx, "https://d.test"))
	ok, _ = h.GoForward(ctx)
	assert.False(t, ok)

	assert.Equal(t, []string{
		"https://a.test", "https://b.test", "https://c.test",
		"https://b.test", "https://a.test", "https://b.test", "https://d.test",
	}, h.Visits())
}

func TestHeadless_ClearAndReload(t *testing.T) {
	ctx := context.Background()
	h := NewHeadless(nil)
	rec := &recorded{}
	h.SetCallbacks(rec.callbacks())

	require.NoError(t, h.Reload(ctx))
	assert.Empty(t, rec.finished, "nothing to reload")

	require.NoError(t, h.LoadURL(ctx, "https://a.test"))
	require.NoError(t, h.Reload(ctx))
	assert.Equal(t, []string{"https://a.test", "https://a.test"}, rec.finished)

	require.NoError(t, h.Clear(ctx))
	assert.Equal(t, blankPage, h.CurrentURL())
	assert.Len(t, rec.urls, 2, "clearing is not a navigation")
}

func TestHeadless_Closed(t *testing.T) {
	ctx := context.Background()
	h := NewHeadless(nil)
	require.NoError(t, h.Close())

	assert.ErrorIs(t, h.LoadURL(ctx, "https://a.test"), ErrClosed)
	_, err := h.GoBack(ctx)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestHostTitle(t *testing.T) {
	assert.Equal(t, "example.com", HostTitle("https://www.example.com/x"))
	assert.Equal(t, "about:blank", HostTitle("about:blank"))
}
