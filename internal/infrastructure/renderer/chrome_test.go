package renderer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireChrome(t *testing.T) {
	t.Helper()
	if os.Getenv("OMNITAB_TEST_CHROME") == "" {
		t.Skip("set OMNITAB_TEST_CHROME=1 to run Chrome renderer tests")
	}
}

func TestChrome_NavigateAndTraverse(t *testing.T) {
	requireChrome(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><head><title>page " + r.URL.Path + "</title></head><body></body></html>"))
	}))
	t.Cleanup(server.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c, err := NewChrome(ctx, ChromeOptions{Headless: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	rec := &recorded{}
	c.SetCallbacks(rec.callbacks())

	require.NoError(t, c.LoadURL(ctx, server.URL+"/one"))
	require.NoError(t, c.LoadURL(ctx, server.URL+"/two"))
	assert.Equal(t, "page /two", rec.titles[len(rec.titles)-1])

	ok, err := c.GoBack(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "page /one", rec.titles[len(rec.titles)-1])

	ok, err = c.GoForward(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, server.URL+"/two", rec.finished[len(rec.finished)-1])
}
