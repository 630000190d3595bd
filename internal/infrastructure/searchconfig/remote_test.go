package searchconfig

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/omnitab/internal/application/port/mocks"
	"github.com/bnema/omnitab/internal/domain/entity"
	"github.com/bnema/omnitab/internal/domain/repository"
	"github.com/bnema/omnitab/internal/infrastructure/persistence/memory"
)

const remoteDoc = `{
	"default_engine": "Bing",
	"engines": [
		{"name": "Google", "template": "https://www.google.com/search?q=%s"},
		{"name": "Bing", "template": "https://www.bing.com/search?q=%s"},
		{"name": "", "template": "https://nameless.test/?q=%s"}
	],
	"homepage": {"enabled": false, "url": "https://start.example.com"}
}`

func newTestRemote(opts RemoteOptions) *RemoteProvider {
	p := NewRemoteProvider(opts)
	p.sleep = func(context.Context, time.Duration) error { return nil }
	p.randInt63 = nil
	return p
}

func TestRemoteProvider_Fetch(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(remoteDoc))
	}))
	defer srv.Close()

	cache := memory.NewKeyValueStore()
	p := newTestRemote(RemoteOptions{URL: srv.URL, Cache: cache})
	ctx := context.Background()

	template, err := p.DefaultEngineTemplate(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://www.bing.com/search?q=%s", template)

	engines, err := p.Engines(ctx)
	require.NoError(t, err)
	require.Len(t, engines, 2)
	assert.Equal(t, "Bing", engines[0].Name)

	enabled, err := p.IsHomepageEnabled(ctx)
	require.NoError(t, err)
	assert.False(t, enabled)

	home, err := p.DefaultHomepageURL(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://start.example.com", home)

	assert.Equal(t, int32(1), hits.Load(), "fresh document is reused")

	cached, ok, err := cache.Get(ctx, repository.KeySearchEngineDoc)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, remoteDoc, cached)
}

func TestRemoteProvider_RefreshAfterInterval(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(remoteDoc))
	}))
	defer srv.Close()

	now := time.Unix(1_700_000_000, 0)
	p := newTestRemote(RemoteOptions{URL: srv.URL, Refresh: time.Minute})
	p.now = func() time.Time { return now }
	ctx := context.Background()

	_, err := p.Engines(ctx)
	require.NoError(t, err)
	now = now.Add(2 * time.Minute)
	_, err = p.Engines(ctx)
	require.NoError(t, err)

	assert.Equal(t, int32(2), hits.Load())
}

func TestRemoteProvider_RetriesTransientStatus(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(remoteDoc))
	}))
	defer srv.Close()

	p := newTestRemote(RemoteOptions{URL: srv.URL})
	template, err := p.DefaultEngineTemplate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://www.bing.com/search?q=%s", template)
	assert.Equal(t, int32(2), hits.Load())
}

func TestRemoteProvider_ServesCacheWhenOffline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	ctx := context.Background()
	cache := memory.NewKeyValueStore()
	require.NoError(t, cache.Put(ctx, repository.KeySearchEngineDoc, remoteDoc))

	p := newTestRemote(RemoteOptions{URL: srv.URL, Cache: cache})
	template, err := p.DefaultEngineTemplate(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://www.bing.com/search?q=%s", template)
}

func TestRemoteProvider_Fallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	fallback := mocks.NewMockSearchConfigProvider(t)
	fallback.EXPECT().DefaultEngineTemplate(mock.Anything).Return("https://fallback.test/?q=%s", nil)
	fallback.EXPECT().IsHomepageEnabled(mock.Anything).Return(true, nil)

	p := newTestRemote(RemoteOptions{URL: srv.URL, Fallback: fallback})
	ctx := context.Background()

	template, err := p.DefaultEngineTemplate(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://fallback.test/?q=%s", template)

	enabled, err := p.IsHomepageEnabled(ctx)
	require.NoError(t, err)
	assert.True(t, enabled)
}

func TestRemoteProvider_UnavailableWithoutFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	p := newTestRemote(RemoteOptions{URL: srv.URL})
	_, err := p.Engines(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrConfigUnavailable))
}

func TestRemoteProvider_FailedFetchBacksOff(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	fallback := mocks.NewMockSearchConfigProvider(t)
	fallback.EXPECT().DefaultEngineTemplate(mock.Anything).Return("https://fallback.test/?q=%s", nil)
	fallback.EXPECT().Engines(mock.Anything).Return(entity.DefaultSearchEngines(), nil)

	now := time.Unix(1_700_000_000, 0)
	p := newTestRemote(RemoteOptions{URL: srv.URL, RetryAfter: time.Minute, Fallback: fallback})
	p.now = func() time.Time { return now }
	ctx := context.Background()

	for range 5 {
		template, err := p.DefaultEngineTemplate(ctx)
		require.NoError(t, err)
		assert.Equal(t, "https://fallback.test/?q=%s", template)
		_, err = p.Engines(ctx)
		require.NoError(t, err)
	}
	assert.Equal(t, int32(maxRetryAttempts), hits.Load(), "one retry cycle, then fallback only")

	now = now.Add(2 * time.Minute)
	_, err := p.Engines(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(2*maxRetryAttempts), hits.Load(), "refetches once the backoff elapses")
}

func TestRetryDelayForAttempt(t *testing.T) {
	assert.Equal(t, retryBaseDelay, retryDelayForAttempt(1, nil))
	assert.Equal(t, 2*retryBaseDelay, retryDelayForAttempt(2, nil))
	assert.Equal(t, retryMaxDelay, retryDelayForAttempt(10, nil))
	assert.Equal(t, retryMaxDelay, retryDelayForAttempt(4, func(int64) int64 { return int64(retryJitterMax) }))
}
