package searchconfig

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bnema/omnitab/internal/application/port"
	"github.com/bnema/omnitab/internal/domain/entity"
	"github.com/bnema/omnitab/internal/domain/repository"
	"github.com/bnema/omnitab/internal/logging"
)

const (
	// DefaultRemoteTimeout bounds a single fetch of the remote document.
	DefaultRemoteTimeout = 3 * time.Second
	// DefaultRefreshInterval is how long a fetched document stays fresh.
	DefaultRefreshInterval = 10 * time.Minute
	// DefaultRetryAfter is how long a failed fetch with nothing to serve
	// suppresses further fetches.
	DefaultRetryAfter = time.Minute

	maxDocumentSize = 1 << 20
)

// Document is the remote search configuration format.
type Document struct {
	DefaultEngine string                `json:"default_engine"`
	Engines       []entity.SearchEngine `json:"engines"`
	Homepage      *HomepageDocument     `json:"homepage,omitempty"`
}

// HomepageDocument is the optional homepage block of a Document.
type HomepageDocument struct {
	Enabled *bool  `json:"enabled,omitempty"`
	URL     string `json:"url,omitempty"`
}

// RemoteOptions configures a RemoteProvider.
type RemoteOptions struct {
	URL     string
	Timeout time.Duration
	Refresh time.Duration
	// RetryAfter delays the next fetch after a failure left no document.
	RetryAfter time.Duration
	// Cache keeps the last good document across restarts. Optional.
	Cache repository.KeyValueStore
	// Fallback answers whenever no document is available. Optional.
	Fallback port.SearchConfigProvider
}

// RemoteProvider fetches search settings over HTTP, keeping the last good
// document in memory and in Cache.
type RemoteProvider struct {
	opts      RemoteOptions
	client    *http.Client
	now       func() time.Time
	sleep     func(ctx context.Context, d time.Duration) error
	randInt63 func(n int64) int64

	mu        sync.Mutex
	doc       *Document
	fetchedAt time.Time
	failedAt  time.Time
	failErr   error
}

var _ port.SearchConfigProvider = (*RemoteProvider)(nil)

// NewRemoteProvider creates a provider for opts.URL.
func NewRemoteProvider(opts RemoteOptions) *RemoteProvider {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultRemoteTimeout
	}
	if opts.Refresh <= 0 {
		opts.Refresh = DefaultRefreshInterval
	}
	if opts.RetryAfter <= 0 {
		opts.RetryAfter = DefaultRetryAfter
	}
	return &RemoteProvider{
		opts:      opts,
		client:    &http.Client{Timeout: opts.Timeout},
		now:       time.Now,
		sleep:     waitForBackoff,
		randInt63: rand.Int63n,
	}
}

func (p *RemoteProvider) DefaultEngineTemplate(ctx context.Context) (string, error) {
	doc, err := p.document(ctx)
	if err == nil {
		var template string
		if template, err = selectTemplate(doc.DefaultEngine, doc.Engines); err == nil {
			return template, nil
		}
	}
	if p.opts.Fallback != nil {
		return p.opts.Fallback.DefaultEngineTemplate(ctx)
	}
	return "", err
}

func (p *RemoteProvider) Engines(ctx context.Context) ([]entity.SearchEngine, error) {
	doc, err := p.document(ctx)
	if err == nil && len(doc.Engines) > 0 {
		return orderEngines(doc.DefaultEngine, doc.Engines), nil
	}
	if p.opts.Fallback != nil {
		return p.opts.Fallback.Engines(ctx)
	}
	return nil, p.unavailable(err, "engines")
}

func (p *RemoteProvider) IsHomepageEnabled(ctx context.Context) (bool, error) {
	doc, err := p.document(ctx)
	if err == nil && doc.Homepage != nil && doc.Homepage.Enabled != nil {
		return *doc.Homepage.Enabled, nil
	}
	if p.opts.Fallback != nil {
		return p.opts.Fallback.IsHomepageEnabled(ctx)
	}
	return false, p.unavailable(err, "homepage toggle")
}

func (p *RemoteProvider) DefaultHomepageURL(ctx context.Context) (string, error) {
	doc, err := p.document(ctx)
	if err == nil && doc.Homepage != nil && doc.Homepage.URL != "" {
		return doc.Homepage.URL, nil
	}
	if p.opts.Fallback != nil {
		return p.opts.Fallback.DefaultHomepageURL(ctx)
	}
	return "", p.unavailable(err, "homepage url")
}

func (p *RemoteProvider) unavailable(err error, what string) error {
	if err != nil {
		return err
	}
	return fmt.Errorf("remote document has no %s: %w", what, entity.ErrConfigUnavailable)
}

// document returns a fresh document, refetching when stale. A failed fetch
// serves the previous document, then the cached copy. When neither exists
// the failure is remembered for RetryAfter so callers fall back without
// waiting on the network again.
func (p *RemoteProvider) document(ctx context.Context) (*Document, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.doc != nil && p.now().Sub(p.fetchedAt) < p.opts.Refresh {
		return p.doc, nil
	}
	if p.doc == nil && !p.failedAt.IsZero() && p.now().Sub(p.failedAt) < p.opts.RetryAfter {
		return nil, p.failErr
	}

	log := logging.FromContext(ctx)
	raw, err := p.fetch(ctx)
	if err == nil {
		doc, decodeErr := decodeDocument(raw)
		if decodeErr == nil {
			p.doc, p.fetchedAt = doc, p.now()
			p.failedAt, p.failErr = time.Time{}, nil
			p.storeCache(ctx, raw)
			log.Debug().Int("engines", len(doc.Engines)).Msg("remote search config fetched")
			return doc, nil
		}
		err = decodeErr
	}
	log.Warn().Err(err).Str("url", p.opts.URL).Msg("remote search config unavailable")

	if p.doc != nil {
		// keep the stale document until the next refresh interval
		p.fetchedAt = p.now()
		return p.doc, nil
	}
	if doc, ok := p.loadCache(ctx); ok {
		p.doc, p.fetchedAt = doc, p.now()
		return doc, nil
	}
	p.failedAt = p.now()
	p.failErr = fmt.Errorf("failed to load remote search config: %w: %w", entity.ErrConfigUnavailable, err)
	return nil, p.failErr
}

func (p *RemoteProvider) fetch(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, p.opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.opts.URL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "omnitab")

	resp, err := doWithRetry(ctx, p.client, req, p.sleep, p.randInt63)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", p.opts.URL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("remote search config returned status %d", resp.StatusCode)
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return raw, nil
}

func decodeDocument(raw []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode search config: %w", err)
	}
	engines := doc.Engines[:0]
	for _, e := range doc.Engines {
		if strings.TrimSpace(e.Name) != "" && strings.Contains(e.Template, "://") {
			engines = append(engines, e)
		}
	}
	doc.Engines = engines
	return &doc, nil
}

func (p *RemoteProvider) storeCache(ctx context.Context, raw []byte) {
	if p.opts.Cache == nil {
		return
	}
	if err := p.opts.Cache.Put(ctx, repository.KeySearchEngineDoc, string(raw)); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to cache search config")
	}
}

func (p *RemoteProvider) loadCache(ctx context.Context) (*Document, bool) {
	if p.opts.Cache == nil {
		return nil, false
	}
	raw, ok, err := p.opts.Cache.Get(ctx, repository.KeySearchEngineDoc)
	if err != nil || !ok {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.FromContext(ctx).Warn().Err(err).Msg("failed to read cached search config")
		}
		return nil, false
	}
	doc, err := decodeDocument([]byte(raw))
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("discarding corrupt cached search config")
		return nil, false
	}
	logging.FromContext(ctx).Debug().Msg("serving cached search config")
	return doc, true
}
