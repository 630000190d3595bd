package usecase

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/bnema/omnitab/internal/domain/autocomplete"
	"github.com/bnema/omnitab/internal/logging"
)

const (
	// DefaultDebounceDelay is the quiet period after the last keystroke.
	DefaultDebounceDelay = 300 * time.Millisecond
	// DefaultMinQueryLength is the shortest query that is computed.
	DefaultMinQueryLength = 2
)

// Poster runs fn on the interactive loop.
type Poster func(fn func())

// ResultFunc receives the suggestions for the latest request. A nil slice
// means the suggestion surface should be cleared.
type ResultFunc func(suggestions []autocomplete.Suggestion)

// DispatcherOptions configures debouncing.
type DispatcherOptions struct {
	Delay          time.Duration
	MinQueryLength int
	// Post delivers results. Defaults to calling fn on the worker goroutine.
	Post Poster
}

type suggestJob struct {
	ctx      context.Context
	gen      uint64
	query    string
	onResult ResultFunc
}

// SuggestionDispatcher debounces keystrokes and computes suggestions on a
// single background worker. Only the latest request is ever delivered.
type SuggestionDispatcher struct {
	compute func(ctx context.Context, query string) []autocomplete.Suggestion
	opts    DispatcherOptions

	mu    sync.Mutex
	timer *time.Timer
	gen   uint64

	jobs      chan suggestJob // one slot; a newer job replaces an unconsumed one
	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewSuggestionDispatcher starts the worker. Call Close to stop it.
func NewSuggestionDispatcher(suggest *SuggestUseCase, opts DispatcherOptions) *SuggestionDispatcher {
	if opts.Delay <= 0 {
		opts.Delay = DefaultDebounceDelay
	}
	if opts.MinQueryLength <= 0 {
		opts.MinQueryLength = DefaultMinQueryLength
	}
	if opts.Post == nil {
		opts.Post = func(fn func()) { fn() }
	}

	d := &SuggestionDispatcher{
		compute: suggest.Compute,
		opts:    opts,
		jobs:    make(chan suggestJob, 1),
		done:    make(chan struct{}),
	}
	d.wg.Add(1)
	go d.worker()
	return d
}

// Request schedules a computation for query after the debounce delay,
// cancelling any pending one. Queries below the minimum length clear the
// surface instead.
func (d *SuggestionDispatcher) Request(ctx context.Context, query string, onResult ResultFunc) {
	q := strings.TrimSpace(query)

	d.mu.Lock()
	d.gen++
	gen := d.gen
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	if utf8.RuneCountInString(q) < d.opts.MinQueryLength {
		d.mu.Unlock()
		d.opts.Post(func() {
			if d.isCurrent(gen) {
				onResult(nil)
			}
		})
		return
	}

	job := suggestJob{ctx: ctx, gen: gen, query: q, onResult: onResult}
	d.timer = time.AfterFunc(d.opts.Delay, func() { d.enqueue(job) })
	d.mu.Unlock()

	logging.FromContext(ctx).Trace().Str("query", q).Uint64("gen", gen).Msg("suggestion request scheduled")
}

// Cancel drops the pending request and any result not yet delivered.
func (d *SuggestionDispatcher) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Close cancels pending work and stops the worker.
func (d *SuggestionDispatcher) Close() {
	d.closeOnce.Do(func() {
		d.Cancel()
		close(d.done)
		d.wg.Wait()
	})
}

func (d *SuggestionDispatcher) isCurrent(gen uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gen == gen
}

// enqueue runs on the timer goroutine.
func (d *SuggestionDispatcher) enqueue(job suggestJob) {
	if !d.isCurrent(job.gen) {
		return
	}
	for {
		select {
		case <-d.done:
			return
		case d.jobs <- job:
			return
		default:
		}
		// Slot taken by an older job: drop it and retry.
		select {
		case <-d.jobs:
		default:
		}
	}
}

func (d *SuggestionDispatcher) worker() {
	defer d.wg.Done()
	for {
		select {
		case <-d.done:
			return
		case job := <-d.jobs:
			if !d.isCurrent(job.gen) {
				continue
			}
			results := d.compute(job.ctx, job.query)
			if !d.isCurrent(job.gen) {
				continue
			}
			d.opts.Post(func() {
				if d.isCurrent(job.gen) {
					job.onResult(results)
				}
			})
		}
	}
}
