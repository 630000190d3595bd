// Package cli wires omnitab's session core for the command line and the TUI.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/omnitab/internal/application/port"
	"github.com/bnema/omnitab/internal/application/usecase"
	"github.com/bnema/omnitab/internal/cli/styles"
	"github.com/bnema/omnitab/internal/domain/build"
	"github.com/bnema/omnitab/internal/domain/repository"
	"github.com/bnema/omnitab/internal/infrastructure/config"
	"github.com/bnema/omnitab/internal/infrastructure/id"
	"github.com/bnema/omnitab/internal/infrastructure/persistence/badger"
	"github.com/bnema/omnitab/internal/infrastructure/persistence/memory"
	"github.com/bnema/omnitab/internal/infrastructure/persistence/redis"
	"github.com/bnema/omnitab/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/omnitab/internal/infrastructure/renderer"
	"github.com/bnema/omnitab/internal/infrastructure/searchconfig"
	"github.com/bnema/omnitab/internal/logging"
)

// Options controls how the App is assembled.
type Options struct {
	// LogToFile sends logs to the log file instead of stderr. The TUI sets it.
	LogToFile bool
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Theme     *styles.Theme
	BuildInfo build.Info

	configMgr *config.Manager
	store     repository.KeyValueStore
	renderer  port.Renderer
	search    port.SearchConfigProvider

	// Use cases
	Tabs      *usecase.ManageTabsUseCase
	History   *usecase.ManageHistoryUseCase
	Bookmarks *usecase.ManageBookmarksUseCase
	Resolver  *usecase.ResolveInputUseCase
	Suggest   *usecase.SuggestUseCase
	Navigate  *usecase.NavigateUseCase
	SchemaUC  *usecase.GetConfigSchemaUseCase

	// Context with logger
	ctx       context.Context
	logCloser io.Closer
}

// staticConfig serves a fixed config when the manager could not load one.
type staticConfig struct{ cfg *config.Config }

func (s staticConfig) Get() *config.Config { return s.cfg }

// NewApp loads configuration, opens the store and the renderer, and restores
// the saved session.
func NewApp(opts Options) (*App, error) {
	mgr, cfg, loadErr := loadConfig()

	logger, logCloser := newLogger(cfg, opts.LogToFile)
	ctx := logging.WithContext(context.Background(), logger)
	if loadErr != nil {
		logger.Warn().Err(loadErr).Msg("using default configuration")
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		closeQuietly(logCloser)
		return nil, err
	}

	var source searchconfig.ConfigSource = staticConfig{cfg: cfg}
	if mgr != nil {
		source = mgr
	}
	search := newSearchProvider(cfg, source, store)

	r, err := newRenderer(ctx, cfg)
	if err != nil {
		_ = store.Close()
		closeQuietly(logCloser)
		return nil, err
	}

	a := &App{
		Config:    cfg,
		Theme:     styles.NewTheme(),
		configMgr: mgr,
		store:     store,
		renderer:  r,
		search:    search,
		ctx:       ctx,
		logCloser: logCloser,
	}
	a.wireUseCases()
	a.restoreSession(ctx)
	a.Navigate = usecase.NewNavigateUseCase(ctx, a.Tabs, a.Resolver, a.History, a.Bookmarks, r)

	logger.Debug().
		Str("store", string(cfg.Database.Backend)).
		Str("renderer", string(cfg.Renderer.Kind)).
		Int("tabs", a.Tabs.Count()).
		Msg("app ready")
	return a, nil
}

func (a *App) wireUseCases() {
	cfg := a.Config
	a.Tabs = usecase.NewManageTabsUseCase(a.renderer, a.store, id.TabIDs(), cfg.Tabs.MaxTabs)
	a.History = usecase.NewManageHistoryUseCase(a.store, cfg.History.MaxEntries)
	a.Bookmarks = usecase.NewManageBookmarksUseCase(a.store)
	a.Resolver = usecase.NewResolveInputUseCase(a.search)
	a.Suggest = usecase.NewSuggestUseCase(a.History, a.Bookmarks, a.Resolver, usecase.SuggestOptions{
		MaxSuggestions:       cfg.Omnibox.MaxSuggestions,
		MaxSearchSuggestions: cfg.Omnibox.MaxSearchSuggestions,
	})
	a.SchemaUC = usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider())
}

// restoreSession loads the stores and the saved tabs. It runs before the
// navigation use case subscribes to the renderer so reopening the session
// does not count as a visit.
func (a *App) restoreSession(ctx context.Context) {
	log := logging.FromContext(ctx)
	if err := a.History.Load(ctx); err != nil {
		log.Warn().Err(err).Msg("history unavailable")
	}
	if err := a.Bookmarks.Load(ctx); err != nil {
		log.Warn().Err(err).Msg("bookmarks unavailable")
	}
	// Without restore the session keeps its single blank tab.
	if a.Config.Tabs.RestoreOnStart {
		a.Tabs.Restore(ctx)
	}
}

// NewOmnibox starts a suggestion dispatcher delivering through post. The
// returned func stops the dispatcher.
func (a *App) NewOmnibox(post usecase.Poster) (*usecase.OmniboxUseCase, func()) {
	d := usecase.NewSuggestionDispatcher(a.Suggest, usecase.DispatcherOptions{
		Delay:          time.Duration(a.Config.Omnibox.DebounceMs) * time.Millisecond,
		MinQueryLength: a.Config.Omnibox.MinQueryLength,
		Post:           post,
	})
	return usecase.NewOmniboxUseCase(d, a.Navigate, a.Tabs), d.Close
}

// WatchConfig reloads the configuration file on change. Search settings are
// read through the manager and pick up changes immediately.
func (a *App) WatchConfig() {
	if a.configMgr == nil {
		return
	}
	log := logging.FromContext(a.ctx)
	a.configMgr.OnConfigChange(func(cfg *config.Config) {
		log.Info().Str("engine", cfg.Search.DefaultEngine).Msg("configuration reloaded")
	})
	if err := a.configMgr.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watch unavailable")
	}
}

// ConfigFile returns the path of the loaded config file, if any.
func (a *App) ConfigFile() string {
	if a.configMgr == nil {
		return ""
	}
	return a.configMgr.GetConfigFile()
}

// Close saves the session and releases all resources.
func (a *App) Close() error {
	var errs []error
	if a.Tabs != nil {
		if err := a.Tabs.Save(a.ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if a.renderer != nil {
		if err := a.renderer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close renderer: %w", err))
		}
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close store: %w", err))
		}
	}
	closeQuietly(a.logCloser)
	return errors.Join(errs...)
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from standard locations, falling back to
// defaults when that fails.
func loadConfig() (*config.Manager, *config.Config, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, config.DefaultConfig(), err
	}
	if err := mgr.Load(); err != nil {
		return nil, config.DefaultConfig(), err
	}
	return mgr, mgr.Get(), nil
}

func newLogger(cfg *config.Config, toFile bool) (zerolog.Logger, io.Closer) {
	if !toFile {
		return logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format), nil
	}
	path := cfg.Logging.File
	if path == "" {
		var err error
		if path, err = config.GetLogFile(); err != nil {
			return zerolog.Nop(), nil
		}
	}
	logger, closer, err := logging.NewWithFile(path, cfg.Logging.Level)
	if err != nil {
		return zerolog.Nop(), nil
	}
	return logger, closer
}

func openStore(ctx context.Context, cfg *config.Config) (repository.KeyValueStore, error) {
	switch cfg.Database.Backend {
	case config.StoreMemory:
		return memory.NewKeyValueStore(), nil
	case config.StoreBadger:
		store, err := badger.Open(ctx, cfg.Database.Path)
		if err != nil {
			return nil, fmt.Errorf("open badger store: %w", err)
		}
		return store, nil
	case config.StoreRedis:
		store, err := redis.Open(ctx, redis.Options{
			Addr:     cfg.Redis.Addr,
			Username: cfg.Redis.Username,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			HashKey:  cfg.Redis.HashKey,
		})
		if err != nil {
			return nil, fmt.Errorf("open redis store: %w", err)
		}
		return store, nil
	default:
		store, err := sqlite.Open(ctx, cfg.Database.Path)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		return store, nil
	}
}

func newSearchProvider(
	cfg *config.Config,
	source searchconfig.ConfigSource,
	store repository.KeyValueStore,
) port.SearchConfigProvider {
	local := searchconfig.NewConfigProvider(source)
	if cfg.Search.RemoteConfigURL == "" {
		return local
	}
	return searchconfig.NewRemoteProvider(searchconfig.RemoteOptions{
		URL:      cfg.Search.RemoteConfigURL,
		Timeout:  time.Duration(cfg.Search.RemoteTimeoutMs) * time.Millisecond,
		Cache:    store,
		Fallback: local,
	})
}

func newRenderer(ctx context.Context, cfg *config.Config) (port.Renderer, error) {
	if cfg.Renderer.Kind != config.RendererChrome {
		return renderer.NewHeadless(nil), nil
	}
	r, err := renderer.NewChrome(ctx, renderer.ChromeOptions{
		ExecPath:          cfg.Renderer.ChromePath,
		Headless:          cfg.Renderer.Headless,
		NavigationTimeout: time.Duration(cfg.Renderer.NavigationTimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("start chrome renderer: %w", err)
	}
	return r, nil
}

func closeQuietly(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}
