// Package config loads omnitab's TOML configuration through viper.
package config

import "github.com/bnema/omnitab/internal/domain/entity"

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// StoreBackend selects the key/value store implementation.
type StoreBackend string

const (
	StoreSQLite StoreBackend = "sqlite"
	StoreBadger StoreBackend = "badger"
	StoreRedis  StoreBackend = "redis"
	StoreMemory StoreBackend = "memory"
)

// RendererKind selects the renderer adapter.
type RendererKind string

const (
	RendererHeadless RendererKind = "headless"
	RendererChrome   RendererKind = "chromedp"
)

// Config represents the complete configuration for omnitab.
type Config struct {
	Database DatabaseConfig `mapstructure:"database" json:"database" toml:"database"`
	Redis    RedisConfig    `mapstructure:"redis" json:"redis" toml:"redis"`
	Logging  LoggingConfig  `mapstructure:"logging" json:"logging" toml:"logging"`
	Search   SearchConfig   `mapstructure:"search" json:"search" toml:"search"`
	Homepage HomepageConfig `mapstructure:"homepage" json:"homepage" toml:"homepage"`
	Omnibox  OmniboxConfig  `mapstructure:"omnibox" json:"omnibox" toml:"omnibox"`
	Tabs     TabsConfig     `mapstructure:"tabs" json:"tabs" toml:"tabs"`
	History  HistoryConfig  `mapstructure:"history" json:"history" toml:"history"`
	Renderer RendererConfig `mapstructure:"renderer" json:"renderer" toml:"renderer"`
}

// DatabaseConfig selects where session state lives.
type DatabaseConfig struct {
	Backend StoreBackend `mapstructure:"backend" json:"backend" toml:"backend" jsonschema:"enum=sqlite,enum=badger,enum=redis,enum=memory"`
	// Path is the sqlite file or badger directory. Defaults under XDG_DATA_HOME.
	Path string `mapstructure:"path" json:"path,omitempty" toml:"path"`
}

// RedisConfig is used when database.backend is "redis".
type RedisConfig struct {
	Addr     string `mapstructure:"addr" json:"addr" toml:"addr"`
	Username string `mapstructure:"username" json:"username,omitempty" toml:"username"`
	Password string `mapstructure:"password" json:"password,omitempty" toml:"password"`
	DB       int    `mapstructure:"db" json:"db" toml:"db"`
	HashKey  string `mapstructure:"hash_key" json:"hash_key" toml:"hash_key"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" json:"level" toml:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" json:"format" toml:"format" jsonschema:"enum=console,enum=json"`
	// File receives logs while the TUI owns the terminal.
	File string `mapstructure:"file" json:"file,omitempty" toml:"file"`
}

// SearchConfig lists the engines and picks the current one.
type SearchConfig struct {
	// DefaultEngine is an engine name from Engines, or a raw template.
	DefaultEngine   string                `mapstructure:"default_engine" json:"default_engine" toml:"default_engine"`
	Engines         []entity.SearchEngine `mapstructure:"engines" json:"engines" toml:"engines"`
	RemoteConfigURL string                `mapstructure:"remote_config_url" json:"remote_config_url,omitempty" toml:"remote_config_url"`
	RemoteTimeoutMs int                   `mapstructure:"remote_timeout_ms" json:"remote_timeout_ms" toml:"remote_timeout_ms"`
}

// HomepageConfig controls the home page.
type HomepageConfig struct {
	Enabled bool   `mapstructure:"enabled" json:"enabled" toml:"enabled"`
	URL     string `mapstructure:"url" json:"url" toml:"url"`
}

// OmniboxConfig tunes suggestions.
type OmniboxConfig struct {
	DebounceMs           int `mapstructure:"debounce_ms" json:"debounce_ms" toml:"debounce_ms"`
	MinQueryLength       int `mapstructure:"min_query_length" json:"min_query_length" toml:"min_query_length"`
	MaxSuggestions       int `mapstructure:"max_suggestions" json:"max_suggestions" toml:"max_suggestions"`
	MaxSearchSuggestions int `mapstructure:"max_search_suggestions" json:"max_search_suggestions" toml:"max_search_suggestions"`
}

// TabsConfig bounds the session.
type TabsConfig struct {
	MaxTabs        int  `mapstructure:"max_tabs" json:"max_tabs" toml:"max_tabs"`
	RestoreOnStart bool `mapstructure:"restore_on_start" json:"restore_on_start" toml:"restore_on_start"`
}

// HistoryConfig bounds history.
type HistoryConfig struct {
	MaxEntries int `mapstructure:"max_entries" json:"max_entries" toml:"max_entries"`
}

// RendererConfig selects and tunes the renderer.
type RendererConfig struct {
	Kind                RendererKind `mapstructure:"kind" json:"kind" toml:"kind" jsonschema:"enum=headless,enum=chromedp"`
	ChromePath          string       `mapstructure:"chrome_path" json:"chrome_path,omitempty" toml:"chrome_path"`
	Headless            bool         `mapstructure:"headless" json:"headless" toml:"headless"`
	NavigationTimeoutMs int          `mapstructure:"navigation_timeout_ms" json:"navigation_timeout_ms" toml:"navigation_timeout_ms"`
}
