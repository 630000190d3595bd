package config

import "github.com/bnema/omnitab/internal/domain/entity"

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{Backend: StoreSQLite},
		Redis: RedisConfig{
			Addr:    "localhost:6379",
			HashKey: "omnitab:kv",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Search: SearchConfig{
			DefaultEngine:   "Google",
			Engines:         entity.DefaultSearchEngines(),
			RemoteTimeoutMs: 3000,
		},
		Homepage: HomepageConfig{
			Enabled: true,
			URL:     "https://www.google.com",
		},
		Omnibox: OmniboxConfig{
			DebounceMs:           300,
			MinQueryLength:       2,
			MaxSuggestions:       8,
			MaxSearchSuggestions: 2,
		},
		Tabs: TabsConfig{
			MaxTabs:        10,
			RestoreOnStart: true,
		},
		History: HistoryConfig{MaxEntries: 100},
		Renderer: RendererConfig{
			Kind:                RendererHeadless,
			Headless:            true,
			NavigationTimeoutMs: 15000,
		},
	}
}

// engineMaps renders engines in the shape viper writes to TOML.
func engineMaps(engines []entity.SearchEngine) []map[string]any {
	out := make([]map[string]any, 0, len(engines))
	for _, e := range engines {
		out = append(out, map[string]any{"name": e.Name, "template": e.Template})
	}
	return out
}
