package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/omnitab/internal/domain/entity"
)

func TestValidateConfig_Defaults(t *testing.T) {
	require.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantKey string
	}{
		{name: "unknown level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantKey: "logging.level"},
		{name: "unknown format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantKey: "logging.format"},
		{
			name:    "relative engine template",
			mutate:  func(c *Config) { c.Search.Engines = []entity.SearchEngine{{Name: "x", Template: "search?q=%s"}} },
			wantKey: "search.engines[0].template",
		},
		{
			name:    "unnamed engine",
			mutate:  func(c *Config) { c.Search.Engines = []entity.SearchEngine{{Template: "https://x.test/?q=%s"}} },
			wantKey: "search.engines[0].name",
		},
		{name: "bad remote url", mutate: func(c *Config) { c.Search.RemoteConfigURL = "not a url" }, wantKey: "search.remote_config_url"},
		{name: "homepage without url", mutate: func(c *Config) { c.Homepage.URL = "" }, wantKey: "homepage.url"},
		{name: "no suggestions", mutate: func(c *Config) { c.Omnibox.MaxSuggestions = 0 }, wantKey: "omnibox.max_suggestions"},
		{name: "negative debounce", mutate: func(c *Config) { c.Omnibox.DebounceMs = -1 }, wantKey: "omnibox.debounce_ms"},
		{name: "zero tabs", mutate: func(c *Config) { c.Tabs.MaxTabs = 0 }, wantKey: "tabs.max_tabs"},
		{name: "negative history", mutate: func(c *Config) { c.History.MaxEntries = -5 }, wantKey: "history.max_entries"},
		{
			name: "redis without addr",
			mutate: func(c *Config) {
				c.Database.Backend = StoreRedis
				c.Redis.Addr = ""
			},
			wantKey: "redis.addr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantKey)
		})
	}
}
