package config

import (
	"fmt"
	"net/url"
	"strings"
)

func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateSearch(config)...)
	validationErrors = append(validationErrors, validateSession(config)...)
	validationErrors = append(validationErrors, validateStore(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level %q is not a known level", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, "logging.format must be console or json")
	}
	return validationErrors
}

func validateSearch(config *Config) []string {
	var validationErrors []string
	for i, engine := range config.Search.Engines {
		if strings.TrimSpace(engine.Name) == "" {
			validationErrors = append(validationErrors, fmt.Sprintf("search.engines[%d].name must not be empty", i))
		}
		if !strings.Contains(engine.Template, "://") {
			validationErrors = append(validationErrors, fmt.Sprintf("search.engines[%d].template must be an absolute URL", i))
		}
	}
	if config.Search.RemoteConfigURL != "" {
		if u, err := url.Parse(config.Search.RemoteConfigURL); err != nil || u.Scheme == "" || u.Host == "" {
			validationErrors = append(validationErrors, "search.remote_config_url must be an absolute URL")
		}
	}
	if config.Search.RemoteTimeoutMs < 0 {
		validationErrors = append(validationErrors, "search.remote_timeout_ms must be non-negative")
	}
	if config.Homepage.Enabled && config.Homepage.URL == "" {
		validationErrors = append(validationErrors, "homepage.url must be set when homepage.enabled is true")
	}
	return validationErrors
}

func validateSession(config *Config) []string {
	var validationErrors []string
	if config.Omnibox.DebounceMs < 0 {
		validationErrors = append(validationErrors, "omnibox.debounce_ms must be non-negative")
	}
	if config.Omnibox.MinQueryLength < 0 {
		validationErrors = append(validationErrors, "omnibox.min_query_length must be non-negative")
	}
	if config.Omnibox.MaxSuggestions < 1 {
		validationErrors = append(validationErrors, "omnibox.max_suggestions must be at least 1")
	}
	if config.Omnibox.MaxSearchSuggestions < 0 {
		validationErrors = append(validationErrors, "omnibox.max_search_suggestions must be non-negative")
	}
	if config.Tabs.MaxTabs < 1 {
		validationErrors = append(validationErrors, "tabs.max_tabs must be at least 1")
	}
	if config.History.MaxEntries < 0 {
		validationErrors = append(validationErrors, "history.max_entries must be non-negative")
	}
	if config.Renderer.NavigationTimeoutMs < 0 {
		validationErrors = append(validationErrors, "renderer.navigation_timeout_ms must be non-negative")
	}
	return validationErrors
}

func validateStore(config *Config) []string {
	if config.Database.Backend == StoreRedis && config.Redis.Addr == "" {
		return []string{"redis.addr must be set when database.backend is redis"}
	}
	return nil
}
