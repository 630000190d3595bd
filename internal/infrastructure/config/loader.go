package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// OMNITAB_DATABASE_BACKEND, OMNITAB_TABS_MAX_TABS, ...
	v.SetEnvPrefix("OMNITAB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "OMNITAB_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind OMNITAB_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "OMNITAB_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind OMNITAB_LOG_FORMAT: %w", err)
	}
	if err := v.BindEnv("redis.addr", "OMNITAB_REDIS_ADDR"); err != nil {
		return nil, fmt.Errorf("failed to bind OMNITAB_REDIS_ADDR: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}
	return m.decode()
}

// decode unmarshals viper state into a validated Config. Caller holds m.mu.
func (m *Manager) decode() error {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}

	normalizeConfig(config)
	if err := ensureDatabasePath(config); err != nil {
		return err
	}
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = GetConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		configDir, _ := GetConfigDir()
		return fmt.Errorf("failed to create default config at %s: %w", configDir, createErr)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" || config.Database.Backend == StoreMemory || config.Database.Backend == StoreRedis {
		return nil
	}
	dbPath, err := GetDatabasePath(config.Database.Backend)
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	switch StoreBackend(strings.ToLower(string(config.Database.Backend))) {
	case StoreBadger:
		config.Database.Backend = StoreBadger
	case StoreRedis:
		config.Database.Backend = StoreRedis
	case StoreMemory:
		config.Database.Backend = StoreMemory
	default:
		config.Database.Backend = StoreSQLite
	}

	switch RendererKind(strings.ToLower(string(config.Renderer.Kind))) {
	case RendererChrome:
		config.Renderer.Kind = RendererChrome
	default:
		config.Renderer.Kind = RendererHeadless
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	config.Search.DefaultEngine = strings.TrimSpace(config.Search.DefaultEngine)
	config.Search.RemoteConfigURL = strings.TrimSpace(config.Search.RemoteConfigURL)
	config.Homepage.URL = strings.TrimSpace(config.Homepage.URL)
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	configCopy.Search.Engines = append(configCopy.Search.Engines[:0:0], m.config.Search.Engines...)
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the defaults to config.toml.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	// stdout is reserved for command output
	fmt.Fprintf(os.Stderr, "Created default configuration file: %s\n", configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// database.path is resolved per backend in decode
	m.viper.SetDefault("database.backend", string(defaults.Database.Backend))

	m.setRedisDefaults(defaults)
	m.setLoggingDefaults(defaults)
	m.setSearchDefaults(defaults)
	m.setSessionDefaults(defaults)
	m.setRendererDefaults(defaults)
}

func (m *Manager) setRedisDefaults(defaults *Config) {
	m.viper.SetDefault("redis.addr", defaults.Redis.Addr)
	m.viper.SetDefault("redis.db", defaults.Redis.DB)
	m.viper.SetDefault("redis.hash_key", defaults.Redis.HashKey)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}

func (m *Manager) setSearchDefaults(defaults *Config) {
	m.viper.SetDefault("search.default_engine", defaults.Search.DefaultEngine)
	m.viper.SetDefault("search.engines", engineMaps(defaults.Search.Engines))
	m.viper.SetDefault("search.remote_timeout_ms", defaults.Search.RemoteTimeoutMs)
	m.viper.SetDefault("homepage.enabled", defaults.Homepage.Enabled)
	m.viper.SetDefault("homepage.url", defaults.Homepage.URL)
}

func (m *Manager) setSessionDefaults(defaults *Config) {
	m.viper.SetDefault("omnibox.debounce_ms", defaults.Omnibox.DebounceMs)
	m.viper.SetDefault("omnibox.min_query_length", defaults.Omnibox.MinQueryLength)
	m.viper.SetDefault("omnibox.max_suggestions", defaults.Omnibox.MaxSuggestions)
	m.viper.SetDefault("omnibox.max_search_suggestions", defaults.Omnibox.MaxSearchSuggestions)
	m.viper.SetDefault("tabs.max_tabs", defaults.Tabs.MaxTabs)
	m.viper.SetDefault("tabs.restore_on_start", defaults.Tabs.RestoreOnStart)
	m.viper.SetDefault("history.max_entries", defaults.History.MaxEntries)
}

func (m *Manager) setRendererDefaults(defaults *Config) {
	m.viper.SetDefault("renderer.kind", string(defaults.Renderer.Kind))
	m.viper.SetDefault("renderer.headless", defaults.Renderer.Headless)
	m.viper.SetDefault("renderer.navigation_timeout_ms", defaults.Renderer.NavigationTimeoutMs)
}
