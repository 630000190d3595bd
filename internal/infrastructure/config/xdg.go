package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appName      = "omnitab"
	databaseName = "omnitab.sqlite"
	badgerDir    = "badger"
)

// XDGDirs holds the XDG Base Directory paths for the application.
type XDGDirs struct {
	ConfigHome string
	DataHome   string
	StateHome  string
}

// GetXDGDirs returns the XDG Base Directory paths for omnitab:
// - $XDG_CONFIG_HOME/omnitab (default: ~/.config/omnitab)
// - $XDG_DATA_HOME/omnitab (default: ~/.local/share/omnitab)
// - $XDG_STATE_HOME/omnitab (default: ~/.local/state/omnitab)
func GetXDGDirs() (*XDGDirs, error) {
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		devDir := filepath.Join(cwd, ".dev", appName)
		return &XDGDirs{ConfigHome: devDir, DataHome: devDir, StateHome: devDir}, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := func(env string, fallback ...string) string {
		base := os.Getenv(env)
		if base == "" {
			base = filepath.Join(append([]string{homeDir}, fallback...)...)
		}
		return filepath.Join(base, appName)
	}

	return &XDGDirs{
		ConfigHome: dir("XDG_CONFIG_HOME", ".config"),
		DataHome:   dir("XDG_DATA_HOME", ".local", "share"),
		StateHome:  dir("XDG_STATE_HOME", ".local", "state"),
	}, nil
}

// GetConfigDir returns the XDG config directory for omnitab.
func GetConfigDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// GetConfigFile returns the path to config.toml.
func GetConfigFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// GetDatabasePath returns the default store location for backend.
func GetDatabasePath(backend StoreBackend) (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	if backend == StoreBadger {
		return filepath.Join(dirs.DataHome, badgerDir), nil
	}
	return filepath.Join(dirs.DataHome, databaseName), nil
}

// GetLogFile returns the default TUI log file path.
func GetLogFile() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.StateHome, "omnitab.log"), nil
}

// EnsureDirectories creates the config, data and state directories.
func EnsureDirectories() error {
	dirs, err := GetXDGDirs()
	if err != nil {
		return err
	}
	for _, dir := range []string{dirs.ConfigHome, dirs.DataHome, dirs.StateHome} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
