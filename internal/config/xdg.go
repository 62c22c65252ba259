package config

import (
	"os"
	"path/filepath"
)

const (
	appName      = "dimmer"
	databaseName = "dimmer.sqlite"
)

// XDGDirs are dimmer's per-user directories under the XDG base dirs.
type XDGDirs struct {
	ConfigHome string // config.toml, config.schema.json
	DataHome   string // zoom database, logs
	StateHome  string
}

// GetXDGDirs resolves dimmer's directories from the XDG environment, with
// the standard ~/.config, ~/.local/share and ~/.local/state fallbacks. With
// ENV=dev everything is rooted at ./.dev/dimmer instead, so a development
// build never touches the real profile.
func GetXDGDirs() (*XDGDirs, error) {
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dev := filepath.Join(cwd, ".dev", appName)
		return &XDGDirs{ConfigHome: dev, DataHome: dev, StateHome: dev}, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	resolve := func(envVar string, fallback ...string) string {
		base := os.Getenv(envVar)
		if base == "" {
			base = filepath.Join(append([]string{home}, fallback...)...)
		}
		return filepath.Join(base, appName)
	}

	return &XDGDirs{
		ConfigHome: resolve("XDG_CONFIG_HOME", ".config"),
		DataHome:   resolve("XDG_DATA_HOME", ".local", "share"),
		StateHome:  resolve("XDG_STATE_HOME", ".local", "state"),
	}, nil
}

// GetConfigDir returns dimmer's config directory.
func GetConfigDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// GetDataDir returns dimmer's data directory.
func GetDataDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.DataHome, nil
}

// GetConfigFile returns the path of the main config file.
func GetConfigFile() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// GetDatabaseFile returns the zoom database path. The database holds
// per-domain user preferences, so it lives in data, not state.
func GetDatabaseFile() (string, error) {
	dir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, databaseName), nil
}

// EnsureDirectories creates all three directories if missing.
func EnsureDirectories() error {
	dirs, err := GetXDGDirs()
	if err != nil {
		return err
	}
	for _, dir := range []string{dirs.ConfigHome, dirs.DataHome, dirs.StateHome} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return err
		}
	}
	return nil
}
