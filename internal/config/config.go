// Package config provides configuration management for dimmer with Viper integration.
package config

// File permission constants
const (
	dirPerm  = 0755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0644 // Standard file permissions (rw-r--r--)
)

// Config represents the complete configuration for dimmer.
type Config struct {
	// DefaultSearchEngine is the URL template used when input is not a URL
	// and carries no shortcut prefix. The literal token {query} is replaced
	// with the typed text.
	DefaultSearchEngine string                    `mapstructure:"default_search_engine" yaml:"default_search_engine" toml:"default_search_engine"`
	SearchShortcuts     map[string]SearchShortcut `mapstructure:"search_shortcuts" yaml:"search_shortcuts" toml:"search_shortcuts"`
	// Homepage is loaded into a fresh tab on startup. Empty means the window
	// starts without a tab until the first address bar submit.
	Homepage    string         `mapstructure:"homepage" yaml:"homepage" toml:"homepage"`
	DefaultZoom float64        `mapstructure:"default_zoom" yaml:"default_zoom" toml:"default_zoom"`
	Window      WindowConfig   `mapstructure:"window" yaml:"window" toml:"window"`
	Database    DatabaseConfig `mapstructure:"database" yaml:"database" toml:"database"`
	Logging     LoggingConfig  `mapstructure:"logging" yaml:"logging" toml:"logging"`
}

// SearchShortcut represents a search shortcut configuration.
type SearchShortcut struct {
	URL         string `mapstructure:"url" yaml:"url" toml:"url" json:"url"`
	Description string `mapstructure:"description" yaml:"description" toml:"description" json:"description"`
}

// WindowConfig holds initial window geometry.
type WindowConfig struct {
	Width  int `mapstructure:"width" yaml:"width" toml:"width"`
	Height int `mapstructure:"height" yaml:"height" toml:"height"`
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path" toml:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level"`
	Format string `mapstructure:"format" yaml:"format" toml:"format"`
}

// DefaultConfig returns the built-in configuration used when no config file
// exists yet and as the fallback for CLI commands that run before Init.
func DefaultConfig() *Config {
	return &Config{
		DefaultSearchEngine: "https://duckduckgo.com/?q={query}",
		SearchShortcuts:     DefaultSearchShortcuts(),
		Homepage:            "",
		DefaultZoom:         1.0,
		Window: WindowConfig{
			Width:  1280,
			Height: 800,
		},
		Database: DatabaseConfig{
			Path: "", // Resolved to the XDG data dir during Load
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// DefaultSearchShortcuts returns the default search shortcuts.
func DefaultSearchShortcuts() map[string]SearchShortcut {
	return map[string]SearchShortcut{
		"ddg": {
			URL:         "https://duckduckgo.com/?q={query}",
			Description: "DuckDuckGo search",
		},
		"g": {
			URL:         "https://www.google.com/search?q={query}",
			Description: "Google search",
		},
		"gh": {
			URL:         "https://github.com/search?q={query}",
			Description: "GitHub search",
		},
		"go": {
			URL:         "https://pkg.go.dev/search?q={query}",
			Description: "Go package search",
		},
		"mdn": {
			URL:         "https://developer.mozilla.org/en-US/search?q={query}",
			Description: "MDN Web Docs search",
		},
		"w": {
			URL:         "https://en.wikipedia.org/wiki/Special:Search?search={query}",
			Description: "Wikipedia search",
		},
	}
}
