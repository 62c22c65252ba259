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
	config         *Config
	viper          *viper.Viper
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	// Environment variables: DIMMER_LOGGING_LEVEL overrides logging.level, etc.
	v.SetEnvPrefix("DIMMER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short forms read by the logger before config is loaded
	_ = v.BindEnv("logging.level", "DIMMER_LOG_LEVEL", "DIMMER_LOGGING_LEVEL")
	_ = v.BindEnv("logging.format", "DIMMER_LOG_FORMAT", "DIMMER_LOGGING_FORMAT")

	return &Manager{
		config: &Config{},
		viper:  v,
	}, nil
}

// Load loads the configuration from file, environment, and defaults.
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

	if err := m.unmarshalConfig(); err != nil {
		return err
	}

	if err := m.ensureDatabasePath(); err != nil {
		return err
	}

	normalizeConfig(m.config)

	if err := validateConfig(m.config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	return nil
}

// readConfigFile reads the config file, creating a default one if missing.
func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if err := m.createDefaultConfig(); err != nil {
			return fmt.Errorf("failed to create default config: %w", err)
		}

		if err := m.viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read created config file: %w", err)
		}
	}
	return nil
}

// unmarshalConfig unmarshals viper state into a fresh Config.
func (m *Manager) unmarshalConfig() error {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	m.config = config
	return nil
}

// ensureDatabasePath resolves the database path to the XDG data dir when unset.
func (m *Manager) ensureDatabasePath() error {
	if m.config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	m.config.Database.Path = dbPath
	return nil
}

// createDefaultConfig writes the default config file and its JSON schema.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write default config: %w", err)
	}

	fmt.Printf("Created default configuration: %s\n", configFile)

	// Schema generation is cosmetic (editor completion); failure is not fatal.
	if err := GenerateSchemaFile(); err != nil {
		fmt.Printf("Warning: failed to generate config schema: %v\n", err)
	}

	return nil
}

// setDefaults registers defaults for all configuration sections.
func (m *Manager) setDefaults() {
	m.setSearchDefaults()
	m.setWindowDefaults()
	m.setDatabaseDefaults()
	m.setLoggingDefaults()
}

func (m *Manager) setSearchDefaults() {
	defaults := DefaultConfig()
	m.viper.SetDefault("default_search_engine", defaults.DefaultSearchEngine)
	m.viper.SetDefault("search_shortcuts", defaults.SearchShortcuts)
	m.viper.SetDefault("homepage", defaults.Homepage)
	m.viper.SetDefault("default_zoom", defaults.DefaultZoom)
}

func (m *Manager) setWindowDefaults() {
	defaults := DefaultConfig()
	m.viper.SetDefault("window.width", defaults.Window.Width)
	m.viper.SetDefault("window.height", defaults.Window.Height)
}

func (m *Manager) setDatabaseDefaults() {
	m.viper.SetDefault("database.path", "")
}

func (m *Manager) setLoggingDefaults() {
	defaults := DefaultConfig()
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}

// normalizeConfig canonicalizes values that tolerate sloppy input.
func normalizeConfig(config *Config) {
	config.DefaultSearchEngine = strings.TrimSpace(config.DefaultSearchEngine)
	config.Homepage = strings.TrimSpace(config.Homepage)
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))

	normalized := make(map[string]SearchShortcut, len(config.SearchShortcuts))
	for key, shortcut := range config.SearchShortcuts {
		shortcut.URL = strings.TrimSpace(shortcut.URL)
		normalized[strings.ToLower(strings.TrimSpace(key))] = shortcut
	}
	config.SearchShortcuts = normalized
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	configCopy := *m.config
	return &configCopy
}

// Save validates and persists the given configuration to the config file.
func (m *Manager) Save(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("refusing to save invalid config: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.viper.Set("default_search_engine", config.DefaultSearchEngine)
	m.viper.Set("search_shortcuts", config.SearchShortcuts)
	m.viper.Set("homepage", config.Homepage)
	m.viper.Set("default_zoom", config.DefaultZoom)
	m.viper.Set("window.width", config.Window.Width)
	m.viper.Set("window.height", config.Window.Height)
	m.viper.Set("database.path", config.Database.Path)
	m.viper.Set("logging.level", config.Logging.Level)
	m.viper.Set("logging.format", config.Logging.Format)

	// The watcher would otherwise re-read the file we are about to write
	// and race the in-memory state.
	if m.watching {
		m.skipNextReload = true
	}

	if err := m.viper.WriteConfig(); err != nil {
		m.skipNextReload = false
		return fmt.Errorf("failed to write config: %w", err)
	}

	m.config = config
	return nil
}

// Global configuration manager instance.
var (
	globalManager     *Manager
	globalManagerOnce sync.Once
)

// Init initializes the global configuration manager and loads configuration.
func Init() error {
	var initErr error
	globalManagerOnce.Do(func() {
		manager, err := NewManager()
		if err != nil {
			initErr = err
			return
		}
		if err := manager.Load(); err != nil {
			initErr = err
			return
		}
		globalManager = manager
	})
	return initErr
}

// Get returns the current global configuration.
// Init must have been called first.
func Get() *Config {
	if globalManager == nil {
		return DefaultConfig()
	}
	return globalManager.Get()
}

// GetManager returns the global configuration manager.
func GetManager() *Manager {
	return globalManager
}
