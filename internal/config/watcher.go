package config

import (
	"fmt"

	"github.com/bnema/dimmer/internal/logging"
	"github.com/fsnotify/fsnotify"
)

// Watch starts reloading the config whenever the file changes on disk.
// Idempotent; a second call is a no-op.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}

	m.viper.WatchConfig()
	m.viper.OnConfigChange(m.handleFileChange)
	m.watching = true
	return nil
}

// handleFileChange runs on fsnotify's goroutine for every write to the
// config file, including our own Save. Save sets skipNextReload so the
// in-memory config (already correct) is not clobbered by viper re-reading
// a possibly half-flushed file; callbacks still fire either way.
func (m *Manager) handleFileChange(e fsnotify.Event) {
	log := logging.NewFromEnv()
	log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config file changed")

	m.mu.Lock()

	if m.skipNextReload {
		m.skipNextReload = false
		// Keep viper's cache in sync with the file Save just wrote.
		if err := m.viper.ReadInConfig(); err != nil {
			log.Warn().Err(err).Msg("resyncing viper after save failed")
		}
		m.notifyLocked()
		return
	}

	if err := m.reload(); err != nil {
		log.Warn().Err(err).Msg("config reload failed, keeping previous config")
		m.mu.Unlock()
		return
	}
	m.notifyLocked()
}

// notifyLocked snapshots the callback list and current config, drops the
// lock, then invokes the callbacks. Callers must hold m.mu for write; it
// is released on return.
func (m *Manager) notifyLocked() {
	cfg := m.config
	cbs := append([]func(*Config)(nil), m.callbacks...)
	m.mu.Unlock()

	for _, cb := range cbs {
		cb(cfg)
	}
}

// OnConfigChange registers cb to run after every successful reload.
func (m *Manager) OnConfigChange(cb func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, cb)
}

// reload re-reads and re-validates the file. Caller holds m.mu for write.
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}

	cfg := &Config{}
	if err := m.viper.Unmarshal(cfg); err != nil {
		return err
	}

	if cfg.Database.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		cfg.Database.Path = dbPath
	}

	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("reloaded config invalid: %w", err)
	}

	m.config = cfg
	return nil
}

// Watch starts the watcher on the global manager.
func Watch() error {
	if globalManager == nil {
		return fmt.Errorf("configuration not initialized")
	}
	return globalManager.Watch()
}

// OnConfigChange registers a callback on the global manager.
func OnConfigChange(cb func(*Config)) {
	if globalManager != nil {
		globalManager.OnConfigChange(cb)
	}
}
