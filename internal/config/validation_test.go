package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_SearchEngine(t *testing.T) {
	tests := []struct {
		name    string
		engine  string
		wantErr bool
	}{
		{name: "valid template", engine: "https://duckduckgo.com/?q={query}", wantErr: false},
		{name: "empty", engine: "", wantErr: true},
		{name: "missing placeholder", engine: "https://duckduckgo.com/", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.DefaultSearchEngine = tt.engine

			err := validateConfig(cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "default_search_engine")
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateConfig_Shortcuts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SearchShortcuts = map[string]SearchShortcut{
		"g": {URL: "https://www.google.com/search"},
	}

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search_shortcuts.g.url")
}

func TestValidateConfig_ZoomRange(t *testing.T) {
	tests := []struct {
		name    string
		zoom    float64
		wantErr bool
	}{
		{name: "default", zoom: 1.0, wantErr: false},
		{name: "min", zoom: MinZoom, wantErr: false},
		{name: "max", zoom: MaxZoom, wantErr: false},
		{name: "below min", zoom: 0.1, wantErr: true},
		{name: "above max", zoom: 5.5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.DefaultZoom = tt.zoom

			err := validateConfig(cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "default_zoom")
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateConfig_Logging(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "verbose"
	cfg.Logging.Format = "xml"

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "logging.format")
}

func TestValidateConfig_Window(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Window.Width = 0
	cfg.Window.Height = -1

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "window.width")
	assert.Contains(t, err.Error(), "window.height")
}
