package config

import (
	"fmt"
	"strings"
)

// Zoom factors WebKit accepts without visual artifacts.
const (
	MinZoom = 0.25
	MaxZoom = 5.0
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateSearchEngine(config)...)
	validationErrors = append(validationErrors, validateShortcuts(config)...)
	validationErrors = append(validationErrors, validateZoom(config)...)
	validationErrors = append(validationErrors, validateWindow(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateSearchEngine(config *Config) []string {
	if config.DefaultSearchEngine == "" {
		return []string{"default_search_engine cannot be empty"}
	}
	if !strings.Contains(config.DefaultSearchEngine, "{query}") {
		return []string{"default_search_engine must contain the {query} placeholder"}
	}
	return nil
}

func validateShortcuts(config *Config) []string {
	var validationErrors []string
	for key, shortcut := range config.SearchShortcuts {
		if key == "" {
			validationErrors = append(validationErrors, "search_shortcuts keys cannot be empty")
			continue
		}
		if shortcut.URL == "" {
			validationErrors = append(validationErrors, fmt.Sprintf("search_shortcuts.%s.url cannot be empty", key))
			continue
		}
		if !strings.Contains(shortcut.URL, "{query}") {
			validationErrors = append(validationErrors, fmt.Sprintf(
				"search_shortcuts.%s.url must contain the {query} placeholder", key))
		}
	}
	return validationErrors
}

func validateZoom(config *Config) []string {
	if config.DefaultZoom < MinZoom || config.DefaultZoom > MaxZoom {
		return []string{fmt.Sprintf("default_zoom must be between %.2f and %.1f", MinZoom, MaxZoom)}
	}
	return nil
}

func validateWindow(config *Config) []string {
	var validationErrors []string
	if config.Window.Width < 1 {
		validationErrors = append(validationErrors, "window.width must be positive")
	}
	if config.Window.Height < 1 {
		validationErrors = append(validationErrors, "window.height must be positive")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "fatal", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error, fatal (got: %s)",
			config.Logging.Level,
		))
	}
	switch config.Logging.Format {
	case "json", "console", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: json, console (got: %s)",
			config.Logging.Format,
		))
	}
	return validationErrors
}
