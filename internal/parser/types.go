// Package parser resolves address-bar input into a navigable destination:
// a direct URL, a search shortcut, or a default-engine search.
package parser

import "github.com/bnema/dimmer/internal/config"

// InputType classifies resolved address-bar input.
type InputType int

const (
	// InputTypeDirectURL navigates verbatim, e.g. "example.com" or a full URL.
	InputTypeDirectURL InputType = iota
	// InputTypeSearchShortcut goes through a configured shortcut, e.g. "g: query".
	InputTypeSearchShortcut
	// InputTypeFallbackSearch goes through the default search engine.
	InputTypeFallbackSearch
)

func (t InputType) String() string {
	switch t {
	case InputTypeDirectURL:
		return "direct_url"
	case InputTypeSearchShortcut:
		return "search_shortcut"
	case InputTypeFallbackSearch:
		return "fallback_search"
	}
	return "unknown"
}

// ParseResult is a resolved destination.
type ParseResult struct {
	Type  InputType
	URL   string
	Query string // the original input, untouched
	// Shortcut is set when Type is InputTypeSearchShortcut.
	Shortcut *DetectedShortcut
}

// DetectedShortcut describes which configured shortcut matched.
type DetectedShortcut struct {
	Key         string
	Query       string
	Description string
}

// Parser resolves raw input against the configured search engine and
// shortcuts.
type Parser struct {
	cfg *config.Config
}

func NewParser(cfg *config.Config) *Parser {
	return &Parser{cfg: cfg}
}
