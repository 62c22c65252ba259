package usecase

import (
	"context"
	"testing"

	"github.com/bnema/dimmer/internal/config"
	"github.com/bnema/dimmer/internal/parser"
)

func resolveTestConfig() *config.Config {
	return &config.Config{
		DefaultSearchEngine: "https://duckduckgo.com/?q={query}",
		SearchShortcuts: map[string]config.SearchShortcut{
			"gh": {URL: "https://github.com/search?q={query}", Description: "GitHub search"},
		},
	}
}

func TestResolveDestination(t *testing.T) {
	uc := NewResolveDestinationUseCase(resolveTestConfig())
	ctx := context.Background()

	tests := []struct {
		name     string
		input    string
		wantType parser.InputType
		wantURL  string
	}{
		{"direct URL", "example.com", parser.InputTypeDirectURL, "https://example.com"},
		{"full URL", "https://example.com/a", parser.InputTypeDirectURL, "https://example.com/a"},
		{"shortcut", "gh: dimmer", parser.InputTypeSearchShortcut, "https://github.com/search?q=dimmer"},
		{"search", "hello world", parser.InputTypeFallbackSearch, "https://duckduckgo.com/?q=hello world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := uc.Resolve(ctx, tt.input)
			if err != nil {
				t.Fatalf("Resolve(%q) returned error: %v", tt.input, err)
			}
			if result.Type != tt.wantType {
				t.Errorf("Resolve(%q) type = %v, want %v", tt.input, result.Type, tt.wantType)
			}
			if result.URL != tt.wantURL {
				t.Errorf("Resolve(%q) URL = %q, want %q", tt.input, result.URL, tt.wantURL)
			}
		})
	}
}

func TestResolveDestination_IsDirectURL(t *testing.T) {
	uc := NewResolveDestinationUseCase(resolveTestConfig())

	if !uc.IsDirectURL("  github.com ") {
		t.Error("IsDirectURL should accept a bare domain with whitespace")
	}
	if uc.IsDirectURL("plain search words") {
		t.Error("IsDirectURL should reject plain search words")
	}
}
