package parser

import (
	"strings"
	"testing"

	"github.com/bnema/dimmer/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		DefaultSearchEngine: "https://duckduckgo.com/?q={query}",
		SearchShortcuts: map[string]config.SearchShortcut{
			"g": {
				URL:         "https://www.google.com/search?q={query}",
				Description: "Google search",
			},
			"gh": {
				URL:         "https://github.com/search?q={query}",
				Description: "GitHub search",
			},
		},
	}
}

func TestParseInput_DirectURL(t *testing.T) {
	p := NewParser(testConfig())

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Full HTTPS URL", "https://example.com", "https://example.com"},
		{"Bare domain", "example.com", "https://example.com"},
		{"Domain with path", "github.com/bnema/dimmer", "https://github.com/bnema/dimmer"},
		{"IP address", "192.168.1.1", "https://192.168.1.1"},
		{"Localhost with port", "localhost:8080", "http://localhost:8080"},
		{"Surrounding whitespace", "  example.com  ", "https://example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := p.ParseInput(tt.input)
			if err != nil {
				t.Fatalf("ParseInput(%q) returned error: %v", tt.input, err)
			}
			if result.Type != InputTypeDirectURL {
				t.Errorf("ParseInput(%q) type = %v, want %v", tt.input, result.Type, InputTypeDirectURL)
			}
			if result.URL != tt.expected {
				t.Errorf("ParseInput(%q) URL = %q, want %q", tt.input, result.URL, tt.expected)
			}
		})
	}
}

func TestParseInput_SearchShortcut(t *testing.T) {
	p := NewParser(testConfig())

	result, err := p.ParseInput("gh: cobra cli")
	if err != nil {
		t.Fatalf("ParseInput returned error: %v", err)
	}

	if result.Type != InputTypeSearchShortcut {
		t.Errorf("type = %v, want %v", result.Type, InputTypeSearchShortcut)
	}
	if result.URL != "https://github.com/search?q=cobra cli" {
		t.Errorf("URL = %q, want %q", result.URL, "https://github.com/search?q=cobra cli")
	}
	if result.Shortcut == nil {
		t.Fatal("expected shortcut metadata")
	}
	if result.Shortcut.Key != "gh" || result.Shortcut.Query != "cobra cli" {
		t.Errorf("shortcut = %+v, want key=gh query=%q", result.Shortcut, "cobra cli")
	}
}

func TestParseInput_UnknownShortcutFallsBack(t *testing.T) {
	p := NewParser(testConfig())

	result, err := p.ParseInput("zz: whatever")
	if err != nil {
		t.Fatalf("ParseInput returned error: %v", err)
	}

	if result.Type != InputTypeFallbackSearch {
		t.Errorf("type = %v, want %v", result.Type, InputTypeFallbackSearch)
	}
	if !strings.HasPrefix(result.URL, "https://duckduckgo.com/?q=") {
		t.Errorf("URL = %q, want default engine URL", result.URL)
	}
}

func TestParseInput_FallbackSearch(t *testing.T) {
	p := NewParser(testConfig())

	result, err := p.ParseInput("hello world")
	if err != nil {
		t.Fatalf("ParseInput returned error: %v", err)
	}

	if result.Type != InputTypeFallbackSearch {
		t.Errorf("type = %v, want %v", result.Type, InputTypeFallbackSearch)
	}
	if result.URL != "https://duckduckgo.com/?q=hello world" {
		t.Errorf("URL = %q, want %q", result.URL, "https://duckduckgo.com/?q=hello world")
	}
}

// The template substitution is verbatim: the query is NOT URL-escaped before
// insertion. "hello world" lands in the URL with a literal space, and
// reserved characters like '&' pass through untouched. Escaping here would
// change what the engine receives for queries that legitimately contain
// encoded text, so the raw behavior is asserted rather than "fixed".
func TestParseInput_SubstitutionIsVerbatim(t *testing.T) {
	p := NewParser(testConfig())

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Spaces preserved", "hello world", "https://duckduckgo.com/?q=hello world"},
		{"Ampersand preserved", "fish & chips", "https://duckduckgo.com/?q=fish & chips"},
		{"Percent preserved", "100% done", "https://duckduckgo.com/?q=100% done"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := p.ParseInput(tt.input)
			if err != nil {
				t.Fatalf("ParseInput(%q) returned error: %v", tt.input, err)
			}
			if result.URL != tt.want {
				t.Errorf("ParseInput(%q) URL = %q, want %q", tt.input, result.URL, tt.want)
			}
		})
	}
}

func TestParseInput_EmptyInput(t *testing.T) {
	p := NewParser(testConfig())

	result, err := p.ParseInput("   ")
	if err != nil {
		t.Fatalf("ParseInput returned error: %v", err)
	}

	if result.Type != InputTypeFallbackSearch {
		t.Errorf("type = %v, want %v", result.Type, InputTypeFallbackSearch)
	}
}

func TestProcessShortcut_UnknownKey(t *testing.T) {
	p := NewParser(testConfig())

	_, err := p.ProcessShortcut("nope", "query", testConfig().SearchShortcuts)
	if err == nil {
		t.Fatal("expected error for unknown shortcut key")
	}
}

func TestBuildSearchURL_EmptyEngineUsesBuiltin(t *testing.T) {
	p := NewParser(&config.Config{})

	url := p.buildSearchURL("golang")
	if url != "https://duckduckgo.com/?q=golang" {
		t.Errorf("buildSearchURL = %q, want builtin engine", url)
	}
}

func BenchmarkParseInput(b *testing.B) {
	p := NewParser(testConfig())
	testInputs := []string{
		"https://github.com",
		"github.com",
		"gh: cobra cli",
		"just some text",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = p.ParseInput(testInputs[i%len(testInputs)])
	}
}
