package parser

import (
	"fmt"
	"strings"

	"github.com/bnema/dimmer/internal/config"
)

const builtinEngine = "https://duckduckgo.com/?q={query}"

// ParseInput resolves raw address-bar text. Resolution order: direct URL
// (scheme-normalized), then a configured search shortcut ("gh: cobra cli"),
// then the default search engine. The final fallback always yields a
// navigable URL, so resolution cannot fail for malformed input.
func (p *Parser) ParseInput(input string) (*ParseResult, error) {
	clean := Sanitize(input)

	if IsDirectURL(clean) {
		return &ParseResult{
			Type:  InputTypeDirectURL,
			URL:   NormalizeURL(clean),
			Query: input,
		}, nil
	}

	if key, query, ok := SplitShortcut(clean); ok {
		if sc, known := p.cfg.SearchShortcuts[key]; known {
			u, err := expandTemplate(sc.URL, query)
			if err != nil {
				return nil, fmt.Errorf("shortcut %q: %w", key, err)
			}
			return &ParseResult{
				Type:  InputTypeSearchShortcut,
				URL:   u,
				Query: input,
				Shortcut: &DetectedShortcut{
					Key:         key,
					Query:       query,
					Description: sc.Description,
				},
			}, nil
		}
		// Unknown key: the whole input is a search query.
	}

	return &ParseResult{
		Type:  InputTypeFallbackSearch,
		URL:   p.buildSearchURL(clean),
		Query: input,
	}, nil
}

// ProcessShortcut expands the named shortcut from the given table.
func (p *Parser) ProcessShortcut(key, query string, shortcuts map[string]config.SearchShortcut) (string, error) {
	sc, ok := shortcuts[key]
	if !ok {
		return "", fmt.Errorf("unknown search shortcut %q", key)
	}
	return expandTemplate(sc.URL, query)
}

// GetSupportedShortcuts returns the configured shortcut table.
func (p *Parser) GetSupportedShortcuts() map[string]config.SearchShortcut {
	return p.cfg.SearchShortcuts
}

// expandTemplate substitutes the query into the {query} placeholder. The
// substitution is verbatim, not URL-escaped; the tests assert this raw
// behavior rather than silently hardening it.
func expandTemplate(template, query string) (string, error) {
	u := strings.ReplaceAll(template, "{query}", query)
	if !strings.HasPrefix(u, "http") && !IsValidURL(u) {
		return "", fmt.Errorf("template produced an unusable URL: %s", u)
	}
	return u, nil
}

func (p *Parser) buildSearchURL(query string) string {
	engine := p.cfg.DefaultSearchEngine
	if engine == "" {
		engine = builtinEngine
	}
	return strings.ReplaceAll(engine, "{query}", query)
}
