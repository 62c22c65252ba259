package styles

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dimmer/internal/config"
)

// ConfigRenderer renders config command output with styled text.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config file path line.
func (r *ConfigRenderer) RenderConfigInfo(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle

	return fmt.Sprintf(
		"\n  %s Config %s\n",
		iconStyle.Render(IconConfig),
		pathStyle.Render(path),
	)
}

// RenderNoConfigFile renders the message when the config file doesn't exist yet.
func (r *ConfigRenderer) RenderNoConfigFile(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle
	hintStyle := r.theme.Subtle

	return fmt.Sprintf(
		"\n  %s Config %s\n  %s\n",
		iconStyle.Render(IconConfig),
		pathStyle.Render(path),
		hintStyle.Render("Config file will be created on first run with all defaults."),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}

// RenderConfig renders the effective configuration values in a box.
func (r *ConfigRenderer) RenderConfig(cfg *config.Config) string {
	t := r.theme
	keyStyle := t.Subtle
	valStyle := t.Normal

	kv := func(key, val string) string {
		return fmt.Sprintf("%s %s", keyStyle.Render(key+":"), valStyle.Render(val))
	}

	lines := []string{
		kv("default_search_engine", cfg.DefaultSearchEngine),
		kv("homepage", orUnset(cfg.Homepage)),
		kv("default_zoom", FormatZoomFactor(cfg.DefaultZoom)),
		kv("window", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height)),
		kv("database.path", orUnset(cfg.Database.Path)),
		kv("logging", cfg.Logging.Level+" / "+cfg.Logging.Format),
		"",
		t.Subtitle.Render(fmt.Sprintf("search_shortcuts (%d)", len(cfg.SearchShortcuts))),
	}

	// Stable order for the shortcut lines
	prefixes := make([]string, 0, len(cfg.SearchShortcuts))
	for prefix := range cfg.SearchShortcuts {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)

	for _, prefix := range prefixes {
		sc := cfg.SearchShortcuts[prefix]
		lines = append(lines, fmt.Sprintf("%s %s",
			t.AccentBadge(prefix+":"),
			t.ListItemDesc.Render(sc.URL),
		))
	}

	body := strings.Join(lines, "\n")
	header := t.BoxHeader.Render("Configuration")
	return t.Box.Render(header + "\n" + body)
}

func orUnset(v string) string {
	if v == "" {
		return "(unset)"
	}
	return v
}
