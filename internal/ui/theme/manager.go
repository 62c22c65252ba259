package theme

import (
	"context"

	"github.com/bnema/puregotk/v4/gdk"
	"github.com/bnema/puregotk/v4/gtk"

	"github.com/bnema/dimmer/internal/logging"
)

// Manager resolves the active palette and applies chrome CSS to a display.
type Manager struct {
	prefersDark bool
	light, dark Palette
	provider    *gtk.CssProvider
}

// NewManager creates a theme manager following the system color scheme.
func NewManager(ctx context.Context) *Manager {
	m := &Manager{
		prefersDark: DetectSystemDarkMode(),
		light:       DefaultLightPalette(),
		dark:        DefaultDarkPalette(),
	}
	logging.FromContext(ctx).Debug().
		Bool("prefers_dark", m.prefersDark).
		Msg("theme manager initialized")
	return m
}

// PrefersDark returns true if dark mode is active.
func (m *Manager) PrefersDark() bool {
	return m.prefersDark
}

// CurrentPalette returns the active palette for the resolved scheme.
func (m *Manager) CurrentPalette() Palette {
	if m.prefersDark {
		return m.dark
	}
	return m.light
}

// ApplyToDisplay loads the chrome CSS into the display. The provider is
// created once and reused so repeated calls replace the loaded CSS instead
// of stacking providers.
func (m *Manager) ApplyToDisplay(ctx context.Context, display *gdk.Display) {
	log := logging.FromContext(ctx)
	if display == nil {
		log.Warn().Msg("cannot apply theme: display is nil")
		return
	}

	if m.provider == nil {
		if m.provider = gtk.NewCssProvider(); m.provider == nil {
			log.Error().Msg("failed to create CSS provider")
			return
		}
	}

	m.provider.LoadFromString(GenerateCSS(m.CurrentPalette()))
	gtk.StyleContextAddProviderForDisplay(
		display,
		m.provider,
		uint(gtk.STYLE_PROVIDER_PRIORITY_APPLICATION),
	)
	log.Debug().Bool("dark_mode", m.prefersDark).Msg("theme CSS applied")
}
