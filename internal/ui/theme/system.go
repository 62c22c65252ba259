package theme

import (
	"os"
	"strings"

	"github.com/bnema/puregotk/v4/gtk"
)

// DetectSystemDarkMode reports whether the system prefers dark mode.
// An explicit GTK_THEME wins over the GTK settings property.
func DetectSystemDarkMode() bool {
	if name := os.Getenv("GTK_THEME"); name != "" {
		return strings.Contains(strings.ToLower(name), "dark")
	}
	if s := gtk.SettingsGetDefault(); s != nil {
		return s.GetPropertyGtkApplicationPreferDarkTheme()
	}
	// Detection failed; dark is the safer default for a browser chrome.
	return true
}
