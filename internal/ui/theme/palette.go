// Package theme provides GTK CSS styling for the browser chrome.
package theme

import "strings"

// Palette holds the semantic color tokens the chrome CSS is built from.
type Palette struct {
	Background     string
	Surface        string // toolbar
	SurfaceVariant string
	Text           string
	Muted          string // placeholder and disabled text
	Accent         string // focus ring, selection
	Border         string
}

// DefaultDarkPalette is the dark chrome scheme.
func DefaultDarkPalette() Palette {
	return Palette{
		Background:     "#101114",
		Surface:        "#1c1d21",
		SurfaceVariant: "#2a2b30",
		Text:           "#e8e8ea",
		Muted:          "#8b8d93",
		Accent:         "#6aa1f4",
		Border:         "#34353b",
	}
}

// DefaultLightPalette is the light chrome scheme.
func DefaultLightPalette() Palette {
	return Palette{
		Background:     "#f7f7f8",
		Surface:        "#ffffff",
		SurfaceVariant: "#ededef",
		Text:           "#202124",
		Muted:          "#6e7076",
		Accent:         "#2f6fd8",
		Border:         "#d9dadd",
	}
}

// ToCSSVars renders the palette as CSS custom property declarations.
func (p Palette) ToCSSVars() string {
	vars := [...][2]string{
		{"--bg", p.Background},
		{"--surface", p.Surface},
		{"--surface-variant", p.SurfaceVariant},
		{"--text", p.Text},
		{"--muted", p.Muted},
		{"--accent", p.Accent},
		{"--border", p.Border},
	}
	var sb strings.Builder
	for _, v := range vars {
		sb.WriteString("  " + v[0] + ": " + v[1] + ";\n")
	}
	return sb.String()
}
