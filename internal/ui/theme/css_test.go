package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCSS_ContainsPaletteVars(t *testing.T) {
	p := DefaultDarkPalette()
	css := GenerateCSS(p)

	assert.Contains(t, css, ":root {")
	assert.Contains(t, css, "--bg: "+p.Background+";")
	assert.Contains(t, css, "--surface: "+p.Surface+";")
	assert.Contains(t, css, "--text: "+p.Text+";")
	assert.Contains(t, css, "--accent: "+p.Accent+";")
}

func TestGenerateCSS_ContainsChromeClasses(t *testing.T) {
	css := GenerateCSS(DefaultDarkPalette())

	// Every class the chrome widgets attach must have a rule.
	assert.Contains(t, css, ".toolbar")
	assert.Contains(t, css, "button.nav-button")
	assert.Contains(t, css, ".address-bar-entry")
	assert.Contains(t, css, ".tab-container.content-empty")
	assert.Contains(t, css, ".empty-placeholder")
}

func TestDefaultPalettes_Differ(t *testing.T) {
	dark := DefaultDarkPalette()
	light := DefaultLightPalette()

	assert.NotEqual(t, dark.Background, light.Background)
	assert.NotEqual(t, dark.Text, light.Text)
}

func TestToCSSVars_OneDeclarationPerToken(t *testing.T) {
	vars := DefaultLightPalette().ToCSSVars()

	for _, name := range []string{"--bg", "--surface", "--surface-variant", "--text", "--muted", "--accent", "--border"} {
		assert.Contains(t, vars, name+": ")
	}
}
