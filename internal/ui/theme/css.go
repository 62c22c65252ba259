package theme

import "strings"

// GenerateCSS creates GTK4 CSS for the browser chrome using the provided
// palette.
func GenerateCSS(p Palette) string {
	var sb strings.Builder

	// CSS custom properties (variables) - GTK4 uses :root selector
	sb.WriteString("/* Theme variables */\n")
	sb.WriteString(":root {\n")
	sb.WriteString(p.ToCSSVars())
	sb.WriteString("}\n\n")

	sb.WriteString(generateToolbarCSS())
	sb.WriteString("\n")
	sb.WriteString(generateContentCSS())

	return sb.String()
}

// generateToolbarCSS creates the chrome bar styles: nav buttons and the
// address bar. Uses em units for scalable UI.
func generateToolbarCSS() string {
	return `/* ===== Toolbar Styling ===== */

.toolbar {
	background-color: var(--surface);
	border-bottom: 0.0625em solid var(--border);
	padding: 0.375em 0.5em;
}

/* Back / forward buttons */
button.nav-button {
	background-color: transparent;
	background-image: none;
	border: none;
	border-radius: 0.25em;
	padding: 0.25em 0.5em;
	color: var(--text);
	transition: background-color 150ms ease-in-out;
}

button.nav-button:hover {
	background-color: alpha(var(--accent), 0.15);
}

button.nav-button:disabled {
	color: var(--muted);
	background-color: transparent;
}

/* Address bar container */
.address-bar {
	margin: 0 0.5em;
}

/* Address bar entry field */
.address-bar-entry {
	background-color: var(--bg);
	color: var(--text);
	border: 0.0625em solid var(--border);
	border-radius: 0.25em;
	padding: 0.375em 0.625em;
	font-size: 0.9375em;
	caret-color: var(--accent);
}

.address-bar-entry:focus {
	border-color: var(--accent);
	background-color: shade(var(--bg), 1.05);
}

.address-bar-entry selection {
	background-color: alpha(var(--accent), 0.35);
	color: var(--text);
}
`
}

// generateContentCSS creates the content area styles, including the empty
// state shown before the first tab exists.
func generateContentCSS() string {
	return `/* ===== Content Area Styling ===== */

.tab-container {
	background-color: var(--bg);
}

/* Empty state before the first navigation */
.tab-container.content-empty {
	background-color: var(--surface-variant);
}

.empty-placeholder {
	color: var(--muted);
	font-size: 1.125em;
}
`
}
