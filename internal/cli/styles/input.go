package styles

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// NewFilterInput returns a text input for narrowing lists.
func NewFilterInput(theme *Theme) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Filter..."
	ti.Prompt = "/ "
	ti.CharLimit = 128
	ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.Cursor.Style = ti.PromptStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Text)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	return ti
}
