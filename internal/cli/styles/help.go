package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// ShortcutsKeyMap defines keybindings for the shortcuts browser.
type ShortcutsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Filter key.Binding
	Clear  key.Binding
	Print  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k ShortcutsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Filter, k.Print, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k ShortcutsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Filter, k.Clear},
		{k.Print},
		{k.Help, k.Quit},
	}
}

func bind(hint, desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(hint, desc))
}

// DefaultShortcutsKeyMap returns the default shortcuts keybindings.
func DefaultShortcutsKeyMap() ShortcutsKeyMap {
	return ShortcutsKeyMap{
		Up:     bind("↑/k", "up", "up", "k"),
		Down:   bind("↓/j", "down", "down", "j"),
		Filter: bind("/", "filter", "/"),
		Clear:  bind("esc", "clear filter", "esc"),
		Print:  bind("enter", "print template", "enter"),
		Help:   bind("?", "help", "?"),
		Quit:   bind("q", "quit", "q", "ctrl+c"),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	keys := lipgloss.NewStyle().Foreground(theme.Accent)
	sep := lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.ShortKey = keys
	h.Styles.FullKey = keys
	h.Styles.ShortSeparator = sep
	h.Styles.FullSeparator = sep
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	return h
}
