package styles

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const maxTemplateWidth = 60

// ShortcutItem represents a configured search shortcut for the list.
type ShortcutItem struct {
	Prefix      string
	URL         string
	Description string
}

// FilterValue implements list.Item.
func (i ShortcutItem) FilterValue() string {
	return i.Prefix + " " + i.Description + " " + i.URL
}

// TitleValue returns the primary display line.
func (i ShortcutItem) TitleValue() string {
	if i.Description != "" {
		return i.Description
	}
	return i.URL
}

// ShortcutDelegate renders shortcut items as two-line entries.
type ShortcutDelegate struct {
	Theme *Theme
}

// NewShortcutDelegate creates a themed shortcut list delegate.
func NewShortcutDelegate(theme *Theme) ShortcutDelegate {
	return ShortcutDelegate{Theme: theme}
}

// Height returns the height of each item.
func (d ShortcutDelegate) Height() int { return 2 }

// Spacing returns the spacing between items.
func (d ShortcutDelegate) Spacing() int { return 0 }

// Update handles item-level events.
func (d ShortcutDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

// Render writes one shortcut as a badge + description line followed by
// the (truncated) URL template.
func (d ShortcutDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	si, ok := item.(ShortcutItem)
	if !ok {
		return
	}
	t := d.Theme

	tmpl := si.URL
	if len(tmpl) > maxTemplateWidth {
		tmpl = tmpl[:maxTemplateWidth-3] + "..."
	}

	cursor := "  "
	title := t.ListItemTitle
	desc := t.ListItemDesc
	if index == m.Index() {
		cursor = "▸ "
		title = title.Foreground(t.Accent).Bold(true)
		desc = desc.Foreground(t.Text)
	}

	head := lipgloss.JoinHorizontal(
		lipgloss.Left,
		t.Highlight.Render(cursor),
		t.AccentBadge(si.Prefix+":"),
		" ",
		title.Render(si.TitleValue()),
	)
	_, _ = fmt.Fprintf(w, "%s\n   %s", head, desc.Render(tmpl))
}

// NewShortcutList creates a themed list for shortcut items.
func NewShortcutList(theme *Theme, items []ShortcutItem, width, height int) list.Model {
	rows := make([]list.Item, len(items))
	for i, item := range items {
		rows[i] = item
	}

	l := list.New(rows, NewShortcutDelegate(theme), width, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowFilter(false)
	l.SetShowHelp(false)
	l.SetShowPagination(true)
	l.Styles.PaginationStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	l.Styles.ActivePaginationDot = lipgloss.NewStyle().Foreground(theme.Accent)
	l.Styles.InactivePaginationDot = lipgloss.NewStyle().Foreground(theme.Muted)
	return l
}
