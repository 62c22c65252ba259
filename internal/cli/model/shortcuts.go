// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dimmer/internal/cli/styles"
	"github.com/bnema/dimmer/internal/config"
	"github.com/bnema/dimmer/internal/logging"
)

// ShortcutsModel is the Bubble Tea model for the search shortcut browser.
type ShortcutsModel struct {
	// UI components
	list   list.Model
	filter textinput.Model
	help   help.Model
	keys   styles.ShortcutsKeyMap

	// State
	items      []styles.ShortcutItem // all configured shortcuts, sorted by prefix
	filterMode bool
	showHelp   bool
	width      int
	height     int
	selected   string

	// Dependencies
	ctx   context.Context
	theme *styles.Theme
}

// NewShortcutsModel creates a new shortcut browser model.
func NewShortcutsModel(ctx context.Context, theme *styles.Theme, cfg *config.Config) ShortcutsModel {
	log := logging.FromContext(ctx)
	log.Debug().Int("shortcut_count", len(cfg.SearchShortcuts)).Msg("creating shortcuts model")

	items := make([]styles.ShortcutItem, 0, len(cfg.SearchShortcuts))
	for prefix, sc := range cfg.SearchShortcuts {
		items = append(items, styles.ShortcutItem{
			Prefix:      prefix,
			URL:         sc.URL,
			Description: sc.Description,
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Prefix < items[j].Prefix })

	m := ShortcutsModel{
		filter: styles.NewFilterInput(theme),
		help:   styles.NewStyledHelp(theme),
		keys:   styles.DefaultShortcutsKeyMap(),
		items:  items,
		ctx:    ctx,
		theme:  theme,
		width:  80,
		height: 24,
	}
	m.updateList()
	return m
}

// Init implements tea.Model.
func (m ShortcutsModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ShortcutsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateList()
		return m, nil
	case tea.KeyMsg:
		if m.filterMode {
			return m.handleFilterKey(msg)
		}
		return m.handleNormalKey(msg)
	}

	return m, nil
}

// handleFilterKey updates the filter input; the list narrows on every keystroke.
func (m ShortcutsModel) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filterMode = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.updateList()
		return m, nil
	case "enter":
		m.filterMode = false
		m.filter.Blur()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	default:
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.updateList()
		return m, cmd
	}
}

func (m ShortcutsModel) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Filter):
		m.filterMode = true
		m.filter.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Clear):
		m.filter.SetValue("")
		m.updateList()
		return m, nil
	case key.Matches(msg, m.keys.Print):
		if item := m.list.SelectedItem(); item != nil {
			if si, ok := item.(styles.ShortcutItem); ok {
				m.selected = si.URL
			}
		}
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// updateList rebuilds the list from the items matching the current filter.
func (m *ShortcutsModel) updateList() {
	visible := FilterShortcuts(m.items, m.filter.Value())

	listHeight := m.height - 7 // Account for header, filter bar, help
	if listHeight < 5 {
		listHeight = 5
	}

	m.list = styles.NewShortcutList(m.theme, visible, m.width, listHeight)
}

// View implements tea.Model.
func (m ShortcutsModel) View() string {
	t := m.theme

	header := lipgloss.JoinHorizontal(
		lipgloss.Left,
		t.Title.Render("Search Shortcuts"),
		" ",
		t.MutedBadge(fmt.Sprintf("%d configured", len(m.items))),
	)

	var filterBar string
	switch {
	case m.filterMode:
		filterBar = t.InputFocused.Render(m.filter.View())
	case m.filter.Value() != "":
		filterBar = t.Subtle.Render("Filter: ") + t.Badge.Render(m.filter.Value()) + t.Subtle.Render(" (esc to clear)")
	default:
		filterBar = t.Subtle.Render("Press / to filter, enter to print the selected template")
	}

	var helpView string
	if m.showHelp {
		helpView = m.help.View(m.keys)
	} else {
		helpView = t.Subtle.Render("? for help • q to quit")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"",
		filterBar,
		"",
		m.list.View(),
		"",
		helpView,
	)
}

// Selected returns the URL template chosen with enter, if any.
func (m ShortcutsModel) Selected() string {
	return m.selected
}

// FilterShortcuts returns the items whose filter value fuzzy-matches the query.
// An empty query matches everything.
func FilterShortcuts(items []styles.ShortcutItem, query string) []styles.ShortcutItem {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return items
	}

	matched := make([]styles.ShortcutItem, 0, len(items))
	for _, item := range items {
		if fuzzyMatch(strings.ToLower(item.FilterValue()), query) {
			matched = append(matched, item)
		}
	}
	return matched
}

// fuzzyMatch reports whether all query runes appear in target in order.
func fuzzyMatch(target, query string) bool {
	runes := []rune(query)
	i := 0
	for _, r := range target {
		if i < len(runes) && r == runes[i] {
			i++
		}
	}
	return i == len(runes)
}

// Ensure interface compliance at compile time.
var _ tea.Model = (*ShortcutsModel)(nil)
