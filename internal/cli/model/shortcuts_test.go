package model

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dimmer/internal/cli/styles"
	"github.com/bnema/dimmer/internal/config"
)

func TestNewShortcutsModel_SortsItemsByPrefix(t *testing.T) {
	m := newTestShortcutsModel(t)

	require.Len(t, m.items, 6)
	prefixes := make([]string, 0, len(m.items))
	for _, item := range m.items {
		prefixes = append(prefixes, item.Prefix)
	}
	require.Equal(t, []string{"ddg", "g", "gh", "go", "mdn", "w"}, prefixes)
}

func TestShortcutsModel_EnterSelectsTemplate(t *testing.T) {
	m := newTestShortcutsModel(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd, "enter should quit the program")

	sm, ok := updated.(ShortcutsModel)
	require.True(t, ok)
	require.Equal(t, "https://duckduckgo.com/?q={query}", sm.Selected())
}

func TestShortcutsModel_FilterNarrowsList(t *testing.T) {
	m := newTestShortcutsModel(t)

	// "/" enters filter mode, then each keystroke narrows the list.
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	sm := updated.(ShortcutsModel)
	require.True(t, sm.filterMode)

	for _, r := range "wiki" {
		updated, _ = sm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		sm = updated.(ShortcutsModel)
	}
	require.Len(t, sm.list.Items(), 1)

	// esc clears the filter and restores the full list.
	updated, _ = sm.Update(tea.KeyMsg{Type: tea.KeyEsc})
	sm = updated.(ShortcutsModel)
	require.False(t, sm.filterMode)
	require.Len(t, sm.list.Items(), 6)
}

func TestShortcutsModel_ViewShowsHeaderAndHint(t *testing.T) {
	m := newTestShortcutsModel(t)

	view := m.View()
	require.Contains(t, view, "Search Shortcuts")
	require.Contains(t, view, "6 configured")
	require.Contains(t, view, "Press / to filter")
}

func TestFilterShortcuts(t *testing.T) {
	items := []styles.ShortcutItem{
		{Prefix: "gh", URL: "https://github.com/search?q={query}", Description: "GitHub search"},
		{Prefix: "w", URL: "https://en.wikipedia.org/wiki/Special:Search?search={query}", Description: "Wikipedia search"},
	}

	require.Len(t, FilterShortcuts(items, ""), 2)
	require.Len(t, FilterShortcuts(items, "  "), 2)

	matched := FilterShortcuts(items, "hub")
	require.Len(t, matched, 1)
	require.Equal(t, "gh", matched[0].Prefix)

	require.Empty(t, FilterShortcuts(items, "zzz"))
}

func TestFuzzyMatch(t *testing.T) {
	require.True(t, fuzzyMatch("github search", "ghs"))
	require.True(t, fuzzyMatch("wikipedia", "wiki"))
	require.False(t, fuzzyMatch("github", "hg"), "runes must appear in order")
	require.True(t, fuzzyMatch("anything", ""))
}

func newTestShortcutsModel(t *testing.T) ShortcutsModel {
	t.Helper()
	theme := styles.NewTheme()
	return NewShortcutsModel(context.Background(), theme, config.DefaultConfig())
}
