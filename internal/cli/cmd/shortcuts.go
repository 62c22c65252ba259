package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/dimmer/internal/cli/model"
)

var shortcutsJSON bool

var shortcutsCmd = &cobra.Command{
	Use:   "shortcuts",
	Short: "Browse configured search shortcuts",
	Long: `Interactive browser for the configured search shortcuts.

Type / to filter, enter to print the selected URL template to stdout
(useful in scripts), q to quit.`,
	RunE: runShortcuts,
}

func init() {
	rootCmd.AddCommand(shortcutsCmd)

	shortcutsCmd.Flags().BoolVar(&shortcutsJSON, "json", false, "output as JSON")
}

func runShortcuts(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	// JSON output mode (non-interactive)
	if shortcutsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(app.Config.SearchShortcuts)
	}

	// Interactive TUI mode
	m := model.NewShortcutsModel(app.Ctx(), app.Theme, app.Config)

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	// Print the selection after the alt screen is torn down
	if sm, ok := finalModel.(model.ShortcutsModel); ok {
		if selected := sm.Selected(); selected != "" {
			fmt.Println(selected)
		}
	}

	return nil
}
