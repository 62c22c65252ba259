package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/bnema/dimmer/internal/cli/styles"
)

var zoomCmd = &cobra.Command{
	Use:   "zoom",
	Short: "Inspect saved zoom levels",
	Long:  `Inspect the per-domain zoom levels the browser has persisted.`,
}

var zoomListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved zoom levels",
	Long:  `Display all persisted per-domain zoom levels as a table, sorted by domain.`,
	RunE:  runZoomList,
}

func init() {
	rootCmd.AddCommand(zoomCmd)
	zoomCmd.AddCommand(zoomListCmd)
}

// runZoomList prints the saved zoom levels table.
func runZoomList(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	levels, err := app.ZoomUC.GetAll(app.Ctx())
	if err != nil {
		return fmt.Errorf("load zoom levels: %w", err)
	}

	t := app.Theme
	if len(levels) == 0 {
		fmt.Println(t.Subtle.Render("No saved zoom levels. Zoom a page with Ctrl+plus/minus to create one."))
		return nil
	}

	rows := make([]table.Row, len(levels))
	for i, level := range levels {
		rows[i] = styles.ZoomRow{
			Domain:  level.Domain,
			Factor:  level.ZoomFactor,
			Updated: level.UpdatedAt,
		}.ToRow()
	}

	const tableWidth = 62
	model := styles.NewStyledTable(t, styles.ZoomTableColumns(), rows, tableWidth, len(rows)+1)
	fmt.Println(model.View())
	fmt.Println(t.Subtle.Render(fmt.Sprintf("%d domains, default zoom %s", len(levels), styles.FormatZoomFactor(app.ZoomUC.DefaultZoom()))))

	return nil
}
