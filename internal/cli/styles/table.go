package styles

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	s := table.DefaultStyles()
	s.Header = s.Header.
		Foreground(theme.Accent).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(theme.Border)
	s.Cell = s.Cell.Foreground(theme.Text)
	s.Selected = s.Selected.
		Foreground(theme.Text).
		Background(theme.SurfaceVariant).
		Bold(true)

	return table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithWidth(width),
		table.WithHeight(height),
		table.WithFocused(true),
		table.WithStyles(s),
	)
}

// ZoomTableColumns returns columns for the saved zoom levels table.
func ZoomTableColumns() []table.Column {
	return []table.Column{
		{Title: "Domain", Width: 36},
		{Title: "Zoom", Width: 8},
		{Title: "Updated", Width: 14},
	}
}

// ZoomRow is one saved per-domain zoom level.
type ZoomRow struct {
	Domain  string
	Factor  float64
	Updated time.Time
}

// ToRow converts to table.Row.
func (z ZoomRow) ToRow() table.Row {
	return table.Row{z.Domain, FormatZoomFactor(z.Factor), RelativeTime(z.Updated)}
}

// FormatZoomFactor renders a zoom factor as a percentage string.
func FormatZoomFactor(factor float64) string {
	return fmt.Sprintf("%.0f%%", factor*100)
}
