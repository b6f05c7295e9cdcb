package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingcabrams/typing/internal/model"
)

const maxHistoryRows = 5

func historyColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "Quote", Width: 30},
		{Title: "WPM", Width: 5},
		{Title: "Acc", Width: 8},
		{Title: "Time", Width: 7},
	}
}

func newHistoryTable() table.Model {
	t := table.New(
		table.WithColumns(historyColumns()),
		table.WithHeight(1),
		table.WithFocused(false),
	)
	t.SetStyles(historyStyles())
	return t
}

func historyStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	// Unfocused table: keep the selected row unstyled.
	styles.Selected = styles.Cell
	return styles
}

func historyRows(races []model.RaceSummary) []table.Row {
	start := 0
	if len(races) > maxHistoryRows {
		start = len(races) - maxHistoryRows
	}
	rows := make([]table.Row, 0, len(races)-start)
	for i := len(races) - 1; i >= start; i-- {
		r := races[i]
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			r.QuoteName,
			fmt.Sprintf("%.0f", r.WPM),
			fmt.Sprintf("%.2f%%", r.Accuracy),
			fmt.Sprintf("%.1fs", time.Duration(r.ElapsedNs).Seconds()),
		})
	}
	return rows
}

func applyHistory(t *table.Model, races []model.RaceSummary) {
	rows := historyRows(races)
	t.SetRows(rows)
	t.SetHeight(len(rows) + 1)
}

func historyWidth(width int) int {
	total := 0
	for _, c := range historyColumns() {
		total += c.Width + 1
	}
	if width > 0 && width < total {
		return width
	}
	return total
}
