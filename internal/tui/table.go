package tui

import (
	"strconv"

	table "github.com/charmbracelet/bubbles/table"

	"shapegen/internal/report"
)

const tableWidth = 46

func offsetColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 5},
		{Title: "dx", Width: 4},
		{Title: "dy", Width: 4},
		{Title: "rx", Width: 11},
		{Title: "ry", Width: 11},
	}
}

// refreshTable rebuilds the rows from the current frame's offsets.
func (m *Model) refreshTable() {
	rows := make([]table.Row, 0, len(m.frame.Offsets))
	for i, o := range m.frame.Offsets {
		rows = append(rows, table.Row{
			strconv.Itoa(i),
			strconv.Itoa(o.Abs.X),
			strconv.Itoa(o.Abs.Y),
			report.FormatFloat(o.Rel[0]),
			report.FormatFloat(o.Rel[1]),
		})
	}
	m.tbl.SetRows(rows)
	m.tbl.GotoTop()
}
