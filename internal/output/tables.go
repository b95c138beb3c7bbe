package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/yourusername/winswitch/internal/types"
)

// WindowRow is one tracked window and the monitor it was classified onto
type WindowRow struct {
	Monitor int          `json:"monitor"`
	Window  types.Window `json:"window"`
	Focused bool         `json:"focused"`
}

// MonitorRow is one configured monitor with its window count
type MonitorRow struct {
	Index   int           `json:"index"`
	Monitor types.Monitor `json:"monitor"`
	Windows int           `json:"windows"`
	Current bool          `json:"current"`
}

// PrintWindowsTable prints windows in a table format, in the given order
func PrintWindowsTable(w io.Writer, rows []WindowRow) {
	table := tablewriter.NewWriter(w)
	table.Header("Monitor", "ID", "Class", "Position", "Size", "Title", "Focused")

	for _, row := range rows {
		win := row.Window
		focused := ""
		if row.Focused {
			focused = "*"
		}

		table.Append(
			strconv.Itoa(row.Monitor),
			win.ID.String(),
			truncate(win.Class, 30),
			fmt.Sprintf("%d,%d", win.X, win.Y),
			fmt.Sprintf("%dx%d", win.Width, win.Height),
			truncate(win.Title, 40),
			focused,
		)
	}

	table.Render()
}

// PrintMonitorsTable prints the monitor layout in a table format
func PrintMonitorsTable(w io.Writer, rows []MonitorRow) {
	table := tablewriter.NewWriter(w)
	table.Header("Index", "Name", "Position", "Size", "Windows", "Current")

	for _, row := range rows {
		b := row.Monitor.Bounds
		current := ""
		if row.Current {
			current = "*"
		}

		table.Append(
			strconv.Itoa(row.Index),
			row.Monitor.Name,
			fmt.Sprintf("%d,%d", b.X, b.Y),
			fmt.Sprintf("%dx%d", b.Width, b.Height),
			strconv.Itoa(row.Windows),
			current,
		)
	}

	table.Render()
}

// truncate shortens s to at most maxLen runes, ending in "..." when cut
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
