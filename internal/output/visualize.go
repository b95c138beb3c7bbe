package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/yourusername/winswitch/internal/types"
)

// VisualizationOptions controls the appearance of the visualization
type VisualizationOptions struct {
	UseUnicode bool
	ShowIDs    bool
	MaxWidth   int
	MaxHeight  int
}

// DefaultVisualizationOptions returns sensible defaults
func DefaultVisualizationOptions() VisualizationOptions {
	width, height := getTerminalSize()
	return VisualizationOptions{
		UseUnicode: supportsUnicode(),
		ShowIDs:    false,
		MaxWidth:   width,
		MaxHeight:  height - 4,
	}
}

// Workspace is what VisualizeWorkspace draws: the monitor layout of the
// current workspace and the windows classified onto it.
type Workspace struct {
	Index    int             `json:"index"`
	Bounds   types.Rect      `json:"bounds"`
	Monitors []types.Monitor `json:"monitors"`
	Windows  []WindowRow     `json:"windows"`
}

// VisualizeWorkspace renders the monitors as labelled boxes with their
// windows drawn inside. The focused window has the focus border and its
// label is marked with '*'.
func VisualizeWorkspace(ws Workspace, opts VisualizationOptions) string {
	if len(ws.Monitors) == 0 {
		return "No monitors configured\n"
	}

	sc := NewScalingContext(ws.Bounds, opts.MaxWidth, opts.MaxHeight)
	canvas := NewCanvas(sc.TermWidth, sc.TermHeight, opts.UseUnicode)

	canvas.DrawBox(types.Rect{Width: sc.TermWidth, Height: sc.TermHeight})

	counts := make([]int, len(ws.Monitors))
	for _, row := range ws.Windows {
		if row.Monitor >= 0 && row.Monitor < len(counts) {
			counts[row.Monitor]++
		}
	}

	for i, m := range ws.Monitors {
		box := sc.ScaleRect(m.Bounds)
		canvas.DrawLabeledBox(box, fmt.Sprintf("%d %s", i, m.Name))
		if counts[i] == 0 && box.Height > 2 {
			canvas.DrawTextCentered(box.X+1, box.Y+box.Height/2, box.Width-2, "(empty)")
		}
	}

	// Windows are drawn in list order so later windows overlap earlier ones
	for _, row := range ws.Windows {
		canvas.DrawWindow(sc.ScaleRect(row.Window.Bounds()), createWindowLabel(row, opts.ShowIDs), row.Focused)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Workspace %d [%dx%d]\n", ws.Index, ws.Bounds.Width, ws.Bounds.Height)
	sb.WriteString(canvas.String())
	fmt.Fprintf(&sb, "\nTotal: %d windows on %d monitors\n", len(ws.Windows), len(ws.Monitors))
	return sb.String()
}

// createWindowLabel creates a label for a window
func createWindowLabel(row WindowRow, showID bool) string {
	name := row.Window.Class
	if i := strings.LastIndexByte(name, '.'); i >= 0 && i < len(name)-1 {
		name = name[i+1:]
	}
	if name == "" {
		name = "Unknown"
	}

	if row.Focused {
		name = "*" + name
	}
	if showID {
		return fmt.Sprintf("[%s] %s", row.Window.ID, name)
	}
	return name
}

// getTerminalSize returns the current terminal dimensions
func getTerminalSize() (width, height int) {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		// Default to 80x24 if we can't detect
		return 80, 24
	}
	return int(ws.Col), int(ws.Row)
}

// supportsUnicode reports whether stdout is a terminal with a UTF-8 locale.
// Piped output gets ASCII.
func supportsUnicode() bool {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}
	return utf8Locale(os.Getenv("LC_ALL"), os.Getenv("LANG"))
}

func utf8Locale(lcAll, lang string) bool {
	locale := lcAll
	if locale == "" {
		locale = lang
	}
	locale = strings.ToUpper(locale)
	return strings.Contains(locale, "UTF-8") || strings.Contains(locale, "UTF8")
}

// PrintVisualization prints a colored visualization to w
func PrintVisualization(w io.Writer, ws Workspace, opts VisualizationOptions) {
	result := VisualizeWorkspace(ws, opts)

	if color.NoColor {
		fmt.Fprint(w, result)
		return
	}
	color.New(color.FgCyan).Fprint(w, result)
}
