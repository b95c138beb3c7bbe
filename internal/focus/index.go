package focus

import (
	"sort"

	"github.com/yourusername/winswitch/internal/layout"
	"github.com/yourusername/winswitch/internal/logging"
	"github.com/yourusername/winswitch/internal/types"
)

// Index maps monitors to their windows and windows to their monitor.
// It is built once per invocation and only queried afterwards.
type Index struct {
	byMonitor map[int][]types.WindowID
	monitorOf map[types.WindowID]int
	windows   map[types.WindowID]types.Window
}

// BuildIndex classifies windows onto the monitors of l. Each monitor's
// windows are ordered left to right; ties are broken by Y, then id.
func BuildIndex(windows []types.Window, l *layout.MonitorLayout) *Index {
	ix := &Index{
		byMonitor: make(map[int][]types.WindowID),
		monitorOf: make(map[types.WindowID]int),
		windows:   make(map[types.WindowID]types.Window),
	}

	sorted := make([]types.Window, len(windows))
	copy(sorted, windows)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.ID < b.ID
	})

	for _, w := range sorted {
		if _, dup := ix.monitorOf[w.ID]; dup {
			continue
		}

		m := l.MonitorOf(w.X, w.Y)
		if m < 0 {
			logging.Debug().Str("window", w.ID.String()).Msg("no monitor for window")
			continue
		}

		ix.byMonitor[m] = append(ix.byMonitor[m], w.ID)
		ix.monitorOf[w.ID] = m
		ix.windows[w.ID] = w
	}

	return ix
}

// WindowsOn returns the ordered windows of monitor m (nil when it has none)
func (ix *Index) WindowsOn(m int) []types.WindowID {
	return ix.byMonitor[m]
}

// MonitorOf returns the monitor holding window id
func (ix *Index) MonitorOf(id types.WindowID) (int, bool) {
	m, ok := ix.monitorOf[id]
	return m, ok
}

// Window returns the tracked window with the given id
func (ix *Index) Window(id types.WindowID) (types.Window, bool) {
	w, ok := ix.windows[id]
	return w, ok
}

// Len returns the number of tracked windows
func (ix *Index) Len() int {
	return len(ix.monitorOf)
}

// Monitors returns the monitors that hold at least one window, ascending
func (ix *Index) Monitors() []int {
	monitors := make([]int, 0, len(ix.byMonitor))
	for m := range ix.byMonitor {
		monitors = append(monitors, m)
	}
	sort.Ints(monitors)
	return monitors
}

// position returns the index of id within seq, or -1
func position(seq []types.WindowID, id types.WindowID) int {
	for i, v := range seq {
		if v == id {
			return i
		}
	}
	return -1
}
