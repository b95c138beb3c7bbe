package layout

import (
	"errors"
	"fmt"
	"sort"

	"github.com/yourusername/winswitch/internal/types"
)

// ErrInvalidLayout means the configured monitors do not tile the workspace.
var ErrInvalidLayout = errors.New("invalid monitor layout")

// MonitorLayout is the ordered set of physical monitors inside one workspace.
// Monitor indices follow the configured order: left to right, then top to
// bottom for monitors stacked in the same column.
type MonitorLayout struct {
	monitors []types.Monitor
}

// NewMonitorLayout creates a layout from monitors in placement order
func NewMonitorLayout(monitors []types.Monitor) *MonitorLayout {
	m := make([]types.Monitor, len(monitors))
	copy(m, monitors)
	return &MonitorLayout{monitors: m}
}

// Count returns the number of configured monitors
func (l *MonitorLayout) Count() int {
	return len(l.monitors)
}

// Monitors returns a copy of the configured monitors
func (l *MonitorLayout) Monitors() []types.Monitor {
	m := make([]types.Monitor, len(l.monitors))
	copy(m, l.monitors)
	return m
}

// Monitor returns the monitor at index i
func (l *MonitorLayout) Monitor(i int) (types.Monitor, bool) {
	if i < 0 || i >= len(l.monitors) {
		return types.Monitor{}, false
	}
	return l.monitors[i], true
}

// Bounds returns the bounding box of all monitors
func (l *MonitorLayout) Bounds() types.Rect {
	if len(l.monitors) == 0 {
		return types.Rect{}
	}

	first := l.monitors[0].Bounds
	minX, minY := first.X, first.Y
	maxX, maxY := first.Right(), first.Bottom()
	for _, m := range l.monitors[1:] {
		minX = min(minX, m.Bounds.X)
		minY = min(minY, m.Bounds.Y)
		maxX = max(maxX, m.Bounds.Right())
		maxY = max(maxY, m.Bounds.Bottom())
	}

	return types.Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// MonitorOf returns the index of the monitor a window at (x, y) sits on.
//
// The first monitor whose half-open rectangle contains the point wins. A
// validated layout tiles its workspace, so every point on the workspace is
// contained; points off the workspace are clamped to the nearest monitor.
// Returns -1 only for an empty layout.
func (l *MonitorLayout) MonitorOf(x, y int) int {
	p := types.Point{X: x, Y: y}
	for i, m := range l.monitors {
		if m.Bounds.Contains(p) {
			return i
		}
	}

	best := -1
	bestDist := 0
	for i, m := range l.monitors {
		dist := axisDistance(x, m.Bounds.X, m.Bounds.Right()) + axisDistance(y, m.Bounds.Y, m.Bounds.Bottom())
		if best == -1 || dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	return best
}

// axisDistance returns how far v lies outside the half-open span [lo, hi)
func axisDistance(v, lo, hi int) int {
	switch {
	case v < lo:
		return lo - v
	case v >= hi:
		return v - (hi - 1)
	default:
		return 0
	}
}

// Validate checks that the monitors tile a workspace of the given size
// exactly: placement order, every monitor inside the workspace, no overlaps
// and no uncovered pixel between or below monitors.
func (l *MonitorLayout) Validate(workspaceWidth, workspaceHeight int) error {
	if len(l.monitors) == 0 {
		return fmt.Errorf("%w: no monitors configured", ErrInvalidLayout)
	}

	for i, m := range l.monitors {
		if m.Bounds.Empty() {
			return fmt.Errorf("%w: monitor %d has size %dx%d", ErrInvalidLayout, i, m.Bounds.Width, m.Bounds.Height)
		}
		if m.Bounds.X < 0 || m.Bounds.Y < 0 {
			return fmt.Errorf("%w: monitor %d has negative origin %d,%d", ErrInvalidLayout, i, m.Bounds.X, m.Bounds.Y)
		}
		if i > 0 && !placedAfter(l.monitors[i-1].Bounds, m.Bounds) {
			return fmt.Errorf("%w: monitor %d is not listed left-to-right, top-to-bottom", ErrInvalidLayout, i)
		}
	}

	for i := range l.monitors {
		for j := i + 1; j < len(l.monitors); j++ {
			if l.monitors[i].Bounds.Overlap(l.monitors[j].Bounds) > 0 {
				return fmt.Errorf("%w: monitors %d and %d overlap", ErrInvalidLayout, i, j)
			}
		}
	}

	bounds := l.Bounds()
	if bounds.Right() > workspaceWidth || bounds.Bottom() > workspaceHeight {
		return fmt.Errorf("%w: monitors extend to %d,%d past the %dx%d workspace",
			ErrInvalidLayout, bounds.Right(), bounds.Bottom(), workspaceWidth, workspaceHeight)
	}
	if gap, ok := firstUncovered(l.monitors, workspaceWidth, workspaceHeight); ok {
		return fmt.Errorf("%w: no monitor covers %d,%d of the %dx%d workspace",
			ErrInvalidLayout, gap.X, gap.Y, workspaceWidth, workspaceHeight)
	}

	return nil
}

// placedAfter reports whether b may follow a in placement order: further
// right, or lower down within the same column.
func placedAfter(a, b types.Rect) bool {
	if b.X != a.X {
		return b.X > a.X
	}
	return b.Y > a.Y
}

// firstUncovered returns the leftmost, then topmost, point of the
// width x height workspace that no monitor contains. That point always has
// x = 0 or x on some monitor's right edge, and likewise y = 0 or y on some
// bottom edge, so only those coordinates are checked.
func firstUncovered(monitors []types.Monitor, width, height int) (types.Point, bool) {
	xs := []int{0}
	ys := []int{0}
	for _, m := range monitors {
		if r := m.Bounds.Right(); r < width {
			xs = append(xs, r)
		}
		if b := m.Bounds.Bottom(); b < height {
			ys = append(ys, b)
		}
	}
	sort.Ints(xs)
	sort.Ints(ys)

	for _, x := range xs {
		for _, y := range ys {
			p := types.Point{X: x, Y: y}
			covered := false
			for _, m := range monitors {
				if m.Bounds.Contains(p) {
					covered = true
					break
				}
			}
			if !covered {
				return p, true
			}
		}
	}
	return types.Point{}, false
}

// UniformRow builds count monitors of width x height placed side by side
func UniformRow(count, width, height int) []types.Monitor {
	monitors := make([]types.Monitor, count)
	for i := range monitors {
		monitors[i] = types.Monitor{
			Name:   fmt.Sprintf("monitor-%d", i),
			Bounds: types.Rect{X: i * width, Y: 0, Width: width, Height: height},
		}
	}
	return monitors
}
