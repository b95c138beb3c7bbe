package focus

import (
	"context"
	"fmt"

	"github.com/yourusername/winswitch/internal/layout"
	"github.com/yourusername/winswitch/internal/logging"
	"github.com/yourusername/winswitch/internal/types"
)

// WindowSource supplies the window manager state and raises windows
type WindowSource interface {
	WorkspaceConfig(ctx context.Context) (types.DesktopGeometry, types.Workspace, error)
	Windows(ctx context.Context) ([]types.Window, error)
	ActiveWindow(ctx context.Context) (types.WindowID, error)
	Raise(ctx context.Context, id types.WindowID) error
}

// GridFunc builds the workspace grid for the reported desktop geometry
type GridFunc func(dg types.DesktopGeometry) (*layout.WorkspaceGrid, error)

// Options configures Setup
type Options struct {
	Layout *layout.MonitorLayout
	Grid   GridFunc

	// ExcludeUndecorated drops windows whose y offset is exactly 0.
	// Undecorated surfaces such as desktop widgets sit there.
	ExcludeUndecorated bool
}

// Navigator answers focus requests for one snapshot of the current workspace
type Navigator struct {
	src    WindowSource
	layout *layout.MonitorLayout
	grid   *layout.WorkspaceGrid

	workspace      types.Workspace
	workspaceIndex int

	windows []types.Window
	index   *Index

	focused        types.WindowID
	currentMonitor int // -1 when the focused window is untracked
}

// Setup reads the workspace, windows and focus from src and builds the
// monitor index. Layout or grid errors are configuration errors.
func Setup(ctx context.Context, src WindowSource, opts Options) (*Navigator, error) {
	if opts.Layout == nil || opts.Layout.Count() == 0 {
		return nil, fmt.Errorf("%w: no monitors", layout.ErrInvalidLayout)
	}
	if opts.Grid == nil {
		return nil, fmt.Errorf("no workspace grid configured")
	}

	dg, ws, err := src.WorkspaceConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read workspace: %w", err)
	}

	grid, err := opts.Grid(dg)
	if err != nil {
		return nil, fmt.Errorf("workspace grid: %w", err)
	}

	wsIndex, err := grid.IndexOf(ws)
	if err != nil {
		return nil, fmt.Errorf("current workspace: %w", err)
	}

	logging.Debug().
		Str("desktop", dg.String()).
		Str("viewport", ws.String()).
		Int("workspace", wsIndex).
		Str("grid", grid.String()).
		Msg("current workspace")

	all, err := src.Windows(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list windows: %w", err)
	}

	windows := filterWorkspace(all, grid.Width, grid.Height, opts.ExcludeUndecorated)
	index := BuildIndex(windows, opts.Layout)

	focused, err := src.ActiveWindow(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read active window: %w", err)
	}

	n := &Navigator{
		src:            src,
		layout:         opts.Layout,
		grid:           grid,
		workspace:      ws,
		workspaceIndex: wsIndex,
		windows:        windows,
		index:          index,
		focused:        focused,
		currentMonitor: -1,
	}
	if m, ok := index.MonitorOf(focused); ok {
		n.currentMonitor = m
	}

	logging.Debug().
		Int("listed", len(all)).
		Int("tracked", index.Len()).
		Str("focused", focused.String()).
		Int("monitor", n.currentMonitor).
		Msg("navigator ready")

	return n, nil
}

// filterWorkspace keeps the windows whose origin lies on the current
// workspace, which wmctrl reports relative to the viewport.
func filterWorkspace(windows []types.Window, width, height int, excludeUndecorated bool) []types.Window {
	var kept []types.Window
	for _, w := range windows {
		if w.X < 0 || w.X >= width || w.Y < 0 || w.Y >= height {
			continue
		}
		if excludeUndecorated && w.Y == 0 {
			continue
		}
		kept = append(kept, w)
	}
	return kept
}

// Windows returns the windows on the current workspace
func (n *Navigator) Windows() []types.Window {
	return n.windows
}

func (n *Navigator) Index() *Index {
	return n.index
}

func (n *Navigator) Layout() *layout.MonitorLayout {
	return n.layout
}

func (n *Navigator) FocusedID() types.WindowID {
	return n.focused
}

func (n *Navigator) Workspace() types.Workspace {
	return n.workspace
}

func (n *Navigator) WorkspaceIndex() int {
	return n.workspaceIndex
}

// CurrentMonitor returns the monitor holding the focused window
func (n *Navigator) CurrentMonitor() (int, error) {
	if n.currentMonitor < 0 {
		return -1, fmt.Errorf("%w: %s", ErrFocusedWindowUntracked, n.focused)
	}
	return n.currentMonitor, nil
}

// MonitorTarget returns the leftmost window on monitor i, or 0 when the
// monitor has no windows.
func (n *Navigator) MonitorTarget(i int) (types.WindowID, error) {
	if i < 0 || i >= n.layout.Count() {
		return 0, fmt.Errorf("%w: %d (have %d monitors)", ErrMonitorOutOfRange, i, n.layout.Count())
	}

	seq := n.index.WindowsOn(i)
	if len(seq) == 0 {
		return 0, nil
	}
	return seq[0], nil
}

// FocusByMonitorIndex raises the leftmost window on monitor i. An empty
// monitor is a no-op and returns 0. A failed raise returns the target with
// an error wrapping ErrRaiseFailed.
func (n *Navigator) FocusByMonitorIndex(ctx context.Context, i int) (types.WindowID, error) {
	target, err := n.MonitorTarget(i)
	if err != nil {
		return 0, err
	}
	if target == 0 {
		logging.Debug().Int("monitor", i).Msg("monitor has no windows")
		return 0, nil
	}

	if err := n.src.Raise(ctx, target); err != nil {
		return target, fmt.Errorf("%w: %w", ErrRaiseFailed, err)
	}
	logging.Info().Int("monitor", i).Str("window", target.String()).Msg("focused monitor")
	return target, nil
}

// Target returns the window a move in dir would focus.
//
// Within a monitor the neighbour in left-to-right order is chosen. At the
// edge of a monitor the search steps to the adjacent monitor, wrapping
// around and skipping monitors without windows, and enters it from the
// side facing the motion.
func (n *Navigator) Target(dir types.Direction) (types.WindowID, error) {
	if !dir.Horizontal() {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedDirection, dir)
	}
	if n.index.Len() == 0 {
		return 0, ErrNoWindowToFocus
	}

	m, err := n.CurrentMonitor()
	if err != nil {
		return 0, err
	}

	step := 1
	if dir == types.DirLeft {
		step = -1
	}

	seq := n.index.WindowsOn(m)
	if pos := position(seq, n.focused) + step; pos >= 0 && pos < len(seq) {
		return seq[pos], nil
	}

	count := n.layout.Count()
	for k := 1; k <= count; k++ {
		next := ((m+step*k)%count + count) % count
		seq := n.index.WindowsOn(next)
		if len(seq) == 0 {
			continue
		}

		target := seq[0]
		if dir == types.DirLeft {
			target = seq[len(seq)-1]
		}
		if target == n.focused {
			return 0, ErrNoWindowToFocus
		}
		return target, nil
	}

	return 0, ErrNoWindowToFocus
}

// FocusByDirection raises the window found by Target
func (n *Navigator) FocusByDirection(ctx context.Context, dir types.Direction) (types.WindowID, error) {
	target, err := n.Target(dir)
	if err != nil {
		return 0, err
	}

	if err := n.src.Raise(ctx, target); err != nil {
		return target, fmt.Errorf("%w: %w", ErrRaiseFailed, err)
	}
	logging.Info().Str("direction", dir.String()).Str("window", target.String()).Msg("focused window")
	return target, nil
}
