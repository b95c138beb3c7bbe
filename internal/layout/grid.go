package layout

import (
	"errors"
	"fmt"

	"github.com/yourusername/winswitch/internal/types"
)

var (
	// ErrGridIndexOutOfRange means a workspace offset points outside the
	// declared workspace grid. The grid configuration is wrong.
	ErrGridIndexOutOfRange = errors.New("workspace offset outside workspace grid")

	// ErrUnalignedWorkspace means a workspace offset does not sit on a grid
	// cell boundary, so the configured workspace size does not match the
	// window manager's.
	ErrUnalignedWorkspace = errors.New("workspace offset not aligned to workspace grid")
)

// WorkspaceGrid describes how workspaces tile the virtual desktop.
// Workspaces are indexed left to right, top to bottom: in a 3x3 grid the
// top-left workspace is 0 and the bottom-right one is 8.
type WorkspaceGrid struct {
	Width           int // pixel width of one workspace
	Height          int // pixel height of one workspace
	HorizontalCount int
	VerticalCount   int

	indices [][]int
}

// NewWorkspaceGrid builds the row-major index table for a grid of
// horizontalCount x verticalCount workspaces of width x height pixels.
func NewWorkspaceGrid(width, height, horizontalCount, verticalCount int) (*WorkspaceGrid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("workspace size %dx%d must be positive", width, height)
	}
	if horizontalCount <= 0 || verticalCount <= 0 {
		return nil, fmt.Errorf("workspace grid %dx%d must be positive", horizontalCount, verticalCount)
	}

	return &WorkspaceGrid{
		Width:           width,
		Height:          height,
		HorizontalCount: horizontalCount,
		VerticalCount:   verticalCount,
		indices:         generateIndices(horizontalCount, verticalCount),
	}, nil
}

// generateIndices builds a 2D table where each cell holds its linear index.
// A 3x3 grid looks like:
//
//	[[0, 1, 2],
//	 [3, 4, 5],
//	 [6, 7, 8]]
func generateIndices(horizontalCount, verticalCount int) [][]int {
	indices := make([][]int, verticalCount)
	for row := range indices {
		indices[row] = make([]int, horizontalCount)
		for col := range indices[row] {
			indices[row][col] = row*horizontalCount + col
		}
	}
	return indices
}

// IndexOf maps the workspace's absolute offset to its linear index.
func (g *WorkspaceGrid) IndexOf(ws types.Workspace) (int, error) {
	if ws.X < 0 || ws.Y < 0 {
		return 0, fmt.Errorf("workspace %s: %w", ws, ErrGridIndexOutOfRange)
	}
	if ws.X%g.Width != 0 || ws.Y%g.Height != 0 {
		return 0, fmt.Errorf("workspace %s with workspace size %dx%d: %w", ws, g.Width, g.Height, ErrUnalignedWorkspace)
	}

	col := ws.X / g.Width
	row := ws.Y / g.Height
	if row >= len(g.indices) || col >= len(g.indices[row]) {
		return 0, fmt.Errorf("workspace %s is at column %d row %d of a %dx%d grid: %w",
			ws, col, row, g.HorizontalCount, g.VerticalCount, ErrGridIndexOutOfRange)
	}

	return g.indices[row][col], nil
}

// Count returns the total number of workspaces in the grid
func (g *WorkspaceGrid) Count() int {
	return g.HorizontalCount * g.VerticalCount
}

// Size returns the pixel extent of a single workspace
func (g *WorkspaceGrid) Size() types.Rect {
	return types.Rect{Width: g.Width, Height: g.Height}
}

func (g *WorkspaceGrid) String() string {
	return fmt.Sprintf("%dx%d workspaces of %dx%d", g.HorizontalCount, g.VerticalCount, g.Width, g.Height)
}

// GridFromDesktop derives the workspace counts from the total desktop
// geometry reported by the window manager. Remainders are a configuration
// mismatch and are reported as such.
func GridFromDesktop(width, height int, dg types.DesktopGeometry) (*WorkspaceGrid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("workspace size %dx%d must be positive", width, height)
	}
	if dg.Width <= 0 || dg.Height <= 0 {
		// Nothing reported: treat the desktop as a single workspace.
		return NewWorkspaceGrid(width, height, 1, 1)
	}
	if dg.Width%width != 0 || dg.Height%height != 0 {
		return nil, fmt.Errorf("desktop geometry %s is not a multiple of workspace size %dx%d: %w",
			dg, width, height, ErrUnalignedWorkspace)
	}
	return NewWorkspaceGrid(width, height, dg.Width/width, dg.Height/height)
}
