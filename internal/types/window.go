package types

import (
	"fmt"
	"strconv"
	"strings"
)

// ClassNotApplicable is the window class reported for surfaces that are not
// application windows (launchers, desktop icons, panels).
const ClassNotApplicable = "N/A"

// WindowID identifies a top-level X11 window.
type WindowID uint32

// String returns the id in wmctrl's zero-padded hex form, e.g. 0x05000006
func (id WindowID) String() string {
	return fmt.Sprintf("0x%08x", uint32(id))
}

// MarshalText makes ids render as hex in JSON output
func (id WindowID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// ParseWindowID accepts both the hex form printed by wmctrl ("0x05000006")
// and the decimal form printed by xdotool ("83886086").
func ParseWindowID(s string) (WindowID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty window id")
	}

	var (
		v   uint64
		err error
	)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err = strconv.ParseUint(s[2:], 16, 32)
	} else {
		v, err = strconv.ParseUint(s, 10, 32)
	}
	if err != nil {
		return 0, fmt.Errorf("invalid window id %q: %w", s, err)
	}
	return WindowID(v), nil
}

// Window is one top-level window as reported by the window manager.
// X and Y are the top-left corner relative to the current workspace; some
// sources include the window decoration, some do not.
type Window struct {
	ID      WindowID `json:"id"`
	Desktop int      `json:"desktop"`
	X       int      `json:"x"`
	Y       int      `json:"y"`
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Class   string   `json:"class"`
	Host    string   `json:"host"`
	Title   string   `json:"title"`
}

// Origin returns the window's top-left corner
func (w Window) Origin() Point {
	return Point{X: w.X, Y: w.Y}
}

// Bounds returns the window geometry as a Rect
func (w Window) Bounds() Rect {
	return Rect{X: w.X, Y: w.Y, Width: w.Width, Height: w.Height}
}

// IsApplication reports whether the window is a real application window
func (w Window) IsApplication() bool {
	return w.Class != ClassNotApplicable
}

// Workspace is the currently active workspace, identified by its absolute
// pixel offset within the whole virtual desktop (wmctrl's "VP: X,Y").
// The wire protocol calls these width and height; they are an offset, not a size.
type Workspace struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (ws Workspace) String() string {
	return fmt.Sprintf("%d,%d", ws.X, ws.Y)
}

// DesktopGeometry is the total size of the virtual desktop spanning every
// workspace (wmctrl's "DG: WxH").
type DesktopGeometry struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (dg DesktopGeometry) String() string {
	return fmt.Sprintf("%dx%d", dg.Width, dg.Height)
}

// Monitor is one physical display, placed inside a single workspace
type Monitor struct {
	Name   string `json:"name,omitempty"`
	Bounds Rect   `json:"bounds"`
}
