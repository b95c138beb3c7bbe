package config

import "github.com/yourusername/winswitch/internal/types"

// Config is the root configuration structure
type Config struct {
	Settings  Settings        `yaml:"settings" json:"settings"`
	Workspace WorkspaceConfig `yaml:"workspace" json:"workspace"`
	Monitors  []MonitorConfig `yaml:"monitors" json:"monitors"`
}

// Settings contains global application settings
type Settings struct {
	Backend string `yaml:"backend" json:"backend"` // wmctrl or ewmh

	// ExcludeUndecorated drops windows whose y offset is exactly 0. Such
	// windows carry no decoration and are usually desktop surfaces rather
	// than applications. A pointer so that an absent key means "default".
	ExcludeUndecorated *bool `yaml:"excludeUndecorated,omitempty" json:"excludeUndecorated,omitempty"`
}

// WorkspaceConfig describes one workspace and how workspaces tile the
// virtual desktop. Zero values are derived: the size from the monitors'
// bounding box, the counts from the desktop geometry the window manager
// reports.
type WorkspaceConfig struct {
	Width           int `yaml:"width,omitempty" json:"width,omitempty"`
	Height          int `yaml:"height,omitempty" json:"height,omitempty"`
	HorizontalCount int `yaml:"horizontalCount,omitempty" json:"horizontalCount,omitempty"`
	VerticalCount   int `yaml:"verticalCount,omitempty" json:"verticalCount,omitempty"`
}

// MonitorConfig is one physical monitor, in workspace pixel coordinates
type MonitorConfig struct {
	Name   string `yaml:"name,omitempty" json:"name,omitempty"`
	X      int    `yaml:"x" json:"x"`
	Y      int    `yaml:"y" json:"y"`
	Width  int    `yaml:"width" json:"width"`
	Height int    `yaml:"height" json:"height"`
}

// ToMonitor converts MonitorConfig to types.Monitor
func (mc MonitorConfig) ToMonitor() types.Monitor {
	return types.Monitor{
		Name:   mc.Name,
		Bounds: types.Rect{X: mc.X, Y: mc.Y, Width: mc.Width, Height: mc.Height},
	}
}

const (
	BackendWMCtrl = "wmctrl"
	BackendEWMH   = "ewmh"
)
