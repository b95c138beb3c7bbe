package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yourusername/winswitch/internal/layout"
	"github.com/yourusername/winswitch/internal/types"
)

const (
	DefaultConfigDir  = ".config/winswitch"
	DefaultConfigFile = "config.yaml"
)

// ErrNoConfigFile is returned by FindConfig when neither default file exists
var ErrNoConfigFile = errors.New("no config file found")

// LoadConfig loads configuration from the specified path or default location
// If path is empty, uses ~/.config/winswitch/config.yaml (or config.json),
// falling back to Default() when neither exists.
// Supports both .yaml and .json extensions
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		found, err := FindConfig()
		if errors.Is(err, ErrNoConfigFile) {
			return Default(), nil
		}
		if err != nil {
			return nil, err
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return LoadConfigFromBytes(data, ext)
}

// FindConfig returns the first existing default config path
func FindConfig() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	// Try YAML first, then JSON
	yamlPath := filepath.Join(home, DefaultConfigDir, "config.yaml")
	jsonPath := filepath.Join(home, DefaultConfigDir, "config.json")

	if _, err := os.Stat(yamlPath); err == nil {
		return yamlPath, nil
	}
	if _, err := os.Stat(jsonPath); err == nil {
		return jsonPath, nil
	}
	return "", fmt.Errorf("%w at %s or %s", ErrNoConfigFile, yamlPath, jsonPath)
}

// LoadConfigFromBytes loads configuration from raw bytes
// format should be "yaml" or "json"
func LoadConfigFromBytes(data []byte, format string) (*Config, error) {
	var cfg Config

	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", format)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// GetConfigPath returns the default config file path
func GetConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, DefaultConfigDir, DefaultConfigFile)
}

// Default returns the built-in layout: three 1920x1080 monitors in a row
// and a 3x3 workspace grid.
func Default() *Config {
	cfg := &Config{
		Settings: Settings{Backend: BackendWMCtrl},
		Workspace: WorkspaceConfig{
			Width:           5760,
			Height:          1080,
			HorizontalCount: 3,
			VerticalCount:   3,
		},
		Monitors: []MonitorConfig{
			{Name: "left", X: 0, Y: 0, Width: 1920, Height: 1080},
			{Name: "center", X: 1920, Y: 0, Width: 1920, Height: 1080},
			{Name: "right", X: 3840, Y: 0, Width: 1920, Height: 1080},
		},
	}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Settings.Backend == "" {
		c.Settings.Backend = BackendWMCtrl
	}
	if c.Settings.ExcludeUndecorated == nil {
		exclude := true
		c.Settings.ExcludeUndecorated = &exclude
	}
}

// ExcludeUndecorated reports the effective y==0 exclusion policy
func (c *Config) ExcludeUndecorated() bool {
	return c.Settings.ExcludeUndecorated == nil || *c.Settings.ExcludeUndecorated
}

// MonitorLayout builds the monitor classifier from the configured monitors
func (c *Config) MonitorLayout() *layout.MonitorLayout {
	monitors := make([]types.Monitor, len(c.Monitors))
	for i, mc := range c.Monitors {
		monitors[i] = mc.ToMonitor()
	}
	return layout.NewMonitorLayout(monitors)
}

// WorkspaceSize returns the pixel size of one workspace, defaulting to the
// monitors' bounding box (sum of widths, tallest column).
func (c *Config) WorkspaceSize() (width, height int) {
	width, height = c.Workspace.Width, c.Workspace.Height
	if width == 0 || height == 0 {
		bounds := c.MonitorLayout().Bounds()
		if width == 0 {
			width = bounds.Right()
		}
		if height == 0 {
			height = bounds.Bottom()
		}
	}
	return width, height
}

// Grid builds the workspace grid. Counts missing from the config are
// derived from the desktop geometry reported by the window manager.
func (c *Config) Grid(dg types.DesktopGeometry) (*layout.WorkspaceGrid, error) {
	width, height := c.WorkspaceSize()

	if c.Workspace.HorizontalCount > 0 && c.Workspace.VerticalCount > 0 {
		return layout.NewWorkspaceGrid(width, height, c.Workspace.HorizontalCount, c.Workspace.VerticalCount)
	}

	derived, err := layout.GridFromDesktop(width, height, dg)
	if err != nil {
		return nil, err
	}

	h, v := derived.HorizontalCount, derived.VerticalCount
	if c.Workspace.HorizontalCount > 0 {
		h = c.Workspace.HorizontalCount
	}
	if c.Workspace.VerticalCount > 0 {
		v = c.Workspace.VerticalCount
	}
	return layout.NewWorkspaceGrid(width, height, h, v)
}

// Marshal renders the config in the given format ("yaml" or "json")
func (c *Config) Marshal(format string) ([]byte, error) {
	switch format {
	case "yaml", "yml":
		return yaml.Marshal(c)
	case "json":
		return json.MarshalIndent(c, "", "  ")
	default:
		return nil, fmt.Errorf("unsupported config format: %s", format)
	}
}
