package config

import (
	"fmt"
)

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	// Validate settings
	if err := validateSettings(&c.Settings); err != nil {
		return fmt.Errorf("settings: %w", err)
	}

	// Validate workspace
	if err := validateWorkspace(&c.Workspace); err != nil {
		return fmt.Errorf("workspace: %w", err)
	}

	// Validate monitors
	if len(c.Monitors) == 0 {
		return fmt.Errorf("monitors: at least one monitor is required")
	}
	names := make(map[string]bool)
	for i, m := range c.Monitors {
		if m.Name == "" {
			continue
		}
		if names[m.Name] {
			return fmt.Errorf("monitor %d: duplicate monitor name: %s", i, m.Name)
		}
		names[m.Name] = true
	}

	width, height := c.WorkspaceSize()
	if err := c.MonitorLayout().Validate(width, height); err != nil {
		return fmt.Errorf("monitors: %w", err)
	}

	return nil
}

func validateSettings(s *Settings) error {
	switch s.Backend {
	case BackendWMCtrl, BackendEWMH, "":
		return nil
	default:
		return fmt.Errorf("unknown backend: %s (want %s or %s)", s.Backend, BackendWMCtrl, BackendEWMH)
	}
}

func validateWorkspace(w *WorkspaceConfig) error {
	if w.Width < 0 || w.Height < 0 {
		return fmt.Errorf("workspace size %dx%d cannot be negative", w.Width, w.Height)
	}
	if w.HorizontalCount < 0 || w.VerticalCount < 0 {
		return fmt.Errorf("workspace counts %dx%d cannot be negative", w.HorizontalCount, w.VerticalCount)
	}
	return nil
}
