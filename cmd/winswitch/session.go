package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/yourusername/winswitch/internal/client"
	"github.com/yourusername/winswitch/internal/config"
	"github.com/yourusername/winswitch/internal/focus"
	"github.com/yourusername/winswitch/internal/logging"
	"github.com/yourusername/winswitch/internal/output"
)

// session is one invocation's view of the desktop: the loaded config, the
// window source and the navigator built from them.
type session struct {
	cfg *config.Config
	src client.Source
	nav *focus.Navigator
}

// loadConfig loads --config, or the default file, or the built-in default
func loadConfig() (*config.Config, error) {
	if configPath == "" {
		if _, err := config.FindConfig(); errors.Is(err, config.ErrNoConfigFile) {
			logging.Debug().Err(err).Msg("using built-in default config")
		}
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// openSession loads the config, opens the window source and reads the
// current workspace. Every error it returns is fatal.
func openSession(ctx context.Context) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	backend := cfg.Settings.Backend
	if backendName != "" {
		backend = backendName
	}

	src, err := client.Open(backend, timeout)
	if err != nil {
		return nil, err
	}

	nav, err := focus.Setup(ctx, src, focus.Options{
		Layout:             cfg.MonitorLayout(),
		Grid:               cfg.Grid,
		ExcludeUndecorated: cfg.ExcludeUndecorated(),
	})
	if err != nil {
		src.Close()
		return nil, err
	}

	logging.Debug().
		Str("backend", src.Name()).
		Int("monitors", len(cfg.Monitors)).
		Msg("session opened")

	return &session{cfg: cfg, src: src, nav: nav}, nil
}

func (s *session) Close() {
	if err := s.src.Close(); err != nil {
		logging.Warn().Err(err).Msg("failed to close window source")
	}
}

// windowRows returns the tracked windows grouped by monitor, in focus order
func windowRows(nav *focus.Navigator) []output.WindowRow {
	ix := nav.Index()
	rows := make([]output.WindowRow, 0, ix.Len())
	for _, m := range ix.Monitors() {
		for _, id := range ix.WindowsOn(m) {
			w, _ := ix.Window(id)
			rows = append(rows, output.WindowRow{
				Monitor: m,
				Window:  w,
				Focused: id == nav.FocusedID(),
			})
		}
	}
	return rows
}

// monitorRows returns one row per configured monitor
func monitorRows(nav *focus.Navigator) []output.MonitorRow {
	current, _ := nav.CurrentMonitor()
	monitors := nav.Layout().Monitors()

	rows := make([]output.MonitorRow, len(monitors))
	for i, m := range monitors {
		rows[i] = output.MonitorRow{
			Index:   i,
			Monitor: m,
			Windows: len(nav.Index().WindowsOn(i)),
			Current: i == current,
		}
	}
	return rows
}
