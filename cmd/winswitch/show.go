package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/yourusername/winswitch/internal/output"
	"github.com/yourusername/winswitch/internal/types"
)

// Visualization flags
var (
	showASCII   bool
	showUnicode bool
	showIDs     bool
	showWidth   int
	showHeight  int
)

// showCmd draws the current workspace
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Draw the monitors and windows of the current workspace",
	Long: `Displays an ASCII/Unicode map of the configured monitors with the windows
of the current workspace drawn inside them. The focused window is marked with '*'.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(context.Background())
		if err != nil {
			return err
		}
		defer s.Close()

		width, height := s.cfg.WorkspaceSize()
		ws := output.Workspace{
			Index:    s.nav.WorkspaceIndex(),
			Bounds:   types.Rect{Width: width, Height: height},
			Monitors: s.nav.Layout().Monitors(),
			Windows:  windowRows(s.nav),
		}

		if jsonOutput {
			return printJSON(ws)
		}

		output.PrintVisualization(os.Stdout, ws, getVisualizationOptions())
		return nil
	},
}

// getVisualizationOptions builds options from flags
func getVisualizationOptions() output.VisualizationOptions {
	opts := output.DefaultVisualizationOptions()

	// Override with flags if set
	if showASCII {
		opts.UseUnicode = false
	}
	if showUnicode {
		opts.UseUnicode = true
	}
	if showIDs {
		opts.ShowIDs = true
	}
	if showWidth > 0 {
		opts.MaxWidth = showWidth
	}
	if showHeight > 0 {
		opts.MaxHeight = showHeight
	}

	return opts
}
