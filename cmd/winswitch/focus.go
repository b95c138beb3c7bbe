package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yourusername/winswitch/internal/focus"
	"github.com/yourusername/winswitch/internal/logging"
	"github.com/yourusername/winswitch/internal/types"
)

var dryRun bool

// focusResult is the --json form of a focus command
type focusResult struct {
	Target  types.WindowID `json:"target"`
	Focused bool           `json:"focused"`
	DryRun  bool           `json:"dryRun,omitempty"`
	Reason  string         `json:"reason,omitempty"`
}

// focusCmd is the parent command for focus subcommands
var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Move window focus",
	Long:  `Commands for moving focus to a monitor or to the neighbouring window.`,
}

// focusMonitorCmd focuses the leftmost window on a monitor
var focusMonitorCmd = &cobra.Command{
	Use:   "monitor <index>",
	Short: "Focus the leftmost window on a monitor",
	Long: `Focuses the leftmost window of the current workspace on the monitor with
the given 0-based index. Monitors are numbered in the order of the config file.
Nothing happens if the monitor has no windows.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			printNotice(fmt.Sprintf("invalid monitor index %q", args[0]))
			return nil
		}
		return focusMonitorHelper(index)
	},
}

// negativeIndexError reports a negative monitor index. The flag parser reads
// "-1" as a shorthand flag, so the index never reaches RunE.
func negativeIndexError(cmd *cobra.Command, err error) error {
	_, arg, ok := strings.Cut(err.Error(), " in ")
	if !ok {
		return err
	}
	index, convErr := strconv.Atoi(arg)
	if convErr != nil || index >= 0 {
		return err
	}
	return reportFocus(0, fmt.Errorf("%w: %d", focus.ErrMonitorOutOfRange, index), false)
}

// focusDirectionCmd focuses the neighbouring window in a direction
var focusDirectionCmd = &cobra.Command{
	Use:       "direction <left|right>",
	Short:     "Focus the next window to the left or right",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"left", "right"},
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, ok := types.ParseDirection(args[0])
		if !ok {
			printNotice(fmt.Sprintf("invalid direction %q: expected left or right", args[0]))
			return nil
		}
		return focusDirectionHelper(dir)
	},
}

// focusLeftCmd moves focus to the window on the left
var focusLeftCmd = &cobra.Command{
	Use:   "left",
	Short: "Focus the next window to the left",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return focusDirectionHelper(types.DirLeft)
	},
}

// focusRightCmd moves focus to the window on the right
var focusRightCmd = &cobra.Command{
	Use:   "right",
	Short: "Focus the next window to the right",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return focusDirectionHelper(types.DirRight)
	},
}

// focusMonitorHelper runs a focus-by-monitor request
func focusMonitorHelper(index int) error {
	ctx := context.Background()

	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	if dryRun {
		target, err := s.nav.MonitorTarget(index)
		return reportFocus(target, err, true)
	}

	target, err := s.nav.FocusByMonitorIndex(ctx, index)
	return reportFocus(target, err, false)
}

// focusDirectionHelper runs a focus-by-direction request
func focusDirectionHelper(dir types.Direction) error {
	ctx := context.Background()

	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	if dryRun {
		target, err := s.nav.Target(dir)
		return reportFocus(target, err, true)
	}

	target, err := s.nav.FocusByDirection(ctx, dir)
	return reportFocus(target, err, false)
}

// reportFocus prints the outcome of a focus request. Requests without a
// target and windows the source failed to raise are reported and succeed;
// other errors are returned.
func reportFocus(target types.WindowID, err error, dry bool) error {
	switch {
	case err == nil, focus.IsNoTarget(err):
	case errors.Is(err, focus.ErrRaiseFailed):
		logging.Warn().Err(err).Str("window", target.String()).Msg("focus unchanged")
	default:
		return fmt.Errorf("failed to focus: %w", err)
	}

	result := focusResult{Target: target, DryRun: dry}
	switch {
	case err != nil:
		result.Reason = err.Error()
	case target == 0:
		result.Reason = "monitor has no windows"
	default:
		result.Focused = !dry
	}

	if jsonOutput {
		return printJSON(result)
	}

	switch {
	case result.Reason != "":
		printNotice(result.Reason)
	case dry:
		infoColor.Printf("Would focus window: %s\n", target)
	default:
		successColor.Printf("✓ Focused window: %s\n", target)
	}
	return nil
}
