package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/yourusername/winswitch/internal/logging"
	"github.com/yourusername/winswitch/internal/types"
)

// WMCtrl talks to the window manager through the wmctrl and xdotool
// command line tools.
type WMCtrl struct {
	run Runner
}

// NewWMCtrl creates a wmctrl backend using run to execute commands
func NewWMCtrl(run Runner) *WMCtrl {
	return &WMCtrl{run: run}
}

func (w *WMCtrl) Name() string {
	return BackendWMCtrl
}

func (w *WMCtrl) Close() error {
	return nil
}

// WorkspaceConfig returns the desktop geometry and current viewport from
// `wmctrl -d`. Unusable output yields zero values.
func (w *WMCtrl) WorkspaceConfig(ctx context.Context) (types.DesktopGeometry, types.Workspace, error) {
	out := output(ctx, w.run, "wmctrl", "-d")
	if out == "" {
		return types.DesktopGeometry{}, types.Workspace{}, nil
	}

	dg, ws, err := ParseDesktops(out)
	if err != nil {
		logging.Warn().Err(err).Msg("unparsable wmctrl -d output")
		return types.DesktopGeometry{}, types.Workspace{}, nil
	}
	return dg, ws, nil
}

// Windows returns the application windows listed by `wmctrl -l -G -x`.
// Malformed lines are logged and skipped.
func (w *WMCtrl) Windows(ctx context.Context) ([]types.Window, error) {
	out := output(ctx, w.run, "wmctrl", "-l", "-G", "-x")
	if out == "" {
		return nil, nil
	}

	windows, err := ParseWindows(out)
	if err != nil {
		logParseErrors(err)
	}
	return windows, nil
}

// ActiveWindow returns the focused window from `xdotool getactivewindow`,
// or 0 when it cannot be determined.
func (w *WMCtrl) ActiveWindow(ctx context.Context) (types.WindowID, error) {
	out := output(ctx, w.run, "xdotool", "getactivewindow")
	if out == "" {
		return 0, nil
	}

	id, err := types.ParseWindowID(out)
	if err != nil {
		logging.Warn().Err(err).Msg("unparsable active window")
		return 0, nil
	}
	return id, nil
}

// Raise activates the window with `wmctrl -i -a`, switching workspace and
// raising it as needed.
func (w *WMCtrl) Raise(ctx context.Context, id types.WindowID) error {
	logging.Debug().Str("window", id.String()).Msg("raise window")
	if _, err := w.run(ctx, "wmctrl", "-i", "-a", id.String()); err != nil {
		return fmt.Errorf("failed to raise window %s: %w", id, err)
	}
	return nil
}

// logParseErrors logs each *ParseError joined into err
func logParseErrors(err error) {
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		logging.Warn().Err(err).Msg("skipped window line")
		return
	}
	for _, e := range joined.Unwrap() {
		var pe *ParseError
		if errors.As(e, &pe) {
			logging.Warn().Int("line", pe.Line).Str("reason", pe.Reason).Msg("skipped window line")
		}
	}
}
