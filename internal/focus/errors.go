package focus

import "errors"

// Errors for requests that have no eligible target. The CLI reports these
// and exits successfully without changing focus.
var (
	ErrNoWindowToFocus        = errors.New("no window to focus")
	ErrFocusedWindowUntracked = errors.New("focused window is not on the current workspace")
	ErrMonitorOutOfRange      = errors.New("monitor index out of range")
	ErrUnsupportedDirection   = errors.New("unsupported direction")
)

// ErrRaiseFailed wraps a window source failure to raise the chosen window.
// Focus is unchanged and the CLI reports it like a request without a target.
var ErrRaiseFailed = errors.New("window could not be raised")

// IsNoTarget reports whether err means the request had no eligible target
// rather than a failure.
func IsNoTarget(err error) bool {
	return errors.Is(err, ErrNoWindowToFocus) ||
		errors.Is(err, ErrFocusedWindowUntracked) ||
		errors.Is(err, ErrMonitorOutOfRange) ||
		errors.Is(err, ErrUnsupportedDirection)
}
