package client

import (
	"context"
	"fmt"
	"time"

	"github.com/yourusername/winswitch/internal/types"
)

const (
	DefaultTimeout = 5 * time.Second
)

// Source lists windows and workspaces from the window manager and raises
// windows. Every backend in this package implements it.
type Source interface {
	WorkspaceConfig(ctx context.Context) (types.DesktopGeometry, types.Workspace, error)
	Windows(ctx context.Context) ([]types.Window, error)
	ActiveWindow(ctx context.Context) (types.WindowID, error)
	Raise(ctx context.Context, id types.WindowID) error
	Name() string
	Close() error
}

// Open creates the named backend ("wmctrl" or "ewmh")
func Open(backend string, timeout time.Duration) (Source, error) {
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	switch backend {
	case "", BackendWMCtrl:
		return NewWMCtrl(ExecRunner(timeout)), nil
	case BackendEWMH:
		return NewEWMH()
	default:
		return nil, fmt.Errorf("unknown backend: %s", backend)
	}
}

const (
	BackendWMCtrl = "wmctrl"
	BackendEWMH   = "ewmh"
)
