package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"

	"github.com/yourusername/winswitch/internal/logging"
	"github.com/yourusername/winswitch/internal/types"
)

// stickyDesktop is the _NET_WM_DESKTOP value of windows shown on all desktops
const stickyDesktop = 0xFFFFFFFF

// EWMH reads window manager state directly from the X server through EWMH
// and ICCCM properties on the root and client windows.
type EWMH struct {
	xu   *xgbutil.XUtil
	root xproto.Window
}

// NewEWMH connects to the X server named by $DISPLAY
func NewEWMH() (*EWMH, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return &EWMH{xu: xu, root: xu.RootWin()}, nil
}

func (e *EWMH) Name() string {
	return BackendEWMH
}

func (e *EWMH) Close() error {
	e.xu.Conn().Close()
	return nil
}

// WorkspaceConfig returns _NET_DESKTOP_GEOMETRY and the _NET_DESKTOP_VIEWPORT
// entry of the current desktop.
func (e *EWMH) WorkspaceConfig(ctx context.Context) (types.DesktopGeometry, types.Workspace, error) {
	geom, err := ewmh.DesktopGeometryGet(e.xu)
	if err != nil {
		logging.Debug().Err(err).Msg("no desktop geometry")
		return types.DesktopGeometry{}, types.Workspace{}, nil
	}
	dg := types.DesktopGeometry{Width: geom.Width, Height: geom.Height}

	viewports, err := ewmh.DesktopViewportGet(e.xu)
	if err != nil || len(viewports) == 0 {
		logging.Debug().Err(err).Msg("no desktop viewport")
		return dg, types.Workspace{}, nil
	}

	current, err := ewmh.CurrentDesktopGet(e.xu)
	if err != nil || int(current) >= len(viewports) {
		current = 0
	}
	vp := viewports[current]

	return dg, types.Workspace{X: vp.X, Y: vp.Y}, nil
}

// Windows returns every managed client window with a WM_CLASS
func (e *EWMH) Windows(ctx context.Context) ([]types.Window, error) {
	clients, err := ewmh.ClientListGet(e.xu)
	if err != nil {
		logging.Debug().Err(err).Msg("no client list")
		return nil, nil
	}

	windows := make([]types.Window, 0, len(clients))
	for _, id := range clients {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		w, ok := e.window(id)
		if !ok || !w.IsApplication() {
			continue
		}
		windows = append(windows, w)
	}
	return windows, nil
}

func (e *EWMH) window(id xproto.Window) (types.Window, bool) {
	geom, err := xproto.GetGeometry(e.xu.Conn(), xproto.Drawable(id)).Reply()
	if err != nil {
		return types.Window{}, false
	}

	translate, err := xproto.TranslateCoordinates(e.xu.Conn(), id, e.root, 0, 0).Reply()
	if err != nil {
		return types.Window{}, false
	}

	w := types.Window{
		ID:      types.WindowID(id),
		Desktop: e.desktop(id),
		X:       int(translate.DstX),
		Y:       int(translate.DstY),
		Width:   int(geom.Width),
		Height:  int(geom.Height),
		Class:   types.ClassNotApplicable,
	}

	if class, err := icccm.WmClassGet(e.xu, id); err == nil {
		w.Class = formatClass(class.Instance, class.Class)
	}
	if host, err := icccm.WmClientMachineGet(e.xu, id); err == nil {
		w.Host = host
	}
	w.Title = e.title(id)

	return w, true
}

func (e *EWMH) desktop(id xproto.Window) int {
	desktop, err := ewmh.WmDesktopGet(e.xu, id)
	if err != nil || desktop == stickyDesktop {
		return -1
	}
	return int(desktop)
}

func (e *EWMH) title(id xproto.Window) string {
	if title, err := ewmh.WmNameGet(e.xu, id); err == nil && strings.TrimSpace(title) != "" {
		return strings.TrimSpace(title)
	}
	if title, err := icccm.WmNameGet(e.xu, id); err == nil {
		return strings.TrimSpace(title)
	}
	return ""
}

// ActiveWindow returns _NET_ACTIVE_WINDOW, or 0 when unset
func (e *EWMH) ActiveWindow(ctx context.Context) (types.WindowID, error) {
	id, err := ewmh.ActiveWindowGet(e.xu)
	if err != nil {
		logging.Debug().Err(err).Msg("no active window")
		return 0, nil
	}
	return types.WindowID(id), nil
}

// Raise sends a _NET_ACTIVE_WINDOW client message to the root window. The
// message is built by hand because the xgbutil request helpers panic on this
// library version.
func (e *EWMH) Raise(ctx context.Context, id types.WindowID) error {
	logging.Debug().Str("window", id.String()).Msg("raise window")

	atomReply, err := xproto.InternAtom(e.xu.Conn(), false,
		uint16(len("_NET_ACTIVE_WINDOW")), "_NET_ACTIVE_WINDOW").Reply()
	if err != nil {
		return fmt.Errorf("failed to intern _NET_ACTIVE_WINDOW: %w", err)
	}

	const sourceIndication = 2 // pager/direct action
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: xproto.Window(id),
		Type:   atomReply.Atom,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{sourceIndication, 0, 0, 0, 0}),
	}

	err = xproto.SendEventChecked(
		e.xu.Conn(),
		false,
		e.root,
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes()),
	).Check()
	if err != nil {
		return fmt.Errorf("failed to raise window %s: %w", id, err)
	}
	return nil
}

// formatClass renders WM_CLASS the way `wmctrl -x` does: "instance.Class".
// Windows without a class are reported as N/A.
func formatClass(instance, class string) string {
	switch {
	case instance == "" && class == "":
		return types.ClassNotApplicable
	case instance == "":
		return class
	case class == "":
		return instance
	default:
		return instance + "." + class
	}
}
