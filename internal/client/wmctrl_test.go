package client

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/yourusername/winswitch/internal/types"
)

// fakeRunner answers commands from a table keyed by the full command line
type fakeRunner struct {
	outputs map[string]string
	fail    map[string]bool
	calls   []string
}

func (f *fakeRunner) run(ctx context.Context, name string, args ...string) (string, error) {
	command := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, command)
	if f.fail[command] {
		return "", errors.New("exit status 1")
	}
	return f.outputs[command], nil
}

func TestWMCtrlWorkspaceConfig(t *testing.T) {
	f := &fakeRunner{outputs: map[string]string{
		"wmctrl -d": "0  * DG: 17280x3240  VP: 5760,1080  WA: 0,24 5760x1056  N/A\n",
	}}
	wm := NewWMCtrl(f.run)

	dg, ws, err := wm.WorkspaceConfig(context.Background())
	if err != nil {
		t.Fatalf("WorkspaceConfig failed: %v", err)
	}
	if dg != (types.DesktopGeometry{Width: 17280, Height: 3240}) {
		t.Errorf("geometry = %v", dg)
	}
	if ws != (types.Workspace{X: 5760, Y: 1080}) {
		t.Errorf("workspace = %v", ws)
	}
}

func TestWMCtrlCommandFailureYieldsEmpty(t *testing.T) {
	f := &fakeRunner{fail: map[string]bool{
		"wmctrl -d":               true,
		"wmctrl -l -G -x":         true,
		"xdotool getactivewindow": true,
	}}
	wm := NewWMCtrl(f.run)
	ctx := context.Background()

	dg, ws, err := wm.WorkspaceConfig(ctx)
	if err != nil || dg != (types.DesktopGeometry{}) || ws != (types.Workspace{}) {
		t.Errorf("WorkspaceConfig = %v, %v, %v; want zero values", dg, ws, err)
	}

	windows, err := wm.Windows(ctx)
	if err != nil || len(windows) != 0 {
		t.Errorf("Windows = %v, %v; want none", windows, err)
	}

	id, err := wm.ActiveWindow(ctx)
	if err != nil || id != 0 {
		t.Errorf("ActiveWindow = %v, %v; want 0", id, err)
	}
}

func TestWMCtrlWindowsSkipsMalformed(t *testing.T) {
	f := &fakeRunner{outputs: map[string]string{
		"wmctrl -l -G -x": "0x05000006  0 1920 24 1920 1056 term.Term host Terminal\nbroken line\n",
	}}
	wm := NewWMCtrl(f.run)

	windows, err := wm.Windows(context.Background())
	if err != nil {
		t.Fatalf("Windows failed: %v", err)
	}
	if len(windows) != 1 || windows[0].ID != 0x05000006 {
		t.Errorf("windows = %+v, want the single valid window", windows)
	}
}

func TestWMCtrlActiveWindowDecimal(t *testing.T) {
	f := &fakeRunner{outputs: map[string]string{
		"xdotool getactivewindow": "83886086\n",
	}}
	wm := NewWMCtrl(f.run)

	id, err := wm.ActiveWindow(context.Background())
	if err != nil {
		t.Fatalf("ActiveWindow failed: %v", err)
	}
	if id != 0x05000006 {
		t.Errorf("id = %s, want 0x05000006", id)
	}
}

func TestWMCtrlRaise(t *testing.T) {
	f := &fakeRunner{}
	wm := NewWMCtrl(f.run)

	if err := wm.Raise(context.Background(), 0x05000006); err != nil {
		t.Fatalf("Raise failed: %v", err)
	}
	if len(f.calls) != 1 || f.calls[0] != "wmctrl -i -a 0x05000006" {
		t.Errorf("calls = %v", f.calls)
	}

	f.fail = map[string]bool{"wmctrl -i -a 0x05000006": true}
	if err := wm.Raise(context.Background(), 0x05000006); err == nil {
		t.Error("expected error when wmctrl fails")
	}
}

func TestFormatClass(t *testing.T) {
	tests := []struct {
		instance, class string
		want            string
	}{
		{"gnome-terminal-server", "Gnome-terminal", "gnome-terminal-server.Gnome-terminal"},
		{"", "Firefox", "Firefox"},
		{"navigator", "", "navigator"},
		{"", "", types.ClassNotApplicable},
	}

	for _, tt := range tests {
		if got := formatClass(tt.instance, tt.class); got != tt.want {
			t.Errorf("formatClass(%q, %q) = %q, want %q", tt.instance, tt.class, got, tt.want)
		}
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	if _, err := Open("sway", 0); err == nil {
		t.Error("expected error for unknown backend")
	}

	src, err := Open(BackendWMCtrl, 0)
	if err != nil {
		t.Fatalf("Open(wmctrl) failed: %v", err)
	}
	defer src.Close()
	if src.Name() != BackendWMCtrl {
		t.Errorf("Name = %q, want %q", src.Name(), BackendWMCtrl)
	}
}
