package client

import (
	"errors"
	"testing"

	"github.com/yourusername/winswitch/internal/types"
)

// === Window Listing ===

func TestParseWindows(t *testing.T) {
	output := "0x05000006  0 1920 24   1920 1056 gnome-terminal-server.Gnome-terminal  devin-Desktop Terminal\n" +
		"0x01e00003 -1 0    0    5760 1080 N/A                                    devin-Desktop Desktop\n" +
		"0x03a00001  0 100  52   800  600  firefox.Firefox                         devin-Desktop Mozilla   Firefox\n"

	windows, err := ParseWindows(output)
	if err != nil {
		t.Fatalf("ParseWindows failed: %v", err)
	}
	if len(windows) != 2 {
		t.Fatalf("got %d windows, want 2", len(windows))
	}

	w := windows[0]
	want := types.Window{
		ID:      0x05000006,
		Desktop: 0,
		X:       1920,
		Y:       24,
		Width:   1920,
		Height:  1056,
		Class:   "gnome-terminal-server.Gnome-terminal",
		Host:    "devin-Desktop",
		Title:   "Terminal",
	}
	if w != want {
		t.Errorf("window = %+v, want %+v", w, want)
	}

	// Runs of whitespace in the title collapse to one space
	if windows[1].Title != "Mozilla Firefox" {
		t.Errorf("Title = %q, want %q", windows[1].Title, "Mozilla Firefox")
	}
}

func TestParseWindowsEmptyTitle(t *testing.T) {
	windows, err := ParseWindows("0x00a00004  0 0 30 640 480 xterm.XTerm host\n")
	if err != nil {
		t.Fatalf("ParseWindows failed: %v", err)
	}
	if len(windows) != 1 {
		t.Fatalf("got %d windows, want 1", len(windows))
	}
	if windows[0].Title != "" {
		t.Errorf("Title = %q, want empty", windows[0].Title)
	}
}

func TestParseWindowsMalformed(t *testing.T) {
	output := "0x05000006  0 1920 24 1920 1056 term.Term host Terminal\n" +
		"garbage\n" +
		"0x0500000z  0 1920 24 1920 1056 term.Term host Bad id\n" +
		"0x05000007  0 abc  24 1920 1056 term.Term host Bad x\n" +
		"\n" +
		"0x05000008  0 0    24 1920 1056 term.Term host Other\n"

	windows, err := ParseWindows(output)
	if len(windows) != 2 {
		t.Errorf("got %d windows, want 2", len(windows))
	}
	if err == nil {
		t.Fatal("expected error for malformed lines")
	}

	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		t.Fatalf("error %v does not wrap multiple errors", err)
	}

	var lines []int
	for _, e := range joined.Unwrap() {
		var pe *ParseError
		if !errors.As(e, &pe) {
			t.Fatalf("error %v is not a *ParseError", e)
		}
		lines = append(lines, pe.Line)
	}
	if len(lines) != 3 || lines[0] != 2 || lines[1] != 3 || lines[2] != 4 {
		t.Errorf("error lines = %v, want [2 3 4]", lines)
	}
}

func TestParseWindowsEmpty(t *testing.T) {
	windows, err := ParseWindows("")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if len(windows) != 0 {
		t.Errorf("got %d windows, want 0", len(windows))
	}
}

// === Desktop Listing ===

func TestParseDesktopLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantDG  types.DesktopGeometry
		wantWS  types.Workspace
		wantErr bool
	}{
		{
			name:   "compiz viewport",
			line:   "0  * DG: 17280x3240  VP: 5760,0  WA: 0,24 5760x1056  N/A",
			wantDG: types.DesktopGeometry{Width: 17280, Height: 3240},
			wantWS: types.Workspace{X: 5760, Y: 0},
		},
		{
			name:   "no work area",
			line:   "0  * DG: 1920x1080  VP: 0,1080",
			wantDG: types.DesktopGeometry{Width: 1920, Height: 1080},
			wantWS: types.Workspace{X: 0, Y: 1080},
		},
		{
			name:    "viewport not applicable",
			line:    "1  - DG: 1920x1080  VP: N/A  WA: 0,0 1920x1080  Two",
			wantErr: true,
		},
		{
			name:    "missing geometry",
			line:    "0  * VP: 0,0  WA: 0,0 1920x1080  One",
			wantErr: true,
		},
		{
			name:    "missing viewport",
			line:    "0  * DG: 1920x1080  WA: 0,0 1920x1080  One",
			wantErr: true,
		},
		{
			name:    "bad geometry",
			line:    "0  * DG: 1920by1080  VP: 0,0",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dg, ws, err := ParseDesktopLine(tt.line)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if dg != tt.wantDG {
				t.Errorf("geometry = %v, want %v", dg, tt.wantDG)
			}
			if ws != tt.wantWS {
				t.Errorf("workspace = %v, want %v", ws, tt.wantWS)
			}
		})
	}
}

func TestParseDesktopsPicksCurrent(t *testing.T) {
	output := "0  - DG: 1920x1080  VP: 0,0  WA: 0,24 1920x1056  One\n" +
		"1  * DG: 3840x2160  VP: 1920,1080  WA: 0,24 1920x1056  Two\n"

	dg, ws, err := ParseDesktops(output)
	if err != nil {
		t.Fatalf("ParseDesktops failed: %v", err)
	}
	if dg != (types.DesktopGeometry{Width: 3840, Height: 2160}) {
		t.Errorf("geometry = %v, want 3840x2160", dg)
	}
	if ws != (types.Workspace{X: 1920, Y: 1080}) {
		t.Errorf("workspace = %v, want 1920,1080", ws)
	}
}

func TestParseDesktopsFallsBackToFirst(t *testing.T) {
	dg, _, err := ParseDesktops("0  - DG: 5760x1080  VP: 0,0  WA: 0,24 5760x1056  One\n")
	if err != nil {
		t.Fatalf("ParseDesktops failed: %v", err)
	}
	if dg.Width != 5760 {
		t.Errorf("Width = %d, want 5760", dg.Width)
	}

	if _, _, err := ParseDesktops("\n\n"); err == nil {
		t.Error("expected error for empty output")
	}
}
