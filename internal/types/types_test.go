package types

import "testing"

func TestRectContains(t *testing.T) {
	rect := Rect{X: 1920, Y: 0, Width: 1920, Height: 1080}

	tests := []struct {
		name  string
		point Point
		want  bool
	}{
		{"center point", Point{X: 2880, Y: 540}, true},
		{"left edge belongs to rect", Point{X: 1920, Y: 0}, true},
		{"right edge belongs to neighbour", Point{X: 3840, Y: 10}, false},
		{"bottom edge excluded", Point{X: 2000, Y: 1080}, false},
		{"outside left", Point{X: 1919, Y: 50}, false},
		{"outside top", Point{X: 2000, Y: -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rect.Contains(tt.point); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestRectOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want int
	}{
		{"adjacent", Rect{X: 0, Y: 0, Width: 1920, Height: 1080}, Rect{X: 1920, Y: 0, Width: 1920, Height: 1080}, 0},
		{"partial", Rect{X: 0, Y: 0, Width: 100, Height: 100}, Rect{X: 50, Y: 50, Width: 100, Height: 100}, 2500},
		{"contained", Rect{X: 0, Y: 0, Width: 100, Height: 100}, Rect{X: 10, Y: 10, Width: 10, Height: 10}, 100},
		{"stacked", Rect{X: 0, Y: 0, Width: 100, Height: 100}, Rect{X: 0, Y: 100, Width: 100, Height: 100}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlap(tt.b); got != tt.want {
				t.Errorf("Overlap() = %d, want %d", got, tt.want)
			}
			if got := tt.b.Overlap(tt.a); got != tt.want {
				t.Errorf("Overlap() reversed = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseWindowID(t *testing.T) {
	tests := []struct {
		input    string
		expected WindowID
		hasError bool
	}{
		{"0x05000006", 0x05000006, false},
		{"0X05000006", 0x05000006, false},
		{"83886086", 0x05000006, false},
		{"  0x0340000a\n", 0x0340000a, false},
		{"", 0, true},
		{"0x", 0, true},
		{"window", 0, true},
		{"0x1ffffffff", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseWindowID(tt.input)
			if tt.hasError {
				if err == nil {
					t.Errorf("ParseWindowID(%q) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseWindowID(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseWindowID(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestWindowIDString(t *testing.T) {
	if got := WindowID(0x05000006).String(); got != "0x05000006" {
		t.Errorf("String() = %q, want %q", got, "0x05000006")
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input string
		want  Direction
		ok    bool
	}{
		{"left", DirLeft, true},
		{"right", DirRight, true},
		{"up", DirUp, true},
		{"down", DirDown, true},
		{"sideways", 0, false},
		{"Left", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseDirection(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseDirection(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestWindowIsApplication(t *testing.T) {
	if (Window{Class: ClassNotApplicable}).IsApplication() {
		t.Error("N/A window reported as application")
	}
	if !(Window{Class: "gnome-terminal-server.Gnome-terminal"}).IsApplication() {
		t.Error("terminal window not reported as application")
	}
}
