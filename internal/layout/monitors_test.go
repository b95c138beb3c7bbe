package layout

import (
	"errors"
	"testing"

	"github.com/yourusername/winswitch/internal/types"
)

// Irregular layout:
// +-------------+--------+
// |             | top    |
// |    main     | 1920x  |
// |  2560x2160  | 1080   |
// |             +--------+
// |             | bottom |
// |             | 1920x  |
// |             | 1080   |
// +-------------+--------+
func makeIrregularLayout() *MonitorLayout {
	return NewMonitorLayout([]types.Monitor{
		{Name: "main", Bounds: types.Rect{X: 0, Y: 0, Width: 2560, Height: 2160}},
		{Name: "top", Bounds: types.Rect{X: 2560, Y: 0, Width: 1920, Height: 1080}},
		{Name: "bottom", Bounds: types.Rect{X: 2560, Y: 1080, Width: 1920, Height: 1080}},
	})
}

func TestMonitorOf_UniformRowMatchesDivision(t *testing.T) {
	const (
		monitorWidth = 1920
		count        = 3
	)
	l := NewMonitorLayout(UniformRow(count, monitorWidth, 1080))

	floorDiv := func(a, b int) int {
		q := a / b
		if a%b != 0 && a < 0 {
			q--
		}
		return q
	}

	for x := -4000; x <= 8000; x += 97 {
		for _, y := range []int{-30, 0, 24, 1079, 1500} {
			want := min(max(floorDiv(x, monitorWidth), 0), count-1)
			if got := l.MonitorOf(x, y); got != want {
				t.Fatalf("MonitorOf(%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestMonitorOf_Boundaries(t *testing.T) {
	l := NewMonitorLayout(UniformRow(3, 1920, 1080))

	tests := []struct {
		x, y int
		want int
	}{
		{0, 24, 0},
		{1919, 24, 0},
		{1920, 24, 1}, // left edge belongs to the monitor
		{3839, 24, 1},
		{3840, 24, 2},
		{5759, 24, 2},
	}

	for _, tt := range tests {
		if got := l.MonitorOf(tt.x, tt.y); got != tt.want {
			t.Errorf("MonitorOf(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestMonitorOf_Irregular(t *testing.T) {
	l := makeIrregularLayout()

	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"main monitor", 100, 100, 0},
		{"lower part of tall monitor", 100, 1800, 0},
		{"top right", 3000, 24, 1},
		{"bottom right", 3000, 1200, 2},
		{"stacked boundary belongs to lower monitor", 2560, 1080, 2},
		{"past right edge clamps", 9000, 24, 1},
		{"past bottom right clamps", 9000, 5000, 2},
		{"above workspace clamps", 100, -50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.MonitorOf(tt.x, tt.y); got != tt.want {
				t.Errorf("MonitorOf(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestMonitorOf_Empty(t *testing.T) {
	l := NewMonitorLayout(nil)
	if got := l.MonitorOf(0, 0); got != -1 {
		t.Errorf("MonitorOf() on empty layout = %d, want -1", got)
	}
}

func TestMonitorLayout_Bounds(t *testing.T) {
	got := makeIrregularLayout().Bounds()
	want := types.Rect{X: 0, Y: 0, Width: 4480, Height: 2160}
	if got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
}

func TestMonitorLayout_Validate(t *testing.T) {
	tests := []struct {
		name     string
		monitors []types.Monitor
		width    int
		height   int
		valid    bool
	}{
		{
			name:     "uniform row",
			monitors: UniformRow(3, 1920, 1080),
			width:    5760,
			height:   1080,
			valid:    true,
		},
		{
			name:     "irregular stacked",
			monitors: makeIrregularLayout().Monitors(),
			width:    4480,
			height:   2160,
			valid:    true,
		},
		{
			name: "gap below shorter monitor",
			monitors: []types.Monitor{
				{Bounds: types.Rect{X: 0, Y: 0, Width: 1920, Height: 1200}},
				{Bounds: types.Rect{X: 1920, Y: 0, Width: 1920, Height: 1080}},
			},
			width:  3840,
			height: 1200,
		},
		{
			name: "gap inside stacked column",
			monitors: []types.Monitor{
				{Bounds: types.Rect{X: 0, Y: 0, Width: 1920, Height: 2160}},
				{Bounds: types.Rect{X: 1920, Y: 0, Width: 1920, Height: 1000}},
				{Bounds: types.Rect{X: 1920, Y: 1080, Width: 1920, Height: 1080}},
			},
			width:  3840,
			height: 2160,
		},
		{
			name: "stacked column below tall monitor",
			monitors: []types.Monitor{
				{Bounds: types.Rect{X: 0, Y: 0, Width: 1920, Height: 2160}},
				{Bounds: types.Rect{X: 1920, Y: 0, Width: 1920, Height: 1080}},
				{Bounds: types.Rect{X: 1920, Y: 1080, Width: 1920, Height: 1080}},
			},
			width:  3840,
			height: 2160,
			valid:  true,
		},
		{
			name: "gap between monitors",
			monitors: []types.Monitor{
				{Bounds: types.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}},
				{Bounds: types.Rect{X: 2000, Y: 0, Width: 1920, Height: 1080}},
			},
			width:  3920,
			height: 1080,
		},
		{
			name: "overlap",
			monitors: []types.Monitor{
				{Bounds: types.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}},
				{Bounds: types.Rect{X: 1800, Y: 0, Width: 1920, Height: 1080}},
			},
			width:  3720,
			height: 1080,
		},
		{
			name:     "workspace wider than monitors",
			monitors: UniformRow(2, 1920, 1080),
			width:    5760,
			height:   1080,
		},
		{
			name:     "workspace narrower than monitors",
			monitors: UniformRow(3, 1920, 1080),
			width:    3840,
			height:   1080,
		},
		{
			name:     "height mismatch",
			monitors: UniformRow(3, 1920, 1080),
			width:    5760,
			height:   1200,
		},
		{
			name: "out of order",
			monitors: []types.Monitor{
				{Bounds: types.Rect{X: 1920, Y: 0, Width: 1920, Height: 1080}},
				{Bounds: types.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}},
			},
			width:  3840,
			height: 1080,
		},
		{
			name: "zero sized monitor",
			monitors: []types.Monitor{
				{Bounds: types.Rect{X: 0, Y: 0, Width: 0, Height: 1080}},
			},
			width:  0,
			height: 1080,
		},
		{
			name:   "no monitors",
			width:  1920,
			height: 1080,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewMonitorLayout(tt.monitors).Validate(tt.width, tt.height)
			if tt.valid {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidLayout) {
				t.Errorf("Validate() error = %v, want ErrInvalidLayout", err)
			}
		})
	}
}

func TestFirstUncovered(t *testing.T) {
	monitors := []types.Monitor{
		{Bounds: types.Rect{X: 0, Y: 0, Width: 1920, Height: 2160}},
		{Bounds: types.Rect{X: 1920, Y: 0, Width: 1920, Height: 1000}},
		{Bounds: types.Rect{X: 1920, Y: 1080, Width: 1920, Height: 1080}},
	}

	gap, ok := firstUncovered(monitors, 3840, 2160)
	if !ok {
		t.Fatal("expected the gap at y=1000..1080 to be found")
	}
	if gap != (types.Point{X: 1920, Y: 1000}) {
		t.Errorf("first uncovered point = %+v, want 1920,1000", gap)
	}

	err := NewMonitorLayout(monitors).Validate(3840, 2160)
	if !errors.Is(err, ErrInvalidLayout) {
		t.Errorf("Validate() error = %v, want ErrInvalidLayout", err)
	}
}
