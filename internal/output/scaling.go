package output

import (
	"math"

	"github.com/yourusername/winswitch/internal/types"
)

// ScalingContext handles coordinate transformation from pixel space to
// terminal character space
type ScalingContext struct {
	// Workspace bounds in pixels
	Bounds types.Rect

	// Terminal dimensions in characters
	TermWidth  int
	TermHeight int

	// Scale factors
	ScaleX float64
	ScaleY float64
}

// NewScalingContext fits bounds into a terminal of the given size.
// Terminal cells are about twice as tall as wide, which the vertical scale
// accounts for when the aspect ratio allows.
func NewScalingContext(bounds types.Rect, termWidth, termHeight int) *ScalingContext {
	if bounds.Width <= 0 || bounds.Height <= 0 {
		bounds = types.Rect{Width: 1920, Height: 1080}
	}

	// Reserve one column and one row on each side for the outer border
	availWidth := termWidth - 2
	availHeight := termHeight - 2
	if availWidth < 10 {
		availWidth = 10
	}
	if availHeight < 5 {
		availHeight = 5
	}

	scaleX := float64(availWidth) / float64(bounds.Width)
	scaleY := scaleX / 2
	if float64(bounds.Height)*scaleY > float64(availHeight) {
		scaleY = float64(availHeight) / float64(bounds.Height)
	}

	return &ScalingContext{
		Bounds:     bounds,
		TermWidth:  availWidth + 2,
		TermHeight: int(math.Round(float64(bounds.Height)*scaleY)) + 2,
		ScaleX:     scaleX,
		ScaleY:     scaleY,
	}
}

// PixelToTerminal converts pixel coordinates to terminal coordinates
func (sc *ScalingContext) PixelToTerminal(x, y int) (int, int) {
	termX := int(math.Round(float64(x-sc.Bounds.X) * sc.ScaleX))
	termY := int(math.Round(float64(y-sc.Bounds.Y) * sc.ScaleY))
	return termX + 1, termY + 1
}

// ScaleRect converts a pixel rectangle to a terminal box, clamped to the
// canvas. Boxes are at least 3x2 cells so they stay visible.
func (sc *ScalingContext) ScaleRect(r types.Rect) types.Rect {
	x, y := sc.PixelToTerminal(r.X, r.Y)
	right, bottom := sc.PixelToTerminal(r.Right(), r.Bottom())
	return sc.ClampToCanvas(types.Rect{X: x, Y: y, Width: right - x, Height: bottom - y})
}

// ClampToCanvas keeps a box inside the canvas
func (sc *ScalingContext) ClampToCanvas(r types.Rect) types.Rect {
	// Shift the origin onto the canvas, shrinking the box
	if r.X < 0 {
		r.Width += r.X
		r.X = 0
	}
	if r.Y < 0 {
		r.Height += r.Y
		r.Y = 0
	}

	// Cut at the far edges
	r.Width = min(r.Width, sc.TermWidth-r.X)
	r.Height = min(r.Height, sc.TermHeight-r.Y)

	r.Width = max(r.Width, 3)
	r.Height = max(r.Height, 2)
	return r
}
