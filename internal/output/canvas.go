package output

import (
	"strings"

	"github.com/yourusername/winswitch/internal/types"
)

// BoxStyle is the character set for one kind of border
type BoxStyle struct {
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	Horizontal  rune
	Vertical    rune
}

// Palette pairs the border used for monitors and windows with the heavier
// border that marks the focused window.
type Palette struct {
	Box   BoxStyle
	Focus BoxStyle
}

var (
	// ASCIIPalette draws with plain ASCII characters
	ASCIIPalette = Palette{
		Box:   BoxStyle{TopLeft: '+', TopRight: '+', BottomLeft: '+', BottomRight: '+', Horizontal: '-', Vertical: '|'},
		Focus: BoxStyle{TopLeft: '#', TopRight: '#', BottomLeft: '#', BottomRight: '#', Horizontal: '=', Vertical: '#'},
	}

	// UnicodePalette draws with box drawing characters
	UnicodePalette = Palette{
		Box:   BoxStyle{TopLeft: '┌', TopRight: '┐', BottomLeft: '└', BottomRight: '┘', Horizontal: '─', Vertical: '│'},
		Focus: BoxStyle{TopLeft: '╔', TopRight: '╗', BottomLeft: '╚', BottomRight: '╝', Horizontal: '═', Vertical: '║'},
	}
)

// Canvas is a fixed grid of terminal cells, stored row by row
type Canvas struct {
	Width   int
	Height  int
	cells   []rune
	palette Palette
}

// NewCanvas creates a blank canvas
func NewCanvas(width, height int, useUnicode bool) *Canvas {
	width, height = max(width, 0), max(height, 0)

	cells := make([]rune, width*height)
	for i := range cells {
		cells[i] = ' '
	}

	palette := ASCIIPalette
	if useUnicode {
		palette = UnicodePalette
	}

	return &Canvas{
		Width:   width,
		Height:  height,
		cells:   cells,
		palette: palette,
	}
}

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

// Set writes r at x, y. Cells off the canvas are ignored.
func (c *Canvas) Set(x, y int, r rune) {
	if c.inside(x, y) {
		c.cells[y*c.Width+x] = r
	}
}

// At returns the rune at x, y, or a space off the canvas
func (c *Canvas) At(x, y int) rune {
	if !c.inside(x, y) {
		return ' '
	}
	return c.cells[y*c.Width+x]
}

// DrawBox outlines r with the ordinary border
func (c *Canvas) DrawBox(r types.Rect) {
	c.drawBorder(r, c.palette.Box)
}

// DrawFocusedBox outlines r with the focus border
func (c *Canvas) DrawFocusedBox(r types.Rect) {
	c.drawBorder(r, c.palette.Focus)
}

func (c *Canvas) drawBorder(r types.Rect, s BoxStyle) {
	if r.Width < 2 || r.Height < 2 {
		return // no room for a border
	}
	right, bottom := r.Right()-1, r.Bottom()-1

	// Corners
	c.Set(r.X, r.Y, s.TopLeft)
	c.Set(right, r.Y, s.TopRight)
	c.Set(r.X, bottom, s.BottomLeft)
	c.Set(right, bottom, s.BottomRight)

	// Top and bottom edges
	for x := r.X + 1; x < right; x++ {
		c.Set(x, r.Y, s.Horizontal)
		c.Set(x, bottom, s.Horizontal)
	}

	// Left and right edges
	for y := r.Y + 1; y < bottom; y++ {
		c.Set(r.X, y, s.Vertical)
		c.Set(right, y, s.Vertical)
	}
}

// DrawText writes text from x, y, one rune per cell
func (c *Canvas) DrawText(x, y int, text string) {
	for _, r := range text {
		c.Set(x, y, r)
		x++
	}
}

// DrawTextCentered centres text in the width cells starting at x
func (c *Canvas) DrawTextCentered(x, y, width int, text string) {
	if width <= 0 {
		return
	}
	runes := []rune(text)
	if len(runes) >= width {
		// Cut to fit
		c.DrawText(x, y, string(runes[:width]))
		return
	}
	c.DrawText(x+(width-len(runes))/2, y, text)
}

// DrawLabeledBox outlines a monitor and sets its label into the top border,
// as in "+- 1 center ---+".
func (c *Canvas) DrawLabeledBox(r types.Rect, label string) {
	c.DrawBox(r)
	if label == "" || r.Width < 6 {
		return
	}
	c.DrawText(r.X+2, r.Y, " "+truncate(label, r.Width-6)+" ")
}

// DrawWindow outlines a window and writes its label on the first inner row.
// The focused window gets the focus border.
func (c *Canvas) DrawWindow(r types.Rect, label string, focused bool) {
	if focused {
		c.DrawFocusedBox(r)
	} else {
		c.DrawBox(r)
	}
	if r.Width > 2 && r.Height > 2 {
		c.DrawText(r.X+1, r.Y+1, truncate(label, r.Width-2))
	}
}

// String renders the canvas, trimming trailing spaces from each row
func (c *Canvas) String() string {
	var sb strings.Builder
	for y := 0; y < c.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		row := c.cells[y*c.Width : (y+1)*c.Width]
		sb.WriteString(strings.TrimRight(string(row), " "))
	}
	return sb.String()
}
