package types

// Rect represents pixel bounds in virtual desktop coordinates
type Rect struct {
	X      int `yaml:"x" json:"x"`           // Left edge (pixels from desktop left)
	Y      int `yaml:"y" json:"y"`           // Top edge (pixels from desktop top)
	Width  int `yaml:"width" json:"width"`   // Width in pixels
	Height int `yaml:"height" json:"height"` // Height in pixels
}

// Point represents a 2D pixel coordinate
type Point struct {
	X int
	Y int
}

// Right returns the exclusive right edge
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the exclusive bottom edge
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Center returns the center point of a Rect
func (r Rect) Center() Point {
	return Point{
		X: r.X + r.Width/2,
		Y: r.Y + r.Height/2,
	}
}

// Contains checks if a point is inside the rect.
// The rect is half-open: the left and top edges belong to it, the right and
// bottom edges belong to whatever sits next to it.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() &&
		p.Y >= r.Y && p.Y < r.Bottom()
}

// Overlap returns the area of intersection between two Rects
func (r Rect) Overlap(other Rect) int {
	left := max(r.X, other.X)
	right := min(r.Right(), other.Right())
	top := max(r.Y, other.Y)
	bottom := min(r.Bottom(), other.Bottom())

	if left >= right || top >= bottom {
		return 0
	}
	return (right - left) * (bottom - top)
}

// Empty reports whether the rect has no area
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}
