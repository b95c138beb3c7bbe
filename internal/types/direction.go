package types

// Direction represents navigation direction
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// String returns the string representation of a Direction
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Horizontal reports whether the direction moves along the X axis
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

// ParseDirection converts a string to Direction
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "left":
		return DirLeft, true
	case "right":
		return DirRight, true
	case "up":
		return DirUp, true
	case "down":
		return DirDown, true
	default:
		return 0, false
	}
}
