package core

// Area represents a rectangular footprint on the grid
// Extents are half-open: [X, X+Width) × [Y, Y+Height)
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions (minimum 1x1)
}

// Origin returns the top-left cell of the area
func (a Area) Origin() Point {
	return Point{X: a.X, Y: a.Y}
}
