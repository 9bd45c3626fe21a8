package core

// Point is a single grid cell, compared by value
type Point struct {
	X, Y int
}

// Add returns the point offset by dx, dy
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}
