package vmath

import "github.com/lixenwraith/townhold/core"

// AreaContains checks if point is within area
func AreaContains(a core.Area, x, y int) bool {
	return x >= a.X && x < a.X+a.Width && y >= a.Y && y < a.Y+a.Height
}

// AreaContainsPoint is AreaContains for a core.Point
func AreaContainsPoint(a core.Area, p core.Point) bool {
	return AreaContains(a, p.X, p.Y)
}

// AreaOverlap reports whether two areas share at least one cell
// Touching edges are not an overlap
func AreaOverlap(a, b core.Area) bool {
	return a.X < b.X+b.Width && b.X < a.X+a.Width &&
		a.Y < b.Y+b.Height && b.Y < a.Y+a.Height
}

// AreaCenteredOn returns a width×height area whose center cell is p
// Even sizes bias the origin up-left by width/2, height/2
func AreaCenteredOn(p core.Point, width, height int) core.Area {
	return core.Area{
		X:      p.X - width/2,
		Y:      p.Y - height/2,
		Width:  width,
		Height: height,
	}
}

// AreaCenter returns the center point of the area
func AreaCenter(a core.Area) core.Point {
	return core.Point{
		X: a.X + a.Width/2,
		Y: a.Y + a.Height/2,
	}
}
