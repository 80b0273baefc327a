// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package geom holds the pointer geometry shared by the drag core and
// its rendering surfaces: points, axis-aligned rectangles, and the
// conversion from terminal cells.
package geom

// Point is a pointer position in surface coordinates.
type Point struct {
	X float64
	Y float64
}

// CellPoint converts a terminal cell coordinate to a Point.
func CellPoint(x, y int) Point {
	return Point{X: float64(x), Y: float64(y)}
}

// Add returns point + other.
func (point Point) Add(other Point) Point {
	return Point{X: point.X + other.X, Y: point.Y + other.Y}
}

// Sub returns point - other.
func (point Point) Sub(other Point) Point {
	return Point{X: point.X - other.X, Y: point.Y - other.Y}
}

// Rect is an axis-aligned bounding box. X and Y are the top-left
// corner.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// CellRect builds a Rect from terminal cell coordinates and sizes.
func CellRect(x, y, width, height int) Rect {
	return Rect{X: float64(x), Y: float64(y), Width: float64(width), Height: float64(height)}
}

// TopLeft returns the top-left corner.
func (rect Rect) TopLeft() Point {
	return Point{X: rect.X, Y: rect.Y}
}

// MidY returns the vertical midpoint: top + height/2.
func (rect Rect) MidY() float64 {
	return rect.Y + rect.Height/2
}

// Contains reports whether point lies inside the rectangle. The left
// and top edges are inclusive, the right and bottom edges exclusive, so
// adjacent rectangles never both contain the same point.
func (rect Rect) Contains(point Point) bool {
	return point.X >= rect.X && point.X < rect.X+rect.Width &&
		point.Y >= rect.Y && point.Y < rect.Y+rect.Height
}

// Empty reports whether the rectangle has no area.
func (rect Rect) Empty() bool {
	return rect.Width <= 0 || rect.Height <= 0
}
