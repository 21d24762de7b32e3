package entity

// Point is a position in pane-local or screen coordinates.
type Point struct {
	X, Y float64
}

// Add returns the point translated by another point.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the vector from o to p.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside the rectangle.
// The left/top edges are inclusive, right/bottom exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Intersects reports whether two rectangles overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Insets describes padding around a rectangular region.
type Insets struct {
	Top, Right, Bottom, Left float64
}

// Horizontal returns the combined left and right insets.
func (i Insets) Horizontal() float64 { return i.Left + i.Right }

// Vertical returns the combined top and bottom insets.
func (i Insets) Vertical() float64 { return i.Top + i.Bottom }
