// Package core provides fundamental types and utilities shared by the simulation
// and the terminal host. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

import "math"

// Rect is a cell-space box used for overlay panels.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Circle is a round collision body in canvas coordinates.
type Circle struct {
	X, Y float64 // Center
	R    float64 // Radius
}

// Overlaps reports whether the distance between the centers is strictly
// less than the sum of the radii. Touching circles do not overlap.
func (c Circle) Overlaps(o Circle) bool {
	return Dist(c.X, c.Y, o.X, o.Y) < c.R+o.R
}

// Top returns the y-coordinate of the circle's upper edge.
func (c Circle) Top() float64 { return c.Y - c.R }

// Bottom returns the y-coordinate of the circle's lower edge.
func (c Circle) Bottom() float64 { return c.Y + c.R }

// Left returns the x-coordinate of the circle's left edge.
func (c Circle) Left() float64 { return c.X - c.R }

// Right returns the x-coordinate of the circle's right edge.
func (c Circle) Right() float64 { return c.X + c.R }

// EffectiveRadius returns radius when it is set, otherwise half of the
// larger side of a width x height box.
func EffectiveRadius(radius, width, height float64) float64 {
	if radius > 0 {
		return radius
	}
	return math.Max(width, height) / 2
}

// Dist returns the Euclidean distance between two points.
func Dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
