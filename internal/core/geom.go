// Package core provides fundamental types and utilities for the platformer.
// It contains no external dependencies (especially no Bubble Tea or Ebiten) to
// keep game logic pure and testable.
package core

import "math"

// Vec2 is a position in screen-space pixels.
// The origin is the top-left corner and y grows downward.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the component-wise sum.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAround creates a w×h rectangle centred on c.
func RectAround(c Vec2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 {
	return r.X
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 {
	return r.Y
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Intersects returns true if this rectangle overlaps with another.
// Edges are closed intervals, so rectangles that share an edge overlap.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X > other.Right() || other.X > r.Right() {
		return false
	}
	if r.Y > other.Bottom() || other.Y > r.Bottom() {
		return false
	}
	return true
}

// Overlaps reports whether a and b intersect.
func Overlaps(a, b Rect) bool {
	return a.Intersects(b)
}

// Contains returns true if the point p is inside this rectangle (edges included).
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
