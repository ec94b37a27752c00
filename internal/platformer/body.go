package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Body is the kinematic primitive shared by every entity: a centre position
// and the footprint used for overlap tests.
type Body struct {
	Pos  core.Vec2
	W, H float64
}

// newBody creates a body sized to the given sprite kind.
func newBody(kind SpriteKind, pos core.Vec2) Body {
	w, h := kind.Size()
	return Body{Pos: pos, W: w, H: h}
}

// Rect returns the axis-aligned bounding box.
func (b Body) Rect() core.Rect {
	return core.RectAround(b.Pos, b.W, b.H)
}

// Top returns the y-coordinate of the top edge.
func (b Body) Top() float64 {
	return b.Pos.Y - b.H/2
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Body) Bottom() float64 {
	return b.Pos.Y + b.H/2
}

// SetBottom moves the body vertically so its bottom edge sits at y.
func (b *Body) SetBottom(y float64) {
	b.Pos.Y = y - b.H/2
}

// Overlaps reports whether two bodies intersect.
func (b Body) Overlaps(other Body) bool {
	return core.Overlaps(b.Rect(), other.Rect())
}
