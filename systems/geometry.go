// Package systems contains the per-tick rules applied to ECS components.
package systems

import "github.com/pthm-cable/riverraid/components"

// Rect is an axis-aligned bounding box in world coordinates.
type Rect struct {
	X, Y, W, H float32
}

// RectOf returns the bounds of a body at a position.
func RectOf(pos components.Position, body components.Body) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: body.Width, H: body.Height}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float32 {
	return r.X + r.W
}

// Top returns the y-coordinate of the far edge (largest y).
func (r Rect) Top() float32 {
	return r.Y + r.H
}

// Overlaps reports whether two boxes share any area. Touching edges do not count.
// This is the sole collision primitive; fast movers can tunnel through thin
// targets between frames.
func (r Rect) Overlaps(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Top() || other.Y >= r.Top() {
		return false
	}
	return true
}

// Viewport is the visible band of the world: y in [Distance, Distance+Height].
type Viewport struct {
	Distance float32
	Width    float32
	Height   float32
}

// Bottom returns the trailing edge.
func (v Viewport) Bottom() float32 {
	return v.Distance
}

// Top returns the leading edge.
func (v Viewport) Top() float32 {
	return v.Distance + v.Height
}

// Behind reports whether a box has scrolled past the trailing edge by more than margin.
func (v Viewport) Behind(r Rect, margin float32) bool {
	return r.Top() < v.Bottom()-margin
}

// Ahead reports whether a box is past the leading edge by more than margin.
func (v Viewport) Ahead(r Rect, margin float32) bool {
	return r.Y > v.Top()+margin
}

// OutsideX reports whether a box has left the viewport horizontally.
func (v Viewport) OutsideX(r Rect) bool {
	return r.Right() < 0 || r.X > v.Width
}
