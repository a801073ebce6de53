package components

// Body holds the fixed size of an entity. It never changes after construction.
type Body struct {
	Width  float32
	Height float32
}

// Rect returns the axis-aligned bounds of a body at a position.
func (b Body) Rect(p Position) (x0, y0, x1, y1 float32) {
	return p.X, p.Y, p.X + b.Width, p.Y + b.Height
}

// CenterX returns the horizontal center of a body at a position.
func (b Body) CenterX(p Position) float32 {
	return p.X + b.Width/2
}
