// Package camera maps the scrolling world onto the screen.
package camera

// Camera controls the viewport into the river. World y grows with scroll
// distance; screen y grows downward, so the leading edge is drawn at the top.
type Camera struct {
	// Distance is the trailing edge of the visible band in world units
	Distance float32
	// Offset shifts the band while a slide approaches its target
	Offset float32

	// Scale from world units to screen pixels
	Zoom float32

	// World band size (viewport in world units)
	WorldW, WorldH float32

	// Screen size in pixels
	ScreenW, ScreenH float32
}

// New creates a camera showing a worldW x worldH band on a screen of the given size.
func New(screenW, screenH, worldW, worldH float32) *Camera {
	c := &Camera{
		WorldW: worldW,
		WorldH: worldH,
	}
	c.Resize(screenW, screenH)
	return c
}

// SetScroll moves the band.
func (c *Camera) SetScroll(distance, offset float32) {
	c.Distance = distance
	c.Offset = offset
}

// Bottom returns the world y at the bottom of the screen.
func (c *Camera) Bottom() float32 {
	return c.Distance + c.Offset
}

// Top returns the world y at the top of the screen.
func (c *Camera) Top() float32 {
	return c.Bottom() + c.WorldH
}

// originX centers the band horizontally when the screen is wider than the scaled world.
func (c *Camera) originX() float32 {
	return (c.ScreenW - c.WorldW*c.Zoom) / 2
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	sx = c.originX() + wx*c.Zoom
	sy = (c.WorldH - (wy - c.Bottom())) * c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	wx = (sx - c.originX()) / c.Zoom
	wy = c.Bottom() + c.WorldH - sy/c.Zoom
	return wx, wy
}

// RectToScreen converts a world box anchored at its lower-left corner into a
// screen rectangle anchored at its upper-left corner.
func (c *Camera) RectToScreen(x, y, w, h float32) (sx, sy, sw, sh float32) {
	sx, sy = c.WorldToScreen(x, y+h)
	return sx, sy, w * c.Zoom, h * c.Zoom
}

// IsVisible returns true if a box spanning [y, y+h] overlaps the band.
func (c *Camera) IsVisible(y, h float32) bool {
	return y+h >= c.Bottom() && y <= c.Top()
}

// Resize fits the band to a new screen size, keeping the aspect ratio.
func (c *Camera) Resize(screenW, screenH float32) {
	if screenW == c.ScreenW && screenH == c.ScreenH {
		return
	}
	c.ScreenW = screenW
	c.ScreenH = screenH
	c.Zoom = min(screenW/c.WorldW, screenH/c.WorldH)
	if c.Zoom <= 0 {
		c.Zoom = 1
	}
}
