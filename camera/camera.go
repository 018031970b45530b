// Package camera maps the fixed logical canvas onto the window.
package camera

// Camera fits the canvas inside the viewport, preserving aspect ratio and
// centering it with letterbox bars on the longer axis.
type Camera struct {
	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Canvas dimensions (logical drawing area)
	WorldW, WorldH float32

	// Derived fit: uniform scale and top-left offset of the canvas on screen
	Zoom             float32
	OffsetX, OffsetY float32
}

// New creates a camera fitting a worldW x worldH canvas into the viewport.
func New(viewportW, viewportH, worldW, worldH float32) *Camera {
	c := &Camera{WorldW: worldW, WorldH: worldH}
	c.Resize(viewportW, viewportH)
	return c
}

// Resize updates viewport dimensions and recomputes the fit.
func (c *Camera) Resize(viewportW, viewportH float32) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	if c.WorldW <= 0 || c.WorldH <= 0 {
		c.Zoom = 1
		c.OffsetX, c.OffsetY = 0, 0
		return
	}
	c.Zoom = min(viewportW/c.WorldW, viewportH/c.WorldH)
	c.OffsetX = (viewportW - c.WorldW*c.Zoom) / 2
	c.OffsetY = (viewportH - c.WorldH*c.Zoom) / 2
}

// WorldToScreen converts canvas coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	return c.OffsetX + wx*c.Zoom, c.OffsetY + wy*c.Zoom
}

// ScreenToWorld converts screen coordinates to canvas coordinates.
// Points in the letterbox map outside [0, World].
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	return (sx - c.OffsetX) / c.Zoom, (sy - c.OffsetY) / c.Zoom
}

// Scale converts a canvas length to screen pixels.
func (c *Camera) Scale(l float32) float32 {
	return l * c.Zoom
}

// IsVisible returns true if a circle at (wx, wy) with given radius
// overlaps the canvas (conservative check for culling).
func (c *Camera) IsVisible(wx, wy, radius float32) bool {
	return wx+radius >= 0 && wx-radius <= c.WorldW &&
		wy+radius >= 0 && wy-radius <= c.WorldH
}

// CanvasRect returns the on-screen rectangle covered by the canvas.
func (c *Camera) CanvasRect() (x, y, w, h float32) {
	return c.OffsetX, c.OffsetY, c.WorldW * c.Zoom, c.WorldH * c.Zoom
}
