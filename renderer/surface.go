// Package renderer turns scene state into draw commands and plays them onto
// a drawing surface.
package renderer

import "image/color"

// Rect is an axis-aligned rectangle in source image pixels.
type Rect struct {
	X, Y, W, H float64
}

// SourceRect returns the slice of a w x h mosaic that grid cell (col, row)
// samples.
func SourceRect(col, row, cols, rows int, w, h float64) Rect {
	if cols <= 0 || rows <= 0 {
		return Rect{}
	}
	return Rect{
		X: float64(col) / float64(cols) * w,
		Y: float64(row) / float64(rows) * h,
		W: w / float64(cols),
		H: h / float64(rows),
	}
}

// SpriteCmd draws one mosaic cell centered at (X, Y), clipped to a circle.
// Col and Row identify the cell so surfaces with a prebuilt atlas can skip
// resampling Src.
type SpriteCmd struct {
	X, Y       float64
	Src        Rect
	Size       float64
	ClipRadius float64
	Col, Row   int
}

// CircleCmd draws a filled, stroked circle.
type CircleCmd struct {
	X, Y   float64
	Radius float64
	Fill   color.NRGBA
	Stroke color.NRGBA
}

// Surface accepts one frame of draw commands in canvas coordinates.
type Surface interface {
	DrawSprite(SpriteCmd)
	DrawCircle(CircleCmd)
}

// Figure and debris palette.
var (
	BodyFill   = color.NRGBA{R: 20, G: 20, B: 20, A: 255}
	BodyStroke = color.NRGBA{R: 60, G: 60, B: 60, A: 120}
	RingStroke = color.NRGBA{R: 255, G: 255, B: 255, A: 80}
)

// ClipFraction is the sprite clip radius relative to its size.
const ClipFraction = 0.45

// Recorder captures commands in memory. Used by headless runs and tests.
type Recorder struct {
	Sprites []SpriteCmd
	Circles []CircleCmd
}

var _ Surface = (*Recorder)(nil)

func (r *Recorder) DrawSprite(c SpriteCmd) { r.Sprites = append(r.Sprites, c) }
func (r *Recorder) DrawCircle(c CircleCmd) { r.Circles = append(r.Circles, c) }

// Reset drops recorded commands, keeping capacity for the next frame.
func (r *Recorder) Reset() {
	r.Sprites = r.Sprites[:0]
	r.Circles = r.Circles[:0]
}
