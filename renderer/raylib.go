package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/quietmice/camera"
)

// RaylibSurface draws commands into the current raylib frame, mapping canvas
// coordinates through the camera.
type RaylibSurface struct {
	cam   *camera.Camera
	atlas *Atlas
	tex   rl.Texture2D
	ready bool
}

var _ Surface = (*RaylibSurface)(nil)

// NewRaylibSurface creates a surface. atlas may be nil, in which case sprites
// are skipped. Must be called after the window is created.
func NewRaylibSurface(cam *camera.Camera, atlas *Atlas) *RaylibSurface {
	s := &RaylibSurface{cam: cam, atlas: atlas}
	if atlas != nil && !atlas.Image.Bounds().Empty() {
		img := rl.NewImageFromImage(atlas.Image)
		s.tex = rl.LoadTextureFromImage(img)
		rl.SetTextureFilter(s.tex, rl.FilterBilinear)
		rl.UnloadImage(img)
		s.ready = true
	}
	return s
}

// DrawBackground clears the window and fills the canvas area.
func (s *RaylibSurface) DrawBackground(rgb [3]uint8) {
	rl.ClearBackground(rl.Black)
	x, y, w, h := s.cam.CanvasRect()
	rl.DrawRectangleRec(rl.Rectangle{X: x, Y: y, Width: w, Height: h},
		rl.Color{R: rgb[0], G: rgb[1], B: rgb[2], A: 255})
}

func (s *RaylibSurface) DrawSprite(c SpriteCmd) {
	if !s.ready {
		return
	}
	sx, sy := s.cam.WorldToScreen(float32(c.X), float32(c.Y))
	size := s.cam.Scale(float32(c.Size))

	tr := s.atlas.TileRect(c.Col, c.Row)
	srcRect := rl.Rectangle{
		X:      float32(tr.Min.X),
		Y:      float32(tr.Min.Y),
		Width:  float32(tr.Dx()),
		Height: float32(tr.Dy()),
	}
	dstRect := rl.Rectangle{X: sx - size/2, Y: sy - size/2, Width: size, Height: size}
	rl.DrawTexturePro(s.tex, srcRect, dstRect, rl.Vector2{}, 0, rl.White)

	rl.DrawCircleLines(int32(sx), int32(sy), s.cam.Scale(float32(c.ClipRadius)), toRL(RingStroke))
}

func (s *RaylibSurface) DrawCircle(c CircleCmd) {
	sx, sy := s.cam.WorldToScreen(float32(c.X), float32(c.Y))
	r := s.cam.Scale(float32(c.Radius))
	center := rl.Vector2{X: sx, Y: sy}
	rl.DrawCircleV(center, r, toRL(c.Fill))
	rl.DrawCircleLinesV(center, r, toRL(c.Stroke))
}

// Unload releases the atlas texture.
func (s *RaylibSurface) Unload() {
	if s.ready {
		rl.UnloadTexture(s.tex)
		s.ready = false
	}
}

func toRL(c color.NRGBA) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
