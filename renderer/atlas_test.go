package renderer

import (
	"image"
	"image/color"
	"testing"
)

func TestSourceRect(t *testing.T) {
	tests := []struct {
		name     string
		col, row int
		want     Rect
	}{
		{"origin", 0, 0, Rect{0, 0, 18, 18}},
		{"last cell", 59, 74, Rect{1062, 1332, 18, 18}},
		{"middle", 30, 10, Rect{540, 180, 18, 18}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SourceRect(tt.col, tt.row, 60, 75, 1080, 1350)
			if got != tt.want {
				t.Errorf("SourceRect = %+v, want %+v", got, tt.want)
			}
		})
	}

	if got := SourceRect(1, 1, 0, 0, 100, 100); got != (Rect{}) {
		t.Errorf("empty grid should yield zero rect, got %+v", got)
	}
}

// quadrants returns a 4x4 image split into four solid colored 2x2 cells.
func quadrants() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	cols := [2][2]color.NRGBA{
		{{R: 255, A: 255}, {G: 255, A: 255}},
		{{B: 255, A: 255}, {R: 255, G: 255, A: 255}},
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, cols[y/2][x/2])
		}
	}
	return img
}

func TestBuildAtlasTiles(t *testing.T) {
	a := BuildAtlas(quadrants(), 2, 2, 10)

	if got := a.Image.Bounds(); got != image.Rect(0, 0, 20, 20) {
		t.Fatalf("atlas bounds = %v", got)
	}

	// Tile centers carry the cell color
	want := map[[2]int]color.NRGBA{
		{0, 0}: {R: 255, A: 255},
		{1, 0}: {G: 255, A: 255},
		{0, 1}: {B: 255, A: 255},
		{1, 1}: {R: 255, G: 255, A: 255},
	}
	for cell, c := range want {
		r := a.TileRect(cell[0], cell[1])
		got := a.Image.NRGBAAt(r.Min.X+5, r.Min.Y+5)
		if got != c {
			t.Errorf("tile %v center = %v, want %v", cell, got, c)
		}
	}
}

func TestBuildAtlasClipsCorners(t *testing.T) {
	a := BuildAtlas(quadrants(), 2, 2, 10)

	for _, p := range []image.Point{{0, 0}, {9, 0}, {0, 9}, {19, 19}, {10, 10}} {
		if got := a.Image.NRGBAAt(p.X, p.Y); got.A != 0 {
			t.Errorf("corner %v alpha = %d, want 0", p, got.A)
		}
	}
	// Just inside the 4.5px radius
	if got := a.Image.NRGBAAt(5, 1); got.A == 0 {
		t.Error("pixel inside the clip circle should be opaque")
	}
}

func TestBuildAtlasNilMosaic(t *testing.T) {
	a := BuildAtlas(nil, 3, 2, 4)
	if got := a.Image.Bounds(); got != image.Rect(0, 0, 12, 8) {
		t.Errorf("bounds = %v", got)
	}
	if a.Image.NRGBAAt(2, 2).A != 0 {
		t.Error("nil mosaic should leave the atlas transparent")
	}
}

func TestRecorderReset(t *testing.T) {
	var r Recorder
	var s Surface = &r
	s.DrawSprite(SpriteCmd{X: 1})
	s.DrawCircle(CircleCmd{Radius: 6})
	s.DrawCircle(CircleCmd{Radius: 6})

	if len(r.Sprites) != 1 || len(r.Circles) != 2 {
		t.Fatalf("recorded %d sprites, %d circles", len(r.Sprites), len(r.Circles))
	}
	r.Reset()
	if len(r.Sprites) != 0 || len(r.Circles) != 0 {
		t.Error("reset should drop commands")
	}
}
