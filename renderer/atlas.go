package renderer

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Atlas packs every mosaic cell into a square tile, already clipped to the
// sprite circle, so a frame is a run of plain textured quads.
type Atlas struct {
	Image      *image.NRGBA
	Cols, Rows int
	Tile       int
}

// TileRect returns the atlas pixels holding cell (col, row).
func (a *Atlas) TileRect(col, row int) image.Rectangle {
	x, y := col*a.Tile, row*a.Tile
	return image.Rect(x, y, x+a.Tile, y+a.Tile)
}

// BuildAtlas resamples mosaic into a cols x rows atlas of tile-sized cells.
// Pixels outside the clip circle are left transparent.
func BuildAtlas(mosaic image.Image, cols, rows, tile int) *Atlas {
	if tile < 1 {
		tile = 1
	}
	a := &Atlas{
		Image: image.NewNRGBA(image.Rect(0, 0, cols*tile, rows*tile)),
		Cols:  cols,
		Rows:  rows,
		Tile:  tile,
	}
	if mosaic == nil || cols <= 0 || rows <= 0 {
		return a
	}

	b := mosaic.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	for col := 0; col < cols; col++ {
		for row := 0; row < rows; row++ {
			src := SourceRect(col, row, cols, rows, w, h)
			sr := image.Rect(
				b.Min.X+int(src.X), b.Min.Y+int(src.Y),
				b.Min.X+int(src.X+src.W), b.Min.Y+int(src.Y+src.H),
			)
			if sr.Empty() {
				continue
			}
			draw.ApproxBiLinear.Scale(a.Image, a.TileRect(col, row), mosaic, sr, draw.Src, nil)
		}
	}
	a.clip()
	return a
}

// clip clears every pixel outside the per-tile circle.
func (a *Atlas) clip() {
	t := float64(a.Tile)
	c := t / 2
	r2 := ClipFraction * t * ClipFraction * t

	// Mask is the same for every tile
	inside := make([]bool, a.Tile*a.Tile)
	for y := 0; y < a.Tile; y++ {
		for x := 0; x < a.Tile; x++ {
			dx, dy := float64(x)+0.5-c, float64(y)+0.5-c
			inside[y*a.Tile+x] = dx*dx+dy*dy <= r2
		}
	}

	bounds := a.Image.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		ty := y % a.Tile
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if !inside[ty*a.Tile+x%a.Tile] {
				a.Image.SetNRGBA(x, y, color.NRGBA{})
			}
		}
	}
}
