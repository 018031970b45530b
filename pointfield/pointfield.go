// Package pointfield converts bitmaps into sparse sets of target coordinates.
//
// Extraction runs once per image at startup. Results are plain slices and are
// never recomputed while the animation runs.
package pointfield

import (
	"image/color"
	"math"
)

// Bitmap is the read-only pixel source used during extraction.
type Bitmap interface {
	Width() int
	Height() int
	// RGBAAt returns the non-premultiplied color at (x, y).
	RGBAAt(x, y int) color.NRGBA
}

// Point is a 2D coordinate in canvas space.
type Point struct {
	X float64 `csv:"x"`
	Y float64 `csv:"y"`
}

// Options controls how a bitmap is sampled.
type Options struct {
	Stride   int     // sample every Stride pixels on both axes
	AlphaMin uint8   // pixel qualifies only if alpha > AlphaMin
	MaxLuma  float64 // if > 0, pixel also needs mean(R,G,B) < MaxLuma (ink, not background)
	OffsetX  float64 // added to every emitted point
	OffsetY  float64
}

// SilhouetteOptions samples dark opaque ink on a fine stride.
func SilhouetteOptions(stride int, alphaMin uint8, maxLuma float64) Options {
	return Options{Stride: stride, AlphaMin: alphaMin, MaxLuma: maxLuma}
}

// FrameOptions samples any opaque pixel on a coarse stride.
func FrameOptions(stride int, alphaMin uint8) Options {
	return Options{Stride: stride, AlphaMin: alphaMin}
}

// Extract scans b row by row and returns every qualifying sample point.
// A nil bitmap or a bitmap with no qualifying pixels yields an empty slice.
func Extract(b Bitmap, opt Options) []Point {
	if b == nil {
		return nil
	}
	stride := opt.Stride
	if stride < 1 {
		stride = 1
	}

	w, h := b.Width(), b.Height()
	var pts []Point
	for y := 0; y < h; y += stride {
		for x := 0; x < w; x += stride {
			c := b.RGBAAt(x, y)
			if c.A <= opt.AlphaMin {
				continue
			}
			if opt.MaxLuma > 0 && Luma(c) >= opt.MaxLuma {
				continue
			}
			pts = append(pts, Point{X: float64(x) + opt.OffsetX, Y: float64(y) + opt.OffsetY})
		}
	}
	return pts
}

// Luma is the unweighted mean of the color channels.
func Luma(c color.NRGBA) float64 {
	return (float64(c.R) + float64(c.G) + float64(c.B)) / 3
}

// Downsample returns at most budget points chosen by even stride selection,
// pts[floor(i*len/budget)]. If pts already fits the budget it is returned as-is.
func Downsample(pts []Point, budget int) []Point {
	if budget <= 0 {
		return nil
	}
	if len(pts) <= budget {
		return pts
	}

	step := float64(len(pts)) / float64(budget)
	out := make([]Point, budget)
	for i := range out {
		out[i] = pts[int(math.Floor(float64(i)*step))]
	}
	return out
}

// Scale multiplies every point by s, returning a new slice.
func Scale(pts []Point, s float64) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{X: p.X * s, Y: p.Y * s}
	}
	return out
}
