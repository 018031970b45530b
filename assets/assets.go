// Package assets loads the mosaic, silhouette and figure-frame images and
// adapts them for point extraction and rendering.
package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"

	"golang.org/x/image/draw"

	"github.com/pthm-cable/quietmice/config"
	"github.com/pthm-cable/quietmice/pointfield"
)

// ErrAssetUnavailable reports an image that could not be loaded or decoded.
// Callers degrade rather than fail: missing images yield empty point sets or
// skipped sprites.
var ErrAssetUnavailable = errors.New("asset unavailable")

// ImageBitmap adapts an image.Image to pointfield.Bitmap.
type ImageBitmap struct {
	img image.Image
	min image.Point
	w   int
	h   int
}

var _ pointfield.Bitmap = (*ImageBitmap)(nil)

// NewImageBitmap wraps img. Coordinates are relative to its bounds' origin.
func NewImageBitmap(img image.Image) *ImageBitmap {
	b := img.Bounds()
	return &ImageBitmap{img: img, min: b.Min, w: b.Dx(), h: b.Dy()}
}

func (b *ImageBitmap) Width() int  { return b.w }
func (b *ImageBitmap) Height() int { return b.h }

func (b *ImageBitmap) RGBAAt(x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(b.img.At(b.min.X+x, b.min.Y+y)).(color.NRGBA)
}

// LoadImageFile decodes a PNG or JPEG file.
func LoadImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrAssetUnavailable, path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", ErrAssetUnavailable, path, err)
	}
	return img, nil
}

// FitCover resizes img so it covers a w x h canvas: images wider than the
// canvas aspect are scaled to its height, others to its width. Aspect ratio
// is preserved.
func FitCover(img image.Image, w, h int) *image.NRGBA {
	b := img.Bounds()
	iw, ih := b.Dx(), b.Dy()
	if iw == 0 || ih == 0 || w <= 0 || h <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}

	var dw, dh int
	if float64(iw)/float64(ih) > float64(w)/float64(h) {
		dh = h
		dw = int(float64(iw) * float64(h) / float64(ih))
	} else {
		dw = w
		dh = int(float64(ih) * float64(w) / float64(iw))
	}

	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Set holds everything loaded at startup. Nil fields mark unavailable images.
type Set struct {
	Mosaic     *image.NRGBA // resized to cover the canvas
	Silhouette *ImageBitmap
	Frames     []*ImageBitmap // len == configured frame count, entries may be nil

	Missing []string // paths that failed to load
}

// Load reads every configured image. Failures are logged and leave the
// corresponding field nil; Load itself never fails.
func Load(cfg config.AssetsConfig, canvasW, canvasH int) *Set {
	s := &Set{}

	if img, err := LoadImageFile(cfg.Mosaic); err != nil {
		slog.Warn("mosaic unavailable, sprites disabled", "error", err)
		s.Missing = append(s.Missing, cfg.Mosaic)
	} else {
		s.Mosaic = FitCover(img, canvasW, canvasH)
	}

	if img, err := LoadImageFile(cfg.Silhouette); err != nil {
		slog.Warn("silhouette unavailable, formation will be empty", "error", err)
		s.Missing = append(s.Missing, cfg.Silhouette)
	} else {
		s.Silhouette = NewImageBitmap(img)
	}

	s.Frames = make([]*ImageBitmap, len(cfg.Frames))
	for i, path := range cfg.Frames {
		img, err := LoadImageFile(path)
		if err != nil {
			slog.Warn("figure frame unavailable", "frame", i, "error", err)
			s.Missing = append(s.Missing, path)
			continue
		}
		s.Frames[i] = NewImageBitmap(img)
	}
	return s
}

// SilhouettePoints extracts the formation targets, anchored to the canvas
// bottom and downsampled to at most budget points.
func (s *Set) SilhouettePoints(cfg config.AssetsConfig, canvasH float64, budget int) []pointfield.Point {
	if s.Silhouette == nil {
		return nil
	}
	opt := pointfield.SilhouetteOptions(cfg.SilhouetteStride, cfg.AlphaMin, cfg.MaxLuma)
	opt.OffsetY = canvasH - float64(s.Silhouette.Height())
	return pointfield.Downsample(pointfield.Extract(s.Silhouette, opt), budget)
}

// FramePoints extracts the body points of every animation frame.
// Unavailable frames yield empty entries.
func (s *Set) FramePoints(cfg config.AssetsConfig) [][]pointfield.Point {
	out := make([][]pointfield.Point, len(s.Frames))
	opt := pointfield.FrameOptions(cfg.FrameStride, cfg.AlphaMin)
	for i, f := range s.Frames {
		if f == nil {
			continue
		}
		out[i] = pointfield.Extract(f, opt)
	}
	return out
}
