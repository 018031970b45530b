// Point extraction tool - dumps the sample points of an image as CSV.
//
// Usage: go run ./cmd/pointfield -in assets/silhouette.png -mode silhouette > cat.csv
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/quietmice/assets"
	"github.com/pthm-cable/quietmice/config"
	"github.com/pthm-cable/quietmice/pointfield"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	in := flag.String("in", "", "Input image (PNG or JPEG)")
	mode := flag.String("mode", "silhouette", "Extraction mode: silhouette or frame")
	budget := flag.Int("budget", 0, "Downsample to at most N points (0 = keep all)")
	scale := flag.Float64("scale", 1, "Multiply every point by this factor")
	out := flag.String("out", "", "Output CSV path (empty = stdout)")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := run(*configPath, *in, *mode, *budget, *scale, *out); err != nil {
		slog.Error("extraction failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath, in, mode string, budget int, scale float64, out string) error {
	if in == "" {
		return fmt.Errorf("missing -in")
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	img, err := assets.LoadImageFile(in)
	if err != nil {
		return err
	}

	var opt pointfield.Options
	switch mode {
	case "silhouette":
		opt = pointfield.SilhouetteOptions(cfg.Assets.SilhouetteStride, cfg.Assets.AlphaMin, cfg.Assets.MaxLuma)
	case "frame":
		opt = pointfield.FrameOptions(cfg.Assets.FrameStride, cfg.Assets.AlphaMin)
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}

	pts := pointfield.Extract(assets.NewImageBitmap(img), opt)
	if budget > 0 {
		pts = pointfield.Downsample(pts, budget)
	}
	if scale != 1 {
		pts = pointfield.Scale(pts, scale)
	}

	w := os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}
	if err := gocsv.Marshal(&pts, w); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	slog.Info("points extracted", "input", in, "mode", mode, "points", len(pts))
	return nil
}
