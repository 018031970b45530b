package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/quietmice/assets"
	"github.com/pthm-cable/quietmice/audio"
	"github.com/pthm-cable/quietmice/config"
	"github.com/pthm-cable/quietmice/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics or audio")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	scriptSpec := flag.String("script", "", "Trigger cues as tick:trigger pairs, e.g. 60:advance,300:cat,900:rats")
	noAudio := flag.Bool("no-audio", false, "Disable sound output")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	script, err := game.ParseScript(*scriptSpec)
	if err != nil {
		slog.Error("invalid script", "error", err)
		os.Exit(1)
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	statsWindowSec := cfg.Telemetry.StatsWindow
	if *statsWindow > 0 {
		statsWindowSec = *statsWindow
	}

	opts := game.Options{
		Seed:           rngSeed,
		LogStats:       *logStats,
		StatsWindowSec: statsWindowSec,
		OutputDir:      *outputDir,
		Headless:       *headless,
		Assets:         assets.Load(cfg.Assets, cfg.Canvas.Width, cfg.Canvas.Height),
		Script:         script,
	}

	if *headless {
		// Headless mode - pure CPU simulation, no raylib or speaker needed
		g := game.NewGameWithOptions(opts)
		defer g.Unload()

		slog.Info("starting headless run",
			"seed", rngSeed,
			"max_ticks", *maxTicks,
			"cues", len(script),
		)

		for {
			g.UpdateHeadless()

			if *maxTicks > 0 && g.Tick() >= *maxTicks {
				slog.Info("max ticks reached", "tick", g.Tick(), "state", g.State().String())
				return
			}
		}
	}

	if cfg.Audio.Enabled && !*noAudio {
		bank := audio.NewSynthBank(cfg.Audio.SampleRate)
		if err := bank.Start(time.Duration(cfg.Audio.BufferMS) * time.Millisecond); err != nil {
			slog.Warn("audio unavailable, running silent", "error", err)
		} else {
			defer bank.Close()
			opts.Bank = bank
		}
	}

	// Graphical mode
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Quiet Mice")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g := game.NewGameWithOptions(opts)
	defer g.Unload()
	g.InitGraphics()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if *maxTicks > 0 && g.Tick() >= *maxTicks {
			break
		}
	}
}
