// Package game owns the scene: grid particles, walking figures, debris, the
// state machine that moves between them, and the audio cues that follow.
package game

import (
	"log/slog"
	"math/rand"

	"github.com/google/uuid"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/quietmice/assets"
	"github.com/pthm-cable/quietmice/audio"
	"github.com/pthm-cable/quietmice/camera"
	"github.com/pthm-cable/quietmice/components"
	"github.com/pthm-cable/quietmice/config"
	"github.com/pthm-cable/quietmice/pointfield"
	"github.com/pthm-cable/quietmice/renderer"
	"github.com/pthm-cable/quietmice/systems"
	"github.com/pthm-cable/quietmice/telemetry"
	"github.com/pthm-cable/quietmice/ui"
)

// Options configures a new game.
type Options struct {
	Config         *config.Config // nil = config.Cfg()
	Seed           int64
	LogStats       bool
	StatsWindowSec float64 // 0 = use config
	OutputDir      string  // empty = no CSV output
	Headless       bool
	Assets         *assets.Set    // nil = no images
	Bank           audio.ToneBank // nil = silent
	Script         Script
}

// Game is the simulation context. Every counter the scene needs is a field
// here; nothing lives at package level.
type Game struct {
	cfg *config.Config
	rng *rand.Rand

	// Grid particles are never created or destroyed after startup
	particles []components.GridParticle
	catPoints []pointfield.Point

	// Figures and debris come and go, so they live in the ECS world
	world        *ecs.World
	figureMap    *ecs.Map2[components.Position, components.Figure]
	figureFilter *ecs.Filter2[components.Position, components.Figure]
	debrisMap    *ecs.Map3[components.Position, components.Velocity, components.Debris]
	debrisFilter *ecs.Filter3[components.Position, components.Velocity, components.Debris]
	numFigures   int
	numDebris    int

	flow         *systems.FlowField
	motion       *systems.Motion
	debrisMotion *systems.DebrisMotion
	animator     *systems.FigureAnimator
	spawner      *systems.Spawner

	scheduler *Scheduler
	mapper    *audio.Mapper
	bank      audio.ToneBank
	gains     [audio.ToneCount]float64 // last targets sent to the bank

	// Scene state and the counters scoped to it
	state           State
	transitionTicks int
	climaxFired     bool

	tick   int
	paused bool
	script Script

	// Telemetry
	runID         string
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool

	// Rendering (graphics mode only)
	headless         bool
	mosaicW, mosaicH float64
	atlas            *renderer.Atlas
	camera           *camera.Camera
	surface          *renderer.RaylibSurface
	hud              *ui.HUD
	perfPanel        *ui.PerfPanel
	showStats        bool
}

// NewGameWithOptions creates a game in the GRID state.
func NewGameWithOptions(opts Options) *Game {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	world := ecs.NewWorld()
	g := &Game{
		cfg:          cfg,
		rng:          rand.New(rand.NewSource(opts.Seed)),
		world:        world,
		figureMap:    ecs.NewMap2[components.Position, components.Figure](world),
		figureFilter: ecs.NewFilter2[components.Position, components.Figure](world),
		debrisMap:    ecs.NewMap3[components.Position, components.Velocity, components.Debris](world),
		debrisFilter: ecs.NewFilter3[components.Position, components.Velocity, components.Debris](world),
		scheduler:    NewScheduler(),
		mapper:       audio.NewMapper(cfg.Audio, cfg.Formation.WanderTicks),
		bank:         opts.Bank,
		script:       opts.Script,
		runID:        uuid.NewString(),
		logStats:     opts.LogStats,
		headless:     opts.Headless,
	}
	if g.bank == nil {
		g.bank = audio.NullBank{}
	}

	bounds := systems.Bounds{Width: cfg.Derived.CanvasW, Height: cfg.Derived.CanvasH}
	g.flow = systems.NewFlowField(opts.Seed, cfg.Flow)
	g.motion = systems.NewMotion(cfg.Behavior, g.flow, bounds, g.rng)
	g.debrisMotion = systems.NewDebrisMotion(cfg.Debris, g.motion)
	g.spawner = systems.NewSpawner(cfg.Spawner)

	g.initParticles()

	// Extraction runs once, before the first tick
	set := opts.Assets
	if set == nil {
		set = &assets.Set{}
	}
	g.catPoints = set.SilhouettePoints(cfg.Assets, cfg.Derived.CanvasH, len(g.particles))
	g.animator = systems.NewFigureAnimator(cfg.Figures, set.FramePoints(cfg.Assets), bounds)
	if set.Mosaic != nil {
		b := set.Mosaic.Bounds()
		g.mosaicW, g.mosaicH = float64(b.Dx()), float64(b.Dy())
		if !opts.Headless {
			g.atlas = renderer.BuildAtlas(set.Mosaic, cfg.Grid.Cols, cfg.Grid.Rows, int(cfg.Derived.CellSize+0.5))
		}
	}

	// Telemetry
	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}
	g.collector = telemetry.NewCollector(g.runID, statsWindow, cfg.Physics.DT)
	g.perfCollector = telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow)
	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			slog.Error("failed to create output manager", "error", err)
		} else {
			g.outputManager = om
			slog.Info("writing run output", "dir", om.Dir())
			if err := om.WriteConfig(cfg); err != nil {
				slog.Error("failed to write config", "error", err)
			}
		}
	}

	for _, path := range set.Missing {
		g.writeEvent(telemetry.Event{Type: telemetry.EventAsset, Detail: path})
	}

	slog.Info("scene ready",
		"run_id", g.runID,
		"seed", opts.Seed,
		"particles", len(g.particles),
		"cat_points", len(g.catPoints),
		"frames", g.animator.FrameCount(),
		"mosaic", set.Mosaic != nil,
	)

	g.enterGrid()
	return g
}

// initParticles lays out one particle per mosaic cell, column by column.
func (g *Game) initParticles() {
	cols, rows := g.cfg.Grid.Cols, g.cfg.Grid.Rows
	cell := g.cfg.Derived.CellSize
	b := g.cfg.Behavior

	g.particles = make([]components.GridParticle, 0, cols*rows)
	for col := 0; col < cols; col++ {
		for row := 0; row < rows; row++ {
			homeX := float64(col)*cell + cell/2
			homeY := float64(row)*cell + cell/2
			speed := b.WanderSpeedMin + g.rng.Float64()*(b.WanderSpeedMax-b.WanderSpeedMin)
			g.particles = append(g.particles, components.NewGridParticle(col, row, homeX, homeY, speed))
		}
	}
}

// Update runs one frame in graphics mode: input, then a tick unless paused.
func (g *Game) Update() {
	g.handleInput()
	g.perfCollector.RecordFrame()
	if g.paused {
		return
	}
	g.simulationStep()
}

// UpdateHeadless runs one tick without graphics.
func (g *Game) UpdateHeadless() {
	g.simulationStep()
}

// Step runs one tick regardless of pause state.
func (g *Game) Step() {
	g.simulationStep()
}

// Unload releases resources.
func (g *Game) Unload() {
	if g.surface != nil {
		g.surface.Unload()
	}
	if g.outputManager != nil {
		if err := g.outputManager.Close(); err != nil {
			slog.Error("failed to close output", "error", err)
		}
	}
}

// Tick returns the number of ticks run.
func (g *Game) Tick() int {
	return g.tick
}

// State returns the current scene state.
func (g *Game) State() State {
	return g.state
}

// TransitionTicks returns the ticks spent in the current state.
func (g *Game) TransitionTicks() int {
	return g.transitionTicks
}

// ClimaxFired reports whether the disperse attack has been issued.
func (g *Game) ClimaxFired() bool {
	return g.climaxFired
}

// Particles returns the grid particles. Callers must not modify them.
func (g *Game) Particles() []components.GridParticle {
	return g.particles
}

// CatPoints returns the extracted formation targets.
func (g *Game) CatPoints() []pointfield.Point {
	return g.catPoints
}

// Spawned returns the figures admitted during the current walk.
func (g *Game) Spawned() int {
	return g.spawner.Spawned()
}

// FigureCount returns the number of live walking figures.
func (g *Game) FigureCount() int {
	return g.numFigures
}

// DebrisCount returns the number of live debris points.
func (g *Game) DebrisCount() int {
	return g.numDebris
}

// Tension is the walk progress driving the audio crescendo.
func (g *Game) Tension() float64 {
	return g.spawner.Progress()
}

// Gains returns the last gain targets sent to each tone.
func (g *Game) Gains() [audio.ToneCount]float64 {
	return g.gains
}

// Scheduler exposes the deferred task queue.
func (g *Game) Scheduler() *Scheduler {
	return g.scheduler
}

// RunID returns the identifier stamped on telemetry for this run.
func (g *Game) RunID() string {
	return g.runID
}

// simTime returns the simulation clock in seconds.
func (g *Game) simTime() float64 {
	return float64(g.tick) * g.cfg.Physics.DT
}

// simMS returns the simulation clock in milliseconds.
func (g *Game) simMS() float64 {
	return float64(g.tick) * g.cfg.Derived.MSPerTick
}
