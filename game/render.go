package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/quietmice/camera"
	"github.com/pthm-cable/quietmice/renderer"
	"github.com/pthm-cable/quietmice/ui"
)

// InitGraphics creates the camera, surface and HUD. Must be called after the
// raylib window exists.
func (g *Game) InitGraphics() {
	w, h := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	g.camera = camera.New(w, h, float32(g.cfg.Derived.CanvasW), float32(g.cfg.Derived.CanvasH))
	g.surface = renderer.NewRaylibSurface(g.camera, g.atlas)
	g.hud = ui.NewHUD()
	g.perfPanel = ui.NewPerfPanel(10, 10)
}

// Render issues one frame of draw commands: grid sprites, then figures, then
// debris.
func (g *Game) Render(s renderer.Surface) {
	g.renderGrid(s)
	if g.state == StateRatsWalk || g.state == StateDisperse {
		g.renderFigures(s)
		g.renderDebris(s)
	}
}

func (g *Game) renderGrid(s renderer.Surface) {
	// No mosaic, no sprites
	if g.mosaicW <= 0 || g.mosaicH <= 0 {
		return
	}
	cols, rows := g.cfg.Grid.Cols, g.cfg.Grid.Rows
	size := g.cfg.Derived.CellSize
	hide := g.state.hidesInactive()

	for i := range g.particles {
		p := &g.particles[i]
		if hide && !p.Active {
			continue
		}
		s.DrawSprite(renderer.SpriteCmd{
			X:          p.X,
			Y:          p.Y,
			Src:        renderer.SourceRect(p.Col, p.Row, cols, rows, g.mosaicW, g.mosaicH),
			Size:       size,
			ClipRadius: size * renderer.ClipFraction,
			Col:        p.Col,
			Row:        p.Row,
		})
	}
}

func (g *Game) renderFigures(s renderer.Surface) {
	r := g.cfg.Figures.PointRadius
	query := g.figureFilter.Query()
	for query.Next() {
		pos, fig := query.Get()
		if !g.animator.Visible(*pos) {
			continue
		}
		for _, o := range fig.Body {
			s.DrawCircle(renderer.CircleCmd{
				X:      pos.X + o.X,
				Y:      pos.Y + o.Y,
				Radius: r,
				Fill:   renderer.BodyFill,
				Stroke: renderer.BodyStroke,
			})
		}
	}
}

func (g *Game) renderDebris(s renderer.Surface) {
	r := g.cfg.Figures.PointRadius
	query := g.debrisFilter.Query()
	for query.Next() {
		pos, _, _ := query.Get()
		s.DrawCircle(renderer.CircleCmd{
			X:      pos.X,
			Y:      pos.Y,
			Radius: r,
			Fill:   renderer.BodyFill,
			Stroke: renderer.BodyStroke,
		})
	}
}

// Draw renders the frame to the raylib window.
func (g *Game) Draw() {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	g.surface.DrawBackground(g.cfg.Derived.BackgroundRGB)
	g.Render(g.surface)

	text, pulsing := Instruction(g.state, g.transitionTicks, g.spawner.Spawned(),
		g.cfg.Formation.WanderTicks, g.cfg.Audio.WatchThreshold)
	g.hud.Draw(ui.HUDData{
		Instruction:  text,
		Pulsing:      pulsing,
		State:        g.state.String(),
		Tick:         g.tick,
		Spawned:      g.spawner.Spawned(),
		Budget:       g.spawner.Budget(),
		Figures:      g.numFigures,
		Debris:       g.numDebris,
		Tension:      g.spawner.Progress(),
		FPS:          rl.GetFPS(),
		Paused:       g.paused,
		Muted:        g.muted(),
		ShowStats:    g.showStats,
		ScreenWidth:  int32(rl.GetScreenWidth()),
		ScreenHeight: int32(rl.GetScreenHeight()),
	})
	if g.showStats {
		g.perfPanel.Draw(g.perfCollector.Stats())
	}
}
