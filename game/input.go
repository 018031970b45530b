package game

import rl "github.com/gen2brain/raylib-go/raylib"

// muter is implemented by tone banks that can be silenced without losing
// their targets.
type muter interface {
	SetMuted(bool)
	Muted() bool
}

// handleInput processes mouse and keyboard input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) && g.clickOnCanvas() {
		g.Advance()
	}

	if rl.IsKeyPressed(rl.KeyC) {
		g.FormCat()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.WalkRats()
	}
	if rl.IsKeyPressed(rl.KeyS) {
		g.Scatter()
	}
	if rl.IsKeyPressed(rl.KeyG) {
		g.Reset()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyM) {
		if m, ok := g.bank.(muter); ok {
			m.SetMuted(!m.Muted())
		}
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.showStats = !g.showStats
	}
}

// clickOnCanvas reports whether the mouse is over the canvas rather than the
// letterbox bars.
func (g *Game) clickOnCanvas() bool {
	mouse := rl.GetMousePosition()
	wx, wy := g.camera.ScreenToWorld(mouse.X, mouse.Y)
	return g.camera.IsVisible(wx, wy, 0)
}

// handleResize checks for window resize and refits the canvas.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	g.camera.Resize(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
}

func (g *Game) muted() bool {
	if m, ok := g.bank.(muter); ok {
		return m.Muted()
	}
	return false
}
