package ui

import (
	"fmt"
	"math"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/quietmice/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Instruction  string
	Pulsing      bool
	State        string
	Tick         int
	Spawned      int
	Budget       int
	Figures      int
	Debris       int
	Tension      float64
	FPS          int32
	Paused       bool
	Muted        bool
	ShowStats    bool
	ScreenWidth  int32
	ScreenHeight int32
}

// HUD renders the instruction line and status bar.
type HUD struct {
	theme Theme
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{theme: DefaultTheme()}
}

// PulseAlpha is the instruction opacity at tick for a pulsing prompt.
// It cycles between 0.35 and 1 roughly once every two seconds at 60 ticks/s.
func PulseAlpha(tick int) float32 {
	s := math.Sin(float64(tick) * 0.05)
	return float32(0.675 + 0.325*s)
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	h.drawInstruction(data)

	barY := float32(data.ScreenHeight) - h.theme.BarHeight
	status := fmt.Sprintf("%s | tick %d | figures %d/%d live %d | debris %d | %d fps",
		data.State, data.Tick, data.Spawned, data.Budget, data.Figures, data.Debris, data.FPS)
	if data.Paused {
		status += " | PAUSED"
	}
	if data.Muted {
		status += " | MUTED"
	}
	gui.StatusBar(rl.Rectangle{X: 0, Y: barY, Width: float32(data.ScreenWidth), Height: h.theme.BarHeight}, status)

	if data.ShowStats {
		gui.ProgressBar(
			rl.Rectangle{X: 70, Y: barY - h.theme.BarHeight, Width: float32(data.ScreenWidth) - 140, Height: 12},
			"tension", fmt.Sprintf("%.0f%%", data.Tension*100),
			float32(data.Tension), 0, 1,
		)
	}
}

func (h *HUD) drawInstruction(data HUDData) {
	if data.Instruction == "" {
		return
	}
	alpha := float32(1)
	if data.Pulsing {
		alpha = PulseAlpha(data.Tick)
	}
	size := h.theme.TitleSize
	w := rl.MeasureText(data.Instruction, size)
	x := (data.ScreenWidth - w) / 2
	y := data.ScreenHeight - int32(h.theme.BarHeight)*3 - size
	rl.DrawText(data.Instruction, x, y, size, rl.Fade(h.theme.Instruction, alpha))
}

// PerfPanel renders per-phase tick timings.
type PerfPanel struct {
	theme Theme
	x, y  int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{theme: DefaultTheme(), x: x, y: y}
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	phases := telemetry.Phases()
	lh := p.theme.LineHeight
	p.theme.DrawPanel(p.x, p.y, 240, int32(len(phases)+2)*lh+2*p.theme.Padding)

	x := p.x + p.theme.Padding
	y := p.y + p.theme.Padding

	rl.DrawText(fmt.Sprintf("Tick: %s (%.0f tps)", stats.AvgTickDuration.Round(time.Microsecond), stats.TicksPerSecond), x, y, p.theme.FontSize, rl.Yellow)
	y += lh + 4

	for _, ph := range phases {
		pct := stats.PhasePct[ph]

		color := p.theme.LabelColor
		if pct > 40 {
			color = p.theme.Hot
		} else if pct > 20 {
			color = p.theme.Warn
		}

		rl.DrawText(
			fmt.Sprintf("%-10s %8s %5.1f%%", ph, stats.PhaseAvg[ph].Round(time.Microsecond), pct),
			x, y, p.theme.FontSize, color,
		)
		y += lh
	}
}
