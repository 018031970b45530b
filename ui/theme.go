// Package ui draws the instruction line, status bar and diagnostic panels
// over the canvas.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg     rl.Color
	PanelBorder rl.Color
	Instruction rl.Color
	LabelColor  rl.Color
	Warn        rl.Color
	Hot         rl.Color
	Padding     int32
	LineHeight  int32
	FontSize    int32
	TitleSize   int32
	BarHeight   float32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:     rl.Color{R: 20, G: 25, B: 30, A: 220},
		PanelBorder: rl.Color{R: 60, G: 70, B: 80, A: 255},
		Instruction: rl.White,
		LabelColor:  rl.LightGray,
		Warn:        rl.Orange,
		Hot:         rl.Red,
		Padding:     10,
		LineHeight:  14,
		FontSize:    12,
		TitleSize:   20,
		BarHeight:   22,
	}
}

// DrawPanel draws a panel background with border.
func (t Theme) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, t.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, t.PanelBorder)
}
