// Package ui draws the heads-up display over the river.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg       rl.Color
	PanelBorder   rl.Color
	TitleColor    rl.Color
	LabelColor    rl.Color
	ValueColor    rl.Color
	BarFillLow    rl.Color
	BarFillMedium rl.Color
	BarFillHigh   rl.Color
	Padding       int32
	LineHeight    int32
	LabelWidth    int32
	BarHeight     int32
	FontSize      int32
	TitleFontSize int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:       rl.Color{R: 20, G: 20, B: 20, A: 230},
		PanelBorder:   rl.Color{R: 90, G: 90, B: 90, A: 255},
		TitleColor:    rl.Yellow,
		LabelColor:    rl.LightGray,
		ValueColor:    rl.White,
		BarFillLow:    rl.Color{R: 200, G: 60, B: 60, A: 255},
		BarFillMedium: rl.Color{R: 210, G: 180, B: 70, A: 255},
		BarFillHigh:   rl.Color{R: 90, G: 190, B: 90, A: 255},
		Padding:       10,
		LineHeight:    20,
		LabelWidth:    70,
		BarHeight:     16,
		FontSize:      16,
		TitleFontSize: 40,
	}
}

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawLabelValue draws a label and value on the same line and returns the next y.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawText(value, x+r.Theme.LabelWidth, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight
}

// DrawCentered draws text centered horizontally on the screen.
func (r *Renderer) DrawCentered(text string, screenW, y, size int32, color rl.Color) {
	w := rl.MeasureText(text, size)
	rl.DrawText(text, (screenW-w)/2, y, size, color)
}

// FuelColor picks the gauge color for a fill ratio.
func (r *Renderer) FuelColor(ratio float32) rl.Color {
	switch {
	case ratio < 0.25:
		return r.Theme.BarFillLow
	case ratio < 0.5:
		return r.Theme.BarFillMedium
	default:
		return r.Theme.BarFillHigh
	}
}
