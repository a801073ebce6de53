package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Points      int
	Lives       int
	Fuel        float32
	FuelMax     float32
	HighScore   int
	Bridge      int
	GameStarted bool
	FPS         int32
	ScreenW     int32
	ScreenH     int32
}

// HUD renders the status bar under the river.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Height is the status bar height in pixels.
func (h *HUD) Height() int32 {
	t := h.renderer.Theme
	return 2*t.Padding + 3*t.LineHeight
}

// Draw renders the HUD. Before a game starts it shows the attract banner instead.
func (h *HUD) Draw(data HUDData) {
	r := h.renderer
	t := r.Theme

	if !data.GameStarted {
		r.DrawCentered("RIVER RAID", data.ScreenW, data.ScreenH/3, t.TitleFontSize, t.TitleColor)
		r.DrawCentered("press any key", data.ScreenW, data.ScreenH/3+t.TitleFontSize+t.Padding, t.FontSize, t.LabelColor)
		if data.HighScore > 0 {
			r.DrawCentered(fmt.Sprintf("high score %d", data.HighScore), data.ScreenW, data.ScreenH/3+t.TitleFontSize+3*t.Padding, t.FontSize, t.ValueColor)
		}
		return
	}

	panelH := h.Height()
	panelY := data.ScreenH - panelH
	r.DrawPanel(0, panelY, data.ScreenW, panelH)

	x := t.Padding
	y := panelY + t.Padding
	y = r.DrawLabelValue(x, y, "Score", fmt.Sprintf("%d", data.Points))
	y = r.DrawLabelValue(x, y, "Lives", fmt.Sprintf("%d", max(data.Lives, 0)))
	r.DrawLabelValue(x, y, "Bridge", fmt.Sprintf("%d", data.Bridge))

	// Fuel gauge
	gaugeW := float32(data.ScreenW) / 3
	gaugeX := (float32(data.ScreenW) - gaugeW) / 2
	gaugeY := float32(panelY + t.Padding + t.LineHeight)
	gui.ProgressBar(
		rl.Rectangle{X: gaugeX, Y: gaugeY, Width: gaugeW, Height: float32(t.BarHeight)},
		"E", "F",
		data.Fuel, 0, data.FuelMax,
	)
	rl.DrawText("FUEL", int32(gaugeX), int32(gaugeY)-t.LineHeight, t.FontSize, r.FuelColor(data.Fuel/data.FuelMax))

	right := data.ScreenW - t.Padding - 2*t.LabelWidth
	r.DrawLabelValue(right, panelY+t.Padding, "Best", fmt.Sprintf("%d", data.HighScore))
	r.DrawLabelValue(right, panelY+t.Padding+2*t.LineHeight, "FPS", fmt.Sprintf("%d", data.FPS))
}
