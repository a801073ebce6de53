// Level preview tool - scrub the opponent table with sliders.
//
// Usage: go run ./cmd/levelpreview [-config path]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/riverraid/config"
	"github.com/pthm-cable/riverraid/engine"
	"github.com/pthm-cable/riverraid/game"
	"github.com/pthm-cable/riverraid/level"
	"github.com/pthm-cable/riverraid/renderer"
)

const panelWidth = 300

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	table, err := level.Load()
	if err != nil {
		slog.Error("failed to load level", "error", err)
		os.Exit(1)
	}
	segments := table.Density(cfg.Bridges.Distances, cfg.World.EndDistance)

	rl.InitWindow(int32(cfg.Screen.Width)+panelWidth, int32(cfg.Screen.Height), "Level Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	eng := engine.New(cfg, engine.Session{Logger: slog.Default()})
	eng.SetShowcasing(true)

	// The map is drawn into a texture the size of the viewport, left of the panel
	view := rl.LoadRenderTexture(int32(cfg.Screen.Width), int32(cfg.Screen.Height))
	defer rl.UnloadRenderTexture(view)

	frame := renderer.NewFrameRenderer(cfg)
	frame.PinScreen(int32(cfg.Screen.Width), int32(cfg.Screen.Height))
	frame.SetGameStarted(true)

	var (
		distance  float32
		playing   bool
		lastShown = float32(-1)
	)
	jump := func(d float32) {
		distance = min(max(d, 0), float32(cfg.World.EndDistance))
		eng.Clear()
		eng.SetDistance(distance)
		eng.PutEnemiesData(table)
	}
	jump(0)

	for !rl.WindowShouldClose() {
		if playing {
			distance += rl.GetFrameTime() * 1000 * float32(cfg.Timing.ShowcaseSpeed)
			if distance >= float32(cfg.World.EndDistance) {
				jump(0)
			}
			eng.SetDistance(distance)
			eng.UpdateEntities(0)
			eng.SpawnEnemy(eng.TestNewEnemy())
			eng.Animate(rl.GetFrameTime() * 1000 / float32(cfg.Timing.TimeUnitMs))
		} else if distance != lastShown {
			jump(distance)
		}
		lastShown = distance

		rl.BeginTextureMode(view)
		frame.DrawMap(distance, 0)
		frame.Draw(eng.Data(), game.PlayerData{Fuel: cfg.Fuel.Max, Bridge: bridgeAt(cfg, distance)})
		rl.EndTextureMode()

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)
		src := rl.Rectangle{X: 0, Y: 0, Width: float32(view.Texture.Width), Height: -float32(view.Texture.Height)}
		rl.DrawTextureRec(view.Texture, src, rl.Vector2{}, rl.White)

		// Control panel
		panelX := float32(cfg.Screen.Width + 10)
		panelY := float32(10)
		w := float32(panelWidth - 20)

		rl.DrawText("Level Preview", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		rl.DrawText("Distance", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newDistance := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: w - 60, Height: 20},
			"", "",
			distance, 0, float32(cfg.World.EndDistance),
		)
		rl.DrawText(fmt.Sprintf("%.0f", distance), int32(panelX+w-55), int32(panelY+2), 16, rl.DarkGray)
		if newDistance != distance {
			distance = newDistance
			playing = false
		}
		panelY += 35

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 85, Height: 30}, "Prev bridge") {
			jump(prevBridge(cfg, distance))
			playing = false
		}
		if gui.Button(rl.Rectangle{X: panelX + 95, Y: panelY, Width: 85, Height: 30}, toggleText(playing, "Pause", "Play")) {
			playing = !playing
		}
		if gui.Button(rl.Rectangle{X: panelX + 190, Y: panelY, Width: 85, Height: 30}, "Next bridge") {
			jump(nextBridge(cfg, distance))
			playing = false
		}
		panelY += 45

		// Segment stats
		bridge := bridgeAt(cfg, distance)
		rl.DrawText(fmt.Sprintf("Segment %d", bridge), int32(panelX), int32(panelY), 18, rl.DarkGray)
		panelY += 25
		if bridge >= 1 && bridge <= len(segments) {
			s := segments[bridge-1]
			lines := []string{
				fmt.Sprintf("span      %.0f - %.0f", s.Start, s.End),
				fmt.Sprintf("rows      %d", s.Rows),
				fmt.Sprintf("hostiles  %d", s.Hostiles),
				fmt.Sprintf("fuel      %d", s.Fuel),
				fmt.Sprintf("mean gap  %.1f", s.MeanGap),
				fmt.Sprintf("min gap   %.1f", s.MinGap),
				fmt.Sprintf("gap sd    %.1f", s.GapStdev),
			}
			for _, line := range lines {
				rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
				panelY += 16
			}
		}
		panelY += 10
		rl.DrawText(fmt.Sprintf("live %d  pending %d", eng.Count(), eng.Pending()), int32(panelX), int32(panelY), 14, rl.Gray)

		rl.EndDrawing()
	}
}

// bridgeAt returns the 1-based segment containing distance.
func bridgeAt(cfg *config.Config, distance float32) int {
	bridge := 1
	for i, d := range cfg.Bridges.Distances {
		if float64(distance) >= d {
			bridge = i + 1
		}
	}
	return bridge
}

func prevBridge(cfg *config.Config, distance float32) float32 {
	prev := float32(0)
	for _, d := range cfg.Bridges.Distances {
		if float32(d) >= distance {
			break
		}
		prev = float32(d)
	}
	return prev
}

func nextBridge(cfg *config.Config, distance float32) float32 {
	for _, d := range cfg.Bridges.Distances {
		if float32(d) > distance {
			return float32(d)
		}
	}
	return distance
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}
