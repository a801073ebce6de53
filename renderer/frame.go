// Package renderer draws game frames with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/riverraid/camera"
	"github.com/pthm-cable/riverraid/config"
	"github.com/pthm-cable/riverraid/engine"
	"github.com/pthm-cable/riverraid/game"
	"github.com/pthm-cable/riverraid/level"
	"github.com/pthm-cable/riverraid/traits"
	"github.com/pthm-cable/riverraid/ui"
)

// Palette
var (
	waterColor = rl.Color{R: 45, G: 50, B: 184, A: 255}
	blinkColor = rl.Color{R: 110, G: 120, B: 230, A: 255}
	shoreColor = rl.Color{R: 110, G: 156, B: 66, A: 255}
	wreckColor = rl.Color{R: 240, G: 130, B: 40, A: 255}
)

// Rows of the river drawn per frame. Banks are sampled once per strip.
const stripHeight = 8

// blinkFrames is how long the river flashes after a bridge goes down.
const blinkFrames = 6

// FrameRenderer implements game.Renderer on raylib. All calls must come from
// the goroutine that owns the window, between BeginDrawing and EndDrawing.
type FrameRenderer struct {
	cam   *camera.Camera
	river level.River
	hud   *ui.HUD

	fuelMax float32

	blink   int
	started bool

	// Pinned target size; zero follows the window
	pinW, pinH int32
}

// NewFrameRenderer creates a renderer for the configured viewport.
func NewFrameRenderer(cfg *config.Config) *FrameRenderer {
	w := float32(cfg.Derived.ViewportW)
	h := float32(cfg.Derived.ViewportH)
	return &FrameRenderer{
		cam:   camera.New(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()), w, h),
		river: level.River{
			Distances: cfg.Bridges.Distances,
			Centers:   cfg.Bridges.Centers,
		},
		hud:     ui.NewHUD(),
		fuelMax: float32(cfg.Fuel.Max),
	}
}

// PinScreen fixes the drawing target size, for rendering into a texture.
func (r *FrameRenderer) PinScreen(w, h int32) {
	r.pinW, r.pinH = w, h
}

func (r *FrameRenderer) screenSize() (int32, int32) {
	if r.pinW > 0 && r.pinH > 0 {
		return r.pinW, r.pinH
	}
	return int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
}

// Camera exposes the view for tools that scrub the map.
func (r *FrameRenderer) Camera() *camera.Camera {
	return r.cam
}

// Blackout clears the screen.
func (r *FrameRenderer) Blackout() {
	rl.ClearBackground(rl.Black)
	r.blink = 0
}

// DrawMap draws shores and water for the visible band.
func (r *FrameRenderer) DrawMap(distance, offset float32) {
	sw, sh := r.screenSize()
	r.cam.Resize(float32(sw), float32(sh))
	r.cam.SetScroll(distance, offset)

	rl.ClearBackground(rl.Black)
	sx, sy := r.cam.WorldToScreen(0, r.cam.Top())
	rl.DrawRectangle(int32(sx), int32(sy), int32(r.cam.WorldW*r.cam.Zoom), int32(r.cam.WorldH*r.cam.Zoom), shoreColor)

	water := waterColor
	if r.blink > 0 {
		if r.blink%2 == 0 {
			water = blinkColor
		}
		r.blink--
	}

	for y := r.cam.Bottom(); y < r.cam.Top(); y += stripHeight {
		left, right := r.river.Banks(float64(y))
		x0 := max(float32(left), 0)
		x1 := min(float32(right), r.cam.WorldW)
		if x1 <= x0 {
			continue
		}
		rx, ry, rw, rh := r.cam.RectToScreen(x0, y, x1-x0, stripHeight)
		rl.DrawRectangleRec(rl.Rectangle{X: rx, Y: ry, Width: rw, Height: rh + 1}, water)
	}
}

// Draw draws entities in id order, then the HUD.
func (r *FrameRenderer) Draw(entities []engine.Entity, data game.PlayerData) {
	for i := range entities {
		e := &entities[i]
		if !r.cam.IsVisible(e.Y, e.Height) {
			continue
		}
		r.drawEntity(e)
	}

	sw, sh := r.screenSize()
	r.hud.Draw(ui.HUDData{
		Points:      data.Points,
		Lives:       data.Lives,
		Fuel:        float32(data.Fuel),
		FuelMax:     r.fuelMax,
		HighScore:   data.HighScore,
		Bridge:      data.Bridge,
		GameStarted: r.started,
		FPS:         rl.GetFPS(),
		ScreenW:     sw,
		ScreenH:     sh,
	})
}

func (r *FrameRenderer) drawEntity(e *engine.Entity) {
	x, y, w, h := r.cam.RectToScreen(e.X, e.Y, e.Width, e.Height)
	rect := rl.Rectangle{X: x, Y: y, Width: w, Height: h}

	if e.Destroyed {
		rl.DrawRectangleRec(rect, wreckFlicker(e.Frame))
		return
	}

	cr, cg, cb := traits.GetTraitColor(e.Kind.Traits())
	color := rl.Color{R: cr, G: cg, B: cb, A: 255}
	rl.DrawRectangleRec(rect, color)

	// Second animation frame shows as a darker band, facing the direction of travel
	if e.Frame%2 == 1 {
		band := rl.Rectangle{X: x, Y: y, Width: w / 3, Height: h}
		if e.Direction < 0 {
			band.X = x + w - band.Width
		}
		rl.DrawRectangleRec(band, rl.ColorBrightness(color, -0.3))
	}
}

func wreckFlicker(frame uint8) rl.Color {
	if frame%2 == 0 {
		return wreckColor
	}
	return rl.Yellow
}

// Blink flashes the water for a few frames.
func (r *FrameRenderer) Blink() {
	r.blink = blinkFrames
}

// SetGameStarted switches the HUD between attract and play.
func (r *FrameRenderer) SetGameStarted(started bool) {
	r.started = started
}

var _ game.Renderer = (*FrameRenderer)(nil)
