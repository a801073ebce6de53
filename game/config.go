package game

import (
	"log/slog"

	"github.com/pthm-cable/riverraid/config"
	"github.com/pthm-cable/riverraid/level"
	"github.com/pthm-cable/riverraid/telemetry"
)

// Options holds everything a Game needs at construction. Nil collaborators
// fall back to silent implementations.
type Options struct {
	Config *config.Config
	Level  level.Table

	Renderer Renderer
	Sound    SoundPlayer
	Scores   ScoreStore
	Input    InputSource
	Logger   *slog.Logger

	// Telemetry
	Output    *telemetry.OutputManager // nil disables file output
	LogStats  bool                     // log window stats via slog
	Snapshots bool                     // save a snapshot with each bookmark
	HallSize  int
}

// withDefaults fills nil fields.
func (o Options) withDefaults() Options {
	if o.Renderer == nil {
		o.Renderer = NopRenderer{}
	}
	if o.Sound == nil {
		o.Sound = NopSound{}
	}
	if o.Scores == nil {
		o.Scores = &MemoryScores{}
	}
	if o.Input == nil {
		o.Input = IdleInput{}
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.HallSize <= 0 {
		o.HallSize = 10
	}
	return o
}
