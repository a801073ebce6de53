// Package game is the orchestrator: it owns the frame clock, the score sheet
// and the macro states, drives the engine and hands frames to the renderer.
package game

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/riverraid/components"
	"github.com/pthm-cable/riverraid/config"
	"github.com/pthm-cable/riverraid/engine"
	"github.com/pthm-cable/riverraid/level"
	"github.com/pthm-cable/riverraid/telemetry"
)

// State is the game's macro state.
type State uint8

const (
	StateShowcasing State = iota
	StateTransitioningIn
	StateAwaitingLaunch
	StateActiveFlight
	StatePlayerDead
	StateTransitioningIntoBridgeSegment
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateShowcasing:
		return "showcasing"
	case StateTransitioningIn:
		return "transitioning_in"
	case StateAwaitingLaunch:
		return "awaiting_launch"
	case StateActiveFlight:
		return "active_flight"
	case StatePlayerDead:
		return "player_dead"
	case StateTransitioningIntoBridgeSegment:
		return "transitioning_into_bridge_segment"
	case StateGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("state(%d)", s)
	}
}

// slide is a scripted scroll from one distance to another.
type slide struct {
	startMs float64
	from    float64
	to      float64
	speed   float64 // distance per ms
}

// Game holds the complete game state. It is driven by one goroutine calling
// Frame once per display frame.
type Game struct {
	cfg    *config.Config
	table  level.Table
	engine *engine.Engine
	logger *slog.Logger

	renderer Renderer
	sound    SoundPlayer
	scores   ScoreStore
	input    InputSource

	data  PlayerData
	state State

	// Frame clock, milliseconds
	clockStarted  bool
	lastMs        float64
	flightPrevMs  float64
	flightHasPrev bool
	showcaseStart float64
	slide         slide
	deathAt       float64

	// Checkpoint the current segment restarts from
	bridgeDistance float64
	lastCause      components.Kind
	lastShots      int
	frames         int

	// Depots that already paid their points, by entity id
	scoredDepots map[uint32]bool

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	bookmarks     *telemetry.BookmarkDetector
	runs          *telemetry.RunTracker
	hallOfFame    *telemetry.HallOfFame
	outputManager *telemetry.OutputManager
	logStats      bool
	snapshots     bool
	statsCallback func(telemetry.WindowStats)
}

// New creates a game in attract mode.
func New(opts Options) *Game {
	opts = opts.withDefaults()
	cfg := opts.Config

	g := &Game{
		cfg:      cfg,
		table:    opts.Level.Clone(),
		logger:   opts.Logger,
		renderer: opts.Renderer,
		sound:    opts.Sound,
		scores:   opts.Scores,
		input:    opts.Input,
		state:    StateShowcasing,

		collector:     telemetry.NewCollector(cfg.Derived.WindowMs),
		perfCollector: telemetry.NewPerfCollector(max(cfg.Screen.TargetFPS, 1)),
		bookmarks:     telemetry.NewBookmarkDetector(10),
		runs:          telemetry.NewRunTracker(),
		hallOfFame:    telemetry.NewHallOfFame(opts.HallSize),
		outputManager: opts.Output,
		logStats:      opts.LogStats,
		snapshots:     opts.Snapshots,
	}

	highScore, err := g.scores.Load()
	if err != nil {
		g.logger.Warn("could not load high score", "error", err)
		highScore = 0
	}
	g.data = freshPlayerData(1, cfg.Scoring.InitialLives, cfg.Fuel.Max, highScore)
	g.bridgeDistance = cfg.BridgeDistance(1)

	g.bootUp()
	return g
}

// bootUp enters attract mode with a fresh engine.
func (g *Game) bootUp() {
	g.engine = g.newEngine()
	g.engine.PutEnemiesData(g.table)
	g.renderer.Blackout()
	g.renderer.SetGameStarted(false)
	g.showcaseStart = g.lastMs
	g.setState(StateShowcasing)
}

// newEngine creates the engine for the current game id.
func (g *Game) newEngine() *engine.Engine {
	g.lastShots = 0
	g.scoredDepots = make(map[uint32]bool)
	return engine.New(g.cfg, engine.Session{GameID: g.data.GameID, Logger: g.logger})
}

// SetInput replaces the input source, e.g. with an Autopilot bound to this game.
func (g *Game) SetInput(in InputSource) {
	if in == nil {
		in = IdleInput{}
	}
	g.input = in
}

// SetStatsCallback registers a function called with each flushed window.
func (g *Game) SetStatsCallback(fn func(telemetry.WindowStats)) {
	g.statsCallback = fn
}

// Frame advances the game to timestampMs. Timestamps must not go backwards.
func (g *Game) Frame(timestampMs float64) {
	g.perfCollector.StartFrame()

	g.perfCollector.StartPhase(telemetry.PhaseInput)
	keys := g.input.Poll()

	if !g.clockStarted {
		g.clockStarted = true
		g.lastMs = timestampMs
		g.showcaseStart = timestampMs
		g.collector.Begin(timestampMs, g.sample())
	}
	deltaMs := max(0, timestampMs-g.lastMs)
	g.lastMs = timestampMs

	switch g.state {
	case StateShowcasing:
		g.showcaseFrame(timestampMs, deltaMs, keys)
	case StateTransitioningIn, StateTransitioningIntoBridgeSegment:
		g.slideFrame(timestampMs)
	case StateAwaitingLaunch:
		g.awaitFrame(timestampMs, keys)
	case StateActiveFlight, StatePlayerDead:
		g.flightFrame(timestampMs, keys)
	case StateGameOver:
		g.gameOverFrame(timestampMs, keys)
	}

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.collector.RecordFrame(deltaMs, g.data.Fuel)
	g.flushTelemetry(timestampMs)
	g.frames++
	g.perfCollector.EndFrame()
}

func (g *Game) setState(s State) {
	if s == g.state {
		return
	}
	g.logger.Info("state", "from", g.state.String(), "to", s.String(), "game_id", g.data.GameID)
	g.state = s
}

// draw hands the current snapshot to the renderer.
func (g *Game) draw() {
	g.perfCollector.StartPhase(telemetry.PhaseRender)
	g.renderer.Draw(g.engine.Data(), g.data)
}

// State returns the macro state.
func (g *Game) State() State {
	return g.state
}

// Data returns a copy of the score sheet.
func (g *Game) Data() PlayerData {
	return g.data
}

// Engine returns the current engine. It changes when a new game starts.
func (g *Game) Engine() *engine.Engine {
	return g.engine
}

// HallOfFame returns the session's best runs.
func (g *Game) HallOfFame() *telemetry.HallOfFame {
	return g.hallOfFame
}

// Frames returns how many frames have run.
func (g *Game) Frames() int {
	return g.frames
}

// Perf returns the frame cost collector.
func (g *Game) Perf() *telemetry.PerfCollector {
	return g.perfCollector
}
