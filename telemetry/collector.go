// Package telemetry records gameplay statistics: windowed counters, frame
// timing, per-run summaries, milestones and the persisted best score.
package telemetry

import "github.com/pthm-cable/riverraid/components"

// Sample is the game state read at the end of a window.
type Sample struct {
	GameID   int
	Distance float64
	Points   int
	Lives    int
	Fuel     float64
	Bridge   int
	Live     int
}

// Collector accumulates events within time windows and produces WindowStats.
// Time is the frame clock in milliseconds.
type Collector struct {
	windowMs      float64
	windowStartMs float64

	// Window counters
	shots      int
	kills      KillsByKind
	killCount  int
	refuels    int
	deaths     int
	extraLives int
	minFuel    float64
	frames     []float64

	// Baselines for the gained columns
	startDistance float64
	startPoints   int
	started       bool
}

// NewCollector creates a collector with the given window length.
func NewCollector(windowMs float64) *Collector {
	if windowMs <= 0 {
		windowMs = 10000
	}
	return &Collector{windowMs: windowMs, minFuel: -1}
}

// RecordShot records a player bullet fired.
func (c *Collector) RecordShot() {
	c.shots++
}

// RecordKill records a destroyed target.
func (c *Collector) RecordKill(kind components.Kind) {
	c.killCount++
	switch kind {
	case components.KindHelicopter:
		c.kills.Helicopters++
	case components.KindShootingHelicopter:
		c.kills.ShootingHelicopters++
	case components.KindShip:
		c.kills.Ships++
	case components.KindBalloon:
		c.kills.Balloons++
	case components.KindPlane:
		c.kills.Planes++
	case components.KindTank:
		c.kills.Tanks++
	case components.KindFuel:
		c.kills.Fuel++
	case components.KindBridge:
		c.kills.Bridges++
	}
}

// RecordRefuel records one refuel contact frame.
func (c *Collector) RecordRefuel() {
	c.refuels++
}

// RecordDeath records a lost life.
func (c *Collector) RecordDeath() {
	c.deaths++
}

// RecordExtraLife records a bonus life.
func (c *Collector) RecordExtraLife() {
	c.extraLives++
}

// RecordFrame records one frame's elapsed time and fuel level.
func (c *Collector) RecordFrame(deltaMs, fuel float64) {
	c.frames = append(c.frames, deltaMs)
	if c.minFuel < 0 || fuel < c.minFuel {
		c.minFuel = fuel
	}
}

// ShouldFlush reports whether the window has elapsed.
func (c *Collector) ShouldFlush(nowMs float64) bool {
	return nowMs-c.windowStartMs >= c.windowMs
}

// Begin sets the baselines, normally at the start of a game.
func (c *Collector) Begin(nowMs float64, s Sample) {
	c.reset(nowMs)
	c.startDistance = s.Distance
	c.startPoints = s.Points
	c.started = true
}

// Flush produces the window's stats and starts the next window.
func (c *Collector) Flush(nowMs float64, s Sample) WindowStats {
	if !c.started {
		c.Begin(c.windowStartMs, s)
	}

	var hitRate float64
	if c.shots > 0 {
		hitRate = float64(c.killCount) / float64(c.shots)
	}
	minFuel := c.minFuel
	if minFuel < 0 {
		minFuel = s.Fuel
	}
	fs := ComputeFrameStats(c.frames)

	stats := WindowStats{
		WindowStartMs:  c.windowStartMs,
		WindowEndMs:    nowMs,
		GameID:         s.GameID,
		Distance:       s.Distance,
		Points:         s.Points,
		Lives:          s.Lives,
		Fuel:           s.Fuel,
		Bridge:         s.Bridge,
		Live:           s.Live,
		DistanceGained: s.Distance - c.startDistance,
		PointsGained:   s.Points - c.startPoints,
		MinFuel:        minFuel,
		Shots:          c.shots,
		Kills:          c.killCount,
		HitRate:        hitRate,
		KillsByKind:    c.kills,
		Refuels:        c.refuels,
		Deaths:         c.deaths,
		ExtraLives:     c.extraLives,
		FrameMsMean:    fs.Mean,
		FrameMsStd:     fs.Std,
		FrameMsP50:     fs.P50,
		FrameMsP90:     fs.P90,
		FrameMsMax:     fs.Max,
	}

	c.reset(nowMs)
	c.startDistance = s.Distance
	c.startPoints = s.Points
	return stats
}

func (c *Collector) reset(nowMs float64) {
	c.windowStartMs = nowMs
	c.shots = 0
	c.kills = KillsByKind{}
	c.killCount = 0
	c.refuels = 0
	c.deaths = 0
	c.extraLives = 0
	c.minFuel = -1
	c.frames = c.frames[:0]
}

// WindowMs returns the window length.
func (c *Collector) WindowMs() float64 {
	return c.windowMs
}
