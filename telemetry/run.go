package telemetry

import "github.com/pthm-cable/riverraid/components"

// RunRecord summarizes one finished game for runs.csv.
type RunRecord struct {
	GameID     int     `csv:"game_id"`
	Points     int     `csv:"points"`
	Distance   float64 `csv:"distance"`
	Bridge     int     `csv:"bridge"`
	DurationMs float64 `csv:"duration_ms"`
	Shots      int     `csv:"shots"`
	Kills      int     `csv:"kills"`
	Refuels    int     `csv:"refuels"`
	Deaths     int     `csv:"deaths"`
	ExtraLives int     `csv:"extra_lives"`
	LastCause  string  `csv:"last_death_cause"` // what ended the final life
	HighScore  bool    `csv:"high_score"`
}

// RunTracker accumulates the statistics of the game in progress.
type RunTracker struct {
	current RunRecord
	startMs float64
	active  bool
}

// NewRunTracker creates an idle tracker.
func NewRunTracker() *RunTracker {
	return &RunTracker{}
}

// Begin starts tracking a new game.
func (rt *RunTracker) Begin(gameID int, nowMs float64) {
	rt.current = RunRecord{GameID: gameID}
	rt.startMs = nowMs
	rt.active = true
}

// Active reports whether a game is being tracked.
func (rt *RunTracker) Active() bool {
	return rt.active
}

// RecordShot counts a player bullet.
func (rt *RunTracker) RecordShot() {
	rt.current.Shots++
}

// RecordKill counts a destroyed target.
func (rt *RunTracker) RecordKill() {
	rt.current.Kills++
}

// RecordRefuel counts a refuel contact frame.
func (rt *RunTracker) RecordRefuel() {
	rt.current.Refuels++
}

// RecordExtraLife counts a bonus life.
func (rt *RunTracker) RecordExtraLife() {
	rt.current.ExtraLives++
}

// RecordDeath counts a lost life and remembers its cause. KindUnknown means
// the player ran out of fuel.
func (rt *RunTracker) RecordDeath(cause components.Kind) {
	rt.current.Deaths++
	if cause == components.KindUnknown {
		rt.current.LastCause = "fuel"
	} else {
		rt.current.LastCause = cause.String()
	}
}

// Finish closes the run and returns its record.
func (rt *RunTracker) Finish(nowMs float64, points int, distance float64, bridge int, highScore bool) RunRecord {
	rec := rt.current
	rec.Points = points
	rec.Distance = distance
	rec.Bridge = bridge
	rec.DurationMs = nowMs - rt.startMs
	rec.HighScore = highScore
	rt.active = false
	return rec
}
