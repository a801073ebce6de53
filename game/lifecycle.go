package game

import (
	"github.com/pthm-cable/riverraid/components"
	"github.com/pthm-cable/riverraid/telemetry"
)

// showcaseFrame scrolls the level in attract mode until a key is pressed.
func (g *Game) showcaseFrame(nowMs, deltaMs float64, keys Keys) {
	g.perfCollector.StartPhase(telemetry.PhaseEngine)

	distance := (nowMs - g.showcaseStart) * g.cfg.Timing.ShowcaseSpeed
	if distance >= g.cfg.World.EndDistance {
		// Loop from the start with a fresh seed
		g.showcaseStart = nowMs
		distance = 0
		g.engine.Clear()
		g.engine.PutEnemiesData(g.table)
	}

	g.engine.SetDistance(float32(distance))
	g.engine.UpdateEntities(0)
	g.engine.SpawnEnemy(g.engine.TestNewEnemy())
	g.engine.Animate(float32(deltaMs / g.cfg.Timing.TimeUnitMs))

	g.perfCollector.StartPhase(telemetry.PhaseRender)
	g.renderer.DrawMap(float32(distance), 0)
	g.draw()

	if keys.Any {
		g.beginBoot(nowMs)
	}
}

// beginBoot leaves attract mode and slides the first segment into view.
func (g *Game) beginBoot(nowMs float64) {
	g.sound.Play(SoundBoot)
	g.engine = g.newEngine()
	g.engine.SetShowcasing(false)
	g.engine.PutEnemiesData(g.table)
	g.renderer.SetGameStarted(true)

	g.bridgeDistance = g.cfg.BridgeDistance(g.data.Bridge)
	g.startSlide(nowMs, 0, g.bridgeDistance, g.cfg.Timing.BootSlideSpeed, StateTransitioningIn)
}

func (g *Game) startSlide(nowMs, from, to, speed float64, state State) {
	g.slide = slide{startMs: nowMs, from: from, to: to, speed: speed}
	g.engine.SetDistance(float32(from))
	g.setState(state)
}

// slideFrame advances a scripted scroll. At the target the player appears and
// the game waits for a key.
func (g *Game) slideFrame(nowMs float64) {
	g.perfCollector.StartPhase(telemetry.PhaseEngine)
	s := g.slide
	current := (nowMs-s.startMs)*s.speed + s.from

	if current < s.to {
		g.engine.SetDistance(float32(current))
		g.engine.SpawnEnemy(g.engine.TestNewEnemy())
		g.perfCollector.StartPhase(telemetry.PhaseRender)
		g.renderer.DrawMap(float32(s.to), float32(current-s.to))
		g.draw()
		return
	}

	g.engine.SetDistance(float32(s.to))
	g.engine.SpawnEnemy(g.engine.TestNewEnemy())
	g.engine.AddPlayer(float32(g.cfg.BridgeCenter(g.data.Bridge)))
	g.perfCollector.StartPhase(telemetry.PhaseRender)
	g.renderer.DrawMap(float32(s.to), 0)
	g.draw()
	g.setState(StateAwaitingLaunch)
}

// awaitFrame holds the player at the checkpoint until a key is pressed.
func (g *Game) awaitFrame(nowMs float64, keys Keys) {
	g.perfCollector.StartPhase(telemetry.PhaseRender)
	g.renderer.DrawMap(g.engine.Distance(), 0)
	g.draw()

	if keys.Any {
		g.startTheGame(nowMs)
	}
}

// startTheGame seeds everything past the checkpoint and starts flight.
func (g *Game) startTheGame(nowMs float64) {
	rows := g.table.AheadOf(g.bridgeDistance, g.cfg.Bridges.SegmentOffset)
	g.engine.BeginGame(rows, float32(g.cfg.BridgeCenter(g.data.Bridge)))
	g.sound.Play(SoundFlightStart)

	g.flightHasPrev = false
	g.lastCause = components.KindUnknown
	if !g.runs.Active() {
		g.runs.Begin(g.data.GameID, nowMs)
	}
	g.setState(StateActiveFlight)
}

// checkIfPlayerDied books a death once, on the first frame the player is gone.
func (g *Game) checkIfPlayerDied(nowMs float64) {
	if g.state != StateActiveFlight || g.engine.PlayerAlive() {
		return
	}

	g.bridgeDistance = g.cfg.BridgeDistance(g.data.Bridge)
	g.deathAt = nowMs
	g.data.Lives--
	g.data.Fuel = g.cfg.Fuel.Max
	g.setState(StatePlayerDead)

	g.collector.RecordDeath()
	g.runs.RecordDeath(g.lastCause)
	g.logger.Info("player died",
		"game_id", g.data.GameID,
		"cause", causeName(g.lastCause),
		"lives", g.data.Lives,
		"bridge", g.data.Bridge,
		"distance", g.engine.Distance(),
	)

	if g.data.Lives == -1 {
		g.gameOver(nowMs)
	}
}

// afterDeath runs once the death pause is over: it either restarts the
// segment behind a slide or parks on the game over screen.
func (g *Game) afterDeath(nowMs float64) {
	if g.data.Lives < 0 {
		g.setState(StateGameOver)
		return
	}

	g.engine.Clear()
	rows := g.table.Window(g.bridgeDistance, g.cfg.Bridges.SegmentOffset, g.cfg.Derived.ViewportH)
	g.engine.PutEnemiesData(rows)
	from := g.bridgeDistance - g.cfg.Timing.SlideLeadIn
	g.startSlide(nowMs, from, g.bridgeDistance, g.cfg.Timing.RespawnSlideSpeed, StateTransitioningIntoBridgeSegment)
}

// gameOver saves the score if it beats the best and closes the run.
func (g *Game) gameOver(nowMs float64) {
	beaten := g.data.Points > g.data.HighScore
	if beaten {
		if err := g.scores.Save(g.data.Points); err != nil {
			g.logger.Error("failed to save high score", "error", err)
		}
		g.data.HighScore = g.data.Points
	}
	g.logger.Info("game over",
		"game_id", g.data.GameID,
		"points", g.data.Points,
		"high_score", g.data.HighScore,
		"new_high_score", beaten,
	)
	g.finishRun(nowMs, beaten)
}

// gameOverFrame shows the final frame; a key starts the next game.
func (g *Game) gameOverFrame(nowMs float64, keys Keys) {
	g.perfCollector.StartPhase(telemetry.PhaseRender)
	g.renderer.DrawMap(g.engine.Distance(), 0)
	g.draw()

	if keys.Any {
		g.newGame(nowMs)
	}
}

// newGame resets the score sheet for the next game id and boots it.
func (g *Game) newGame(nowMs float64) {
	g.data = freshPlayerData(g.data.GameID+1, g.cfg.Scoring.InitialLives, g.cfg.Fuel.Max, g.data.HighScore)
	g.renderer.Blackout()
	g.beginBoot(nowMs)
}

// causeName names what ended a life. No cause means the tank ran dry.
func causeName(kind components.Kind) string {
	if kind == components.KindUnknown {
		return "fuel"
	}
	return kind.String()
}
