package game

import (
	"github.com/pthm-cable/riverraid/components"
	"github.com/pthm-cable/riverraid/engine"
	"github.com/pthm-cable/riverraid/telemetry"
)

// flightFrame runs one frame of play, including the death pause.
func (g *Game) flightFrame(nowMs float64, keys Keys) {
	if !g.flightHasPrev {
		g.flightPrevMs = nowMs
		g.flightHasPrev = true
	}
	deltaMs := nowMs - g.flightPrevMs
	g.flightPrevMs = nowMs

	g.checkIfPlayerDied(nowMs)
	if g.state == StatePlayerDead {
		g.holdDeathFrame()
		if nowMs-g.deathAt >= g.cfg.Timing.DeathPauseMs {
			g.afterDeath(nowMs)
		}
		return
	}
	g.frameUpdate(deltaMs, keys)
}

// holdDeathFrame redraws the world as it was when the player died. The engine
// does not tick, so nothing in flight can score.
func (g *Game) holdDeathFrame() {
	g.perfCollector.StartPhase(telemetry.PhaseRender)
	g.renderer.DrawMap(g.engine.Distance(), 0)
	g.draw()
}

// frameUpdate applies fuel and checkpoint rules, ticks the engine and folds
// its events into the score sheet.
func (g *Game) frameUpdate(deltaMs float64, keys Keys) {
	g.perfCollector.StartPhase(telemetry.PhaseRules)

	g.data.Drain(deltaMs / g.cfg.Fuel.DrainDivisor)
	if g.data.Fuel < g.cfg.Fuel.LowThreshold {
		g.sound.Play(SoundLowFuel)
	}

	if g.data.AdvanceBridge(g.cfg.Bridges.Distances, float64(g.engine.Distance())) {
		g.logger.Info("checkpoint", "game_id", g.data.GameID, "bridge", g.data.Bridge)
	}

	if g.data.Fuel == 0 && g.engine.PlayerAlive() {
		if player, ok := g.engine.FindPlayer(); ok {
			g.lastCause = components.KindUnknown
			g.engine.DestroyEntity(player.ID)
		}
	}

	g.perfCollector.StartPhase(telemetry.PhaseEngine)
	events := g.engine.Tick(float32(deltaMs/g.cfg.Timing.TimeUnitMs), keys)

	g.perfCollector.StartPhase(telemetry.PhaseRules)
	g.applyEvents(events)
	g.countShots()

	g.perfCollector.StartPhase(telemetry.PhaseRender)
	g.renderer.DrawMap(g.engine.Distance(), 0)
	g.draw()
}

// applyEvents folds one tick's outcomes into the score sheet.
func (g *Game) applyEvents(events []engine.Event) {
	for _, ev := range events {
		switch ev.Type {
		case engine.EventKill:
			g.playerKilled(ev.Kind, ev.EntityID)
		case engine.EventRefuel:
			if g.firstTouch(ev.EntityID) {
				g.award(components.KindFuel)
			}
			g.refillFuel()
		case engine.EventPlayerDied:
			g.lastCause = ev.Kind
		}
	}
}

// playerKilled scores a destroyed target. A depot already scored on contact
// counts as a kill but pays nothing more.
func (g *Game) playerKilled(kind components.Kind, id uint32) {
	g.sound.Play(SoundEnemyDeath)

	if kind == components.KindFuel && !g.firstTouch(id) {
		g.collector.RecordKill(kind)
		g.runs.RecordKill()
		return
	}
	if !g.award(kind) {
		return
	}
	if kind == components.KindBridge {
		g.renderer.Blink()
	}
	g.collector.RecordKill(kind)
	g.runs.RecordKill()
}

// award adds the points for a kind and grants any extra life. Unknown kinds
// are logged and score nothing.
func (g *Game) award(kind components.Kind) bool {
	ec, ok := g.cfg.Enemy(kind.String())
	if !ok || kind.IsBullet() || kind == components.KindPlayer {
		g.logger.Warn("unknown entity killed", "kind", kind.String(), "game_id", g.data.GameID)
		return false
	}

	if g.data.AwardPoints(ec.Points, g.cfg.Scoring.ExtraLifeEvery) {
		g.collector.RecordExtraLife()
		g.runs.RecordExtraLife()
		g.logger.Info("extra life", "game_id", g.data.GameID, "points", g.data.Points, "lives", g.data.Lives)
	}
	return true
}

// firstTouch marks a depot as scored and reports whether it was new.
func (g *Game) firstTouch(id uint32) bool {
	if g.scoredDepots[id] {
		return false
	}
	g.scoredDepots[id] = true
	return true
}

// refillFuel tops up the tank for one contact frame.
func (g *Game) refillFuel() {
	if g.data.Refuel(g.cfg.Fuel.RefillStep, g.cfg.Fuel.Max) {
		g.sound.Play(SoundTankingFull)
	} else {
		g.sound.Play(SoundTanking)
	}
	g.collector.RecordRefuel()
	g.runs.RecordRefuel()
}

// countShots records player bullets fired since the last frame.
func (g *Game) countShots() {
	shots := g.engine.PlayerShots()
	for ; g.lastShots < shots; g.lastShots++ {
		g.collector.RecordShot()
		g.runs.RecordShot()
	}
}
