package game

import (
	"github.com/pthm-cable/riverraid/telemetry"
)

// sample reads the state recorded at a window boundary.
func (g *Game) sample() telemetry.Sample {
	return telemetry.Sample{
		GameID:   g.data.GameID,
		Distance: float64(g.engine.Distance()),
		Points:   g.data.Points,
		Lives:    g.data.Lives,
		Fuel:     g.data.Fuel,
		Bridge:   g.data.Bridge,
		Live:     g.engine.Count(),
	}
}

// flushTelemetry checks if the stats window should be flushed and handles bookmarks.
func (g *Game) flushTelemetry(nowMs float64) {
	if !g.collector.ShouldFlush(nowMs) {
		return
	}

	stats := g.collector.Flush(nowMs, g.sample())
	perfStats := g.perfCollector.Stats()

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := g.outputManager.WriteTelemetry(stats); err != nil {
		g.logger.Error("failed to write telemetry", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, stats.WindowEndMs); err != nil {
		g.logger.Error("failed to write perf", "error", err)
	}

	for _, bm := range g.bookmarks.Check(stats) {
		if g.logStats {
			bm.LogBookmark()
		}
		if err := g.outputManager.WriteBookmark(bm); err != nil {
			g.logger.Error("failed to write bookmark", "error", err)
		}
		if g.snapshots {
			g.saveSnapshot(nowMs, &bm)
		}
	}
}

// saveSnapshot writes the current frame next to the other output files.
func (g *Game) saveSnapshot(nowMs float64, bookmark *telemetry.Bookmark) {
	path, err := g.outputManager.WriteSnapshot(g.createSnapshot(nowMs, bookmark))
	if err != nil {
		g.logger.Error("failed to save snapshot", "error", err)
		return
	}
	if path != "" {
		g.logger.Info("snapshot saved", "path", path, "game_id", g.data.GameID)
	}
}

// createSnapshot builds a snapshot from the current state.
func (g *Game) createSnapshot(nowMs float64, bookmark *telemetry.Bookmark) *telemetry.Snapshot {
	return &telemetry.Snapshot{
		Version:     telemetry.SnapshotVersion,
		GameID:      g.data.GameID,
		TimestampMs: nowMs,
		Distance:    float64(g.engine.Distance()),
		Points:      g.data.Points,
		Lives:       g.data.Lives,
		Fuel:        g.data.Fuel,
		Bridge:      g.data.Bridge,
		Entities:    telemetry.EntityStates(g.engine.Data()),
		Bookmark:    bookmark,
	}
}

// finishRun closes the run record and offers it to the hall of fame.
func (g *Game) finishRun(nowMs float64, highScore bool) {
	if !g.runs.Active() {
		return
	}
	rec := g.runs.Finish(nowMs, g.data.Points, float64(g.engine.Distance()), g.data.Bridge, highScore)

	if err := g.outputManager.WriteRun(rec); err != nil {
		g.logger.Error("failed to write run", "error", err)
	}
	if g.hallOfFame.Consider(rec) {
		if err := g.outputManager.WriteHallOfFame(g.hallOfFame); err != nil {
			g.logger.Error("failed to write hall of fame", "error", err)
		}
	}
	logRun(rec)
}
