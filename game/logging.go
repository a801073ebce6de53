package game

import (
	"fmt"
	"io"

	"github.com/pthm-cable/riverraid/telemetry"
)

// logWriter is the destination for log output.
var logWriter io.Writer

// SetLogWriter sets the log output destination.
func SetLogWriter(w io.Writer) {
	logWriter = w
}

// Logf writes a formatted log message.
func Logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if logWriter != nil {
		fmt.Fprintln(logWriter, msg)
	} else {
		fmt.Println(msg)
	}
}

// logRun logs a finished game.
func logRun(rec telemetry.RunRecord) {
	hitRate := 0.0
	if rec.Shots > 0 {
		hitRate = float64(rec.Kills) / float64(rec.Shots) * 100
	}
	Logf("=== Game %d over after %.1fs ===", rec.GameID, rec.DurationMs/1000)
	Logf("Points: %d%s | Bridge: %d | Distance: %.0f", rec.Points, newBest(rec.HighScore), rec.Bridge, rec.Distance)
	Logf("Shots: %d, Kills: %d (%.0f%%), Refuels: %d", rec.Shots, rec.Kills, hitRate, rec.Refuels)
	Logf("Deaths: %d, Extra lives: %d, Last: %s", rec.Deaths, rec.ExtraLives, rec.LastCause)
	Logf("")
}

func newBest(best bool) string {
	if best {
		return " (new best)"
	}
	return ""
}

// LogSummary logs the session: frame cost and the hall of fame.
func (g *Game) LogSummary() {
	perf := g.perfCollector.Stats()
	Logf("=== Session @ frame %d | state %s ===", g.frames, g.state)
	Logf("Frame: avg %s, max %s, headroom %.0f fps", perf.AvgFrame, perf.MaxFrame, perf.Headroom)
	for _, phase := range []string{
		telemetry.PhaseInput,
		telemetry.PhaseEngine,
		telemetry.PhaseRules,
		telemetry.PhaseRender,
		telemetry.PhaseTelemetry,
	} {
		Logf("  %-10s %5.1f%%", phase, perf.PhasePct[phase])
	}

	Logf("High score: %d", g.data.HighScore)
	if g.hallOfFame.Size() == 0 {
		Logf("No finished games")
		return
	}
	Logf("Best runs:")
	for i, e := range g.hallOfFame.Entries {
		Logf("  #%d: game %d - %d points, bridge %d, %d kills, ended by %s",
			i+1, e.GameID, e.Points, e.Bridge, e.Kills, e.LastCause)
	}
}
