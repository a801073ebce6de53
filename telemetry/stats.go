package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated gameplay statistics for one time window.
type WindowStats struct {
	WindowStartMs float64 `csv:"-"`
	WindowEndMs   float64 `csv:"window_end_ms"`
	GameID        int     `csv:"game_id"`

	// State at window end
	Distance float64 `csv:"distance"`
	Points   int     `csv:"points"`
	Lives    int     `csv:"lives"`
	Fuel     float64 `csv:"fuel"`
	Bridge   int     `csv:"bridge"`
	Live     int     `csv:"live_entities"`

	// Progress during the window
	DistanceGained float64 `csv:"distance_gained"`
	PointsGained   int     `csv:"points_gained"`
	MinFuel        float64 `csv:"min_fuel"`

	// Combat
	Shots      int     `csv:"shots"`
	Kills      int     `csv:"kills"`
	HitRate    float64 `csv:"hit_rate"`
	KillsByKind
	Refuels    int `csv:"refuels"`
	Deaths     int `csv:"deaths"`
	ExtraLives int `csv:"extra_lives"`

	// Frame timing in milliseconds
	FrameMsMean float64 `csv:"frame_ms_mean"`
	FrameMsStd  float64 `csv:"frame_ms_std"`
	FrameMsP50  float64 `csv:"frame_ms_p50"`
	FrameMsP90  float64 `csv:"frame_ms_p90"`
	FrameMsMax  float64 `csv:"frame_ms_max"`
}

// KillsByKind splits kills into fixed CSV columns.
type KillsByKind struct {
	Helicopters         int `csv:"kills_helicopter"`
	ShootingHelicopters int `csv:"kills_shooting_helicopter"`
	Ships               int `csv:"kills_ship"`
	Balloons            int `csv:"kills_balloon"`
	Planes              int `csv:"kills_plane"`
	Tanks               int `csv:"kills_tank"`
	Fuel                int `csv:"kills_fuel"`
	Bridges             int `csv:"kills_bridge"`
}

// Percentile returns the p-th percentile of a sorted slice by linear interpolation.
// p is in [0, 1]. Returns 0 for an empty slice.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}
	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// FrameStats summarizes frame deltas.
type FrameStats struct {
	Mean, Std, P50, P90, Max float64
}

// ComputeFrameStats summarizes a set of frame deltas. The input is not modified.
func ComputeFrameStats(values []float64) FrameStats {
	n := len(values)
	if n == 0 {
		return FrameStats{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	fs := FrameStats{
		Mean: stat.Mean(sorted, nil),
		P50:  Percentile(sorted, 0.50),
		P90:  Percentile(sorted, 0.90),
		Max:  floats.Max(sorted),
	}
	if n > 1 {
		fs.Std = stat.StdDev(sorted, nil)
	}
	return fs
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("window_end_ms", s.WindowEndMs),
		slog.Int("game_id", s.GameID),
		slog.Float64("distance", s.Distance),
		slog.Int("points", s.Points),
		slog.Int("lives", s.Lives),
		slog.Float64("fuel", s.Fuel),
		slog.Int("bridge", s.Bridge),
		slog.Int("shots", s.Shots),
		slog.Int("kills", s.Kills),
		slog.Float64("hit_rate", s.HitRate),
		slog.Int("refuels", s.Refuels),
		slog.Int("deaths", s.Deaths),
		slog.Float64("frame_ms_p90", s.FrameMsP90),
	)
}

// LogStats logs the window using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end_ms", s.WindowEndMs,
		"game_id", s.GameID,
		"distance", s.Distance,
		"distance_gained", s.DistanceGained,
		"points", s.Points,
		"points_gained", s.PointsGained,
		"lives", s.Lives,
		"fuel", s.Fuel,
		"min_fuel", s.MinFuel,
		"bridge", s.Bridge,
		"live_entities", s.Live,
		"shots", s.Shots,
		"kills", s.Kills,
		"hit_rate", s.HitRate,
		"refuels", s.Refuels,
		"deaths", s.Deaths,
		"extra_lives", s.ExtraLives,
		"frame_ms_mean", s.FrameMsMean,
		"frame_ms_p90", s.FrameMsP90,
	)
}
