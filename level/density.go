package level

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/riverraid/traits"
)

// SegmentStats summarizes one bridge segment of the table.
type SegmentStats struct {
	Segment  int     `csv:"segment"`   // 1-based bridge index
	Start    float64 `csv:"start"`     // segment start distance
	End      float64 `csv:"end"`       // next bridge distance, or world end
	Rows     int     `csv:"rows"`      // rows inside the segment
	Hostiles int     `csv:"hostiles"`  // enemy craft, bridges excluded
	Fuel     int     `csv:"fuel"`      // fuel depots
	MeanGap  float64 `csv:"mean_gap"`  // mean y spacing between consecutive rows
	MinGap   float64 `csv:"min_gap"`   // tightest spacing
	GapStdev float64 `csv:"gap_stdev"` // spacing spread
}

// Density splits the table at the bridge distances and reports spacing per segment.
// worldEnd closes the last segment.
func (t Table) Density(bridges []float64, worldEnd float64) []SegmentStats {
	out := make([]SegmentStats, 0, len(bridges))
	for i, start := range bridges {
		end := worldEnd
		if i+1 < len(bridges) {
			end = bridges[i+1]
		}
		s := SegmentStats{Segment: i + 1, Start: start, End: end}

		var ys []float64
		for _, o := range t {
			if o.Y < start || o.Y >= end {
				continue
			}
			s.Rows++
			ys = append(ys, o.Y)
			kind, _ := o.KindOf()
			tt := kind.Traits()
			switch {
			case tt.Has(traits.Pickup):
				s.Fuel++
			case traits.IsEnemy(tt) && !tt.Has(traits.Obstacle):
				s.Hostiles++
			}
		}

		if len(ys) > 1 {
			gaps := make([]float64, len(ys)-1)
			for j := 1; j < len(ys); j++ {
				gaps[j-1] = ys[j] - ys[j-1]
			}
			s.MeanGap = stat.Mean(gaps, nil)
			s.MinGap = floats.Min(gaps)
			s.GapStdev = stat.StdDev(gaps, nil)
		}
		out = append(out, s)
	}
	return out
}
