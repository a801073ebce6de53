package telemetry

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// HallEntry is one finished run worth remembering.
type HallEntry struct {
	GameID     int     `yaml:"game_id"`
	Points     int     `yaml:"points"`
	Bridge     int     `yaml:"bridge"`
	Distance   float64 `yaml:"distance"`
	DurationMs float64 `yaml:"duration_ms"`
	Kills      int     `yaml:"kills"`
	LastCause  string  `yaml:"last_death_cause"`
}

// HallOfFame keeps the best runs of a session, sorted by points descending.
type HallOfFame struct {
	Entries []HallEntry `yaml:"entries"`
	maxSize int
}

// NewHallOfFame creates an empty hall with the given capacity.
func NewHallOfFame(maxSize int) *HallOfFame {
	if maxSize < 1 {
		maxSize = 10
	}
	return &HallOfFame{
		Entries: make([]HallEntry, 0, maxSize),
		maxSize: maxSize,
	}
}

// Consider offers a finished run. Returns true if it made the hall.
func (hof *HallOfFame) Consider(rec RunRecord) bool {
	entry := HallEntry{
		GameID:     rec.GameID,
		Points:     rec.Points,
		Bridge:     rec.Bridge,
		Distance:   rec.Distance,
		DurationMs: rec.DurationMs,
		Kills:      rec.Kills,
		LastCause:  rec.LastCause,
	}

	// Find insertion point (sorted descending by points, earlier games first on ties)
	idx := sort.Search(len(hof.Entries), func(i int) bool {
		return hof.Entries[i].Points < entry.Points
	})

	// If the hall is full and the entry would be last, skip it
	if len(hof.Entries) >= hof.maxSize && idx >= hof.maxSize {
		return false
	}

	hof.Entries = append(hof.Entries, HallEntry{})
	copy(hof.Entries[idx+1:], hof.Entries[idx:])
	hof.Entries[idx] = entry

	if len(hof.Entries) > hof.maxSize {
		hof.Entries = hof.Entries[:hof.maxSize]
	}
	return true
}

// Size returns the number of entries.
func (hof *HallOfFame) Size() int {
	return len(hof.Entries)
}

// TopPoints returns the best score in the hall, or 0 if it is empty.
func (hof *HallOfFame) TopPoints() int {
	if len(hof.Entries) == 0 {
		return 0
	}
	return hof.Entries[0].Points
}

// Marshal serializes the hall as YAML.
func (hof *HallOfFame) Marshal() ([]byte, error) {
	return yaml.Marshal(hof)
}

// LoadHallOfFameFromFile reads a hall written by OutputManager.WriteHallOfFame.
// The capacity grows to fit the file if needed.
func LoadHallOfFameFromFile(path string, maxSize int) (*HallOfFame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading hall of fame: %w", err)
	}

	var raw HallOfFame
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing hall of fame YAML: %w", err)
	}

	if len(raw.Entries) > maxSize {
		maxSize = len(raw.Entries)
	}
	hof := NewHallOfFame(maxSize)
	for _, e := range raw.Entries {
		hof.Consider(RunRecord{
			GameID:     e.GameID,
			Points:     e.Points,
			Bridge:     e.Bridge,
			Distance:   e.Distance,
			DurationMs: e.DurationMs,
			Kills:      e.Kills,
			LastCause:  e.LastCause,
		})
	}
	return hof, nil
}
