package telemetry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/riverraid/components"
	"github.com/pthm-cable/riverraid/engine"
)

// SnapshotVersion is incremented when the format changes.
const SnapshotVersion = 1

// Snapshot holds the frame state at a bookmark, for inspection and tests.
type Snapshot struct {
	Version int `yaml:"version"`
	GameID  int `yaml:"game_id"`

	TimestampMs float64 `yaml:"timestamp_ms"`
	Distance    float64 `yaml:"distance"`

	Points int     `yaml:"points"`
	Lives  int     `yaml:"lives"`
	Fuel   float64 `yaml:"fuel"`
	Bridge int     `yaml:"bridge"`

	Entities []EntityState `yaml:"entities"`

	Bookmark *Bookmark `yaml:"bookmark,omitempty"`
}

// EntityState holds one entity as written to disk.
type EntityState struct {
	ID   uint32 `yaml:"id"`
	Kind string `yaml:"kind"`

	X      float32 `yaml:"x"`
	Y      float32 `yaml:"y"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
	VelX   float32 `yaml:"vel_x"`
	VelY   float32 `yaml:"vel_y"`

	Frame      uint8 `yaml:"frame"`
	Direction  int8  `yaml:"direction"`
	Destroyed  bool  `yaml:"destroyed,omitempty"`
	TemplateID int   `yaml:"template_id,omitempty"`
}

// EntityStates converts an engine snapshot to its on-disk form.
func EntityStates(data []engine.Entity) []EntityState {
	out := make([]EntityState, len(data))
	for i, e := range data {
		out[i] = EntityState{
			ID:         e.ID,
			Kind:       e.Kind.String(),
			X:          e.X,
			Y:          e.Y,
			Width:      e.Width,
			Height:     e.Height,
			VelX:       e.VX,
			VelY:       e.VY,
			Frame:      e.Frame,
			Direction:  e.Direction,
			Destroyed:  e.Destroyed,
			TemplateID: e.TemplateID,
		}
	}
	return out
}

// CountKind returns how many saved entities have the given kind.
func (s *Snapshot) CountKind(kind components.Kind) int {
	name := kind.String()
	n := 0
	for _, e := range s.Entities {
		if e.Kind == name {
			n++
		}
	}
	return n
}

// SaveSnapshot writes a snapshot to disk.
// Returns the filepath where it was saved.
func SaveSnapshot(snapshot *Snapshot, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	name := fmt.Sprintf("snapshot_g%d_%.0f", snapshot.GameID, snapshot.TimestampMs)
	if snapshot.Bookmark != nil {
		sanitized := strings.ReplaceAll(string(snapshot.Bookmark.Type), " ", "_")
		name += "_" + sanitized
	}
	name += ".yaml"

	path := filepath.Join(dir, name)

	data, err := yaml.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}

	return path, nil
}

// LoadSnapshot reads a snapshot from disk.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	if snapshot.Version != SnapshotVersion {
		return nil, fmt.Errorf("snapshot version %d, want %d", snapshot.Version, SnapshotVersion)
	}

	return &snapshot, nil
}
