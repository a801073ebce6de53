package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/riverraid/components"
	"github.com/pthm-cable/riverraid/engine"
)

func TestSnapshotSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()

	data := []engine.Entity{
		{ID: 1, Kind: components.KindPlayer, X: 384, Y: 660, Width: 32, Height: 30, VY: 2, Frame: 1},
		{ID: 7, Kind: components.KindTank, X: 100, Y: 700, Width: 32, Height: 16, VX: 0.8, Direction: 1, TemplateID: 12},
		{ID: 9, Kind: components.KindBridge, X: 336, Y: 3316, Width: 128, Height: 40, TemplateID: 15},
	}
	snapshot := &Snapshot{
		Version:     SnapshotVersion,
		GameID:      2,
		TimestampMs: 41250,
		Distance:    458,
		Points:      1830,
		Lives:       2,
		Fuel:        63.5,
		Bridge:      1,
		Entities:    EntityStates(data),
		Bookmark: &Bookmark{
			Type:        BookmarkFuelCrisis,
			WindowEndMs: 41250,
			GameID:      2,
			Description: "Test bookmark",
		},
	}

	path, err := SaveSnapshot(snapshot, tmpDir)
	if err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}
	if !strings.HasSuffix(path, "snapshot_g2_41250_fuel_crisis.yaml") {
		t.Errorf("unexpected snapshot name %s", filepath.Base(path))
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("snapshot file was not created")
	}

	loaded, err := LoadSnapshot(path)
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}

	if loaded.GameID != 2 || loaded.Distance != 458 || loaded.Fuel != 63.5 {
		t.Errorf("header mismatch: %+v", loaded)
	}
	if len(loaded.Entities) != 3 {
		t.Fatalf("entity count = %d, want 3", len(loaded.Entities))
	}
	tank := loaded.Entities[1]
	if tank.Kind != "tank" || tank.VelX != 0.8 || tank.Direction != 1 || tank.TemplateID != 12 {
		t.Errorf("tank mismatch: %+v", tank)
	}
	if loaded.CountKind(components.KindBridge) != 1 {
		t.Errorf("bridge count = %d, want 1", loaded.CountKind(components.KindBridge))
	}
	if loaded.Bookmark == nil || loaded.Bookmark.Type != BookmarkFuelCrisis {
		t.Errorf("bookmark mismatch: %+v", loaded.Bookmark)
	}
}

func TestLoadSnapshotVersionMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.yaml")
	if err := os.WriteFile(path, []byte("version: 99\ngame_id: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnapshot(path); err == nil {
		t.Error("expected error for unknown snapshot version")
	}
}

func TestHallOfFame(t *testing.T) {
	hof := NewHallOfFame(3)

	for i, pts := range []int{500, 2500, 1200, 2500} {
		hof.Consider(RunRecord{GameID: i + 1, Points: pts})
	}
	if hof.Size() != 3 {
		t.Fatalf("size = %d, want 3", hof.Size())
	}
	if hof.TopPoints() != 2500 {
		t.Errorf("top = %d, want 2500", hof.TopPoints())
	}
	// Ties keep the earlier game first
	if hof.Entries[0].GameID != 2 || hof.Entries[1].GameID != 4 {
		t.Errorf("tie order = %d,%d, want 2,4", hof.Entries[0].GameID, hof.Entries[1].GameID)
	}
	if hof.Consider(RunRecord{GameID: 9, Points: 100}) {
		t.Error("a run below a full hall should be rejected")
	}

	om, err := NewOutputManager(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer om.Close()
	if err := om.WriteHallOfFame(hof); err != nil {
		t.Fatalf("WriteHallOfFame: %v", err)
	}

	loaded, err := LoadHallOfFameFromFile(filepath.Join(om.Dir(), "hall_of_fame.yaml"), 2)
	if err != nil {
		t.Fatalf("LoadHallOfFameFromFile: %v", err)
	}
	if loaded.Size() != 3 || loaded.TopPoints() != 2500 || loaded.Entries[2].Points != 1200 {
		t.Errorf("loaded hall = %+v", loaded.Entries)
	}
}
