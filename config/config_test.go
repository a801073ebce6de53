package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}

	if cfg.Screen.Width != 800 || cfg.Screen.Height != 600 {
		t.Errorf("screen = %dx%d, want 800x600", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Derived.ViewportH != 600 {
		t.Errorf("derived viewport height = %v, want 600", cfg.Derived.ViewportH)
	}
	if len(cfg.Bridges.Distances) != 10 {
		t.Errorf("bridge count = %d, want 10", len(cfg.Bridges.Distances))
	}

	points := map[string]int{
		"helicopter":         60,
		"shootingHelicopter": 150,
		"ship":               30,
		"balloon":            60,
		"plane":              100,
		"tank":               250,
		"fuel":               80,
		"bridge":             500,
	}
	for name, want := range points {
		e, ok := cfg.Enemy(name)
		if !ok {
			t.Errorf("missing enemy config %q", name)
			continue
		}
		if e.Points != want {
			t.Errorf("%s points = %d, want %d", name, e.Points, want)
		}
	}
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	data := []byte("fuel:\n  refill_step: 0.5\nscoring:\n  initial_lives: 5\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Fuel.RefillStep != 0.5 {
		t.Errorf("refill step = %v, want 0.5", cfg.Fuel.RefillStep)
	}
	if cfg.Scoring.InitialLives != 5 {
		t.Errorf("initial lives = %d, want 5", cfg.Scoring.InitialLives)
	}
	// Untouched fields keep their defaults
	if cfg.Fuel.Max != 100 {
		t.Errorf("fuel max = %v, want default 100", cfg.Fuel.Max)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero screen", func(c *Config) { c.Screen.Width = 0 }},
		{"zero time unit", func(c *Config) { c.Timing.TimeUnitMs = 0 }},
		{"bridge arrays mismatch", func(c *Config) { c.Bridges.Centers = c.Bridges.Centers[:3] }},
		{"bridge distances not increasing", func(c *Config) { c.Bridges.Distances[2] = 1 }},
		{"negative enemy size", func(c *Config) {
			e := c.Enemies["tank"]
			e.Width = -1
			c.Enemies["tank"] = e
		}},
		{"speed caps inverted", func(c *Config) { c.Player.MinSpeedY = 9 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := MustLoad("")
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestBridgeLookupsClamp(t *testing.T) {
	cfg := MustLoad("")

	if got := cfg.BridgeDistance(1); got != 458 {
		t.Errorf("BridgeDistance(1) = %v, want 458", got)
	}
	if got := cfg.BridgeCenter(2); got != 406 {
		t.Errorf("BridgeCenter(2) = %v, want 406", got)
	}
	if got := cfg.BridgeDistance(99); got != 26112 {
		t.Errorf("BridgeDistance(99) = %v, want last distance", got)
	}
	if got := cfg.BridgeCenter(0); got != 400 {
		t.Errorf("BridgeCenter(0) = %v, want first center", got)
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg := MustLoad("")
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load snapshot: %v", err)
	}
	if reloaded.Player.DistanceOffset != cfg.Player.DistanceOffset {
		t.Errorf("distance offset = %v, want %v", reloaded.Player.DistanceOffset, cfg.Player.DistanceOffset)
	}
}
