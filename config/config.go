// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all game configuration parameters.
type Config struct {
	Screen      ScreenConfig           `yaml:"screen"`
	World       WorldConfig            `yaml:"world"`
	Timing      TimingConfig           `yaml:"timing"`
	Player      PlayerConfig           `yaml:"player"`
	Bullets     BulletsConfig          `yaml:"bullets"`
	Animation   AnimationConfig        `yaml:"animation"`
	Enemies     map[string]EnemyConfig `yaml:"enemies"`
	Bridges     BridgesConfig          `yaml:"bridges"`
	Fuel        FuelConfig             `yaml:"fuel"`
	Scoring     ScoringConfig          `yaml:"scoring"`
	Telemetry   TelemetryConfig        `yaml:"telemetry"`
	Persistence PersistenceConfig      `yaml:"persistence"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings. Width and height double as the viewport size.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// WorldConfig holds world extents.
type WorldConfig struct {
	EndDistance   float64 `yaml:"end_distance"`   // showcase loops after this distance
	DespawnMargin float64 `yaml:"despawn_margin"` // slack past the trailing edge before removal
	SpawnMargin   float64 `yaml:"spawn_margin"`   // how far past the leading edge enemies are admitted
}

// TimingConfig holds frame clock parameters. Timestamps are milliseconds.
type TimingConfig struct {
	TimeUnitMs        float64 `yaml:"time_unit_ms"`        // engine delta = elapsed ms / this
	DeathPauseMs      float64 `yaml:"death_pause_ms"`      // death frame hold
	BootSlideSpeed    float64 `yaml:"boot_slide_speed"`    // distance per ms, first slide in
	RespawnSlideSpeed float64 `yaml:"respawn_slide_speed"` // distance per ms, slide back after death
	ShowcaseSpeed     float64 `yaml:"showcase_speed"`      // distance per ms in attract mode
	SlideLeadIn       float64 `yaml:"slide_lead_in"`       // slide starts this far before the bridge
}

// PlayerConfig holds the player craft's size and flight model.
type PlayerConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	DistanceOffset float64 `yaml:"distance_offset"` // player y = distance + offset
	MaxSpeedX      float64 `yaml:"max_speed_x"`
	MaxSpeedY      float64 `yaml:"max_speed_y"`
	MinSpeedY      float64 `yaml:"min_speed_y"`
	CruiseSpeedY   float64 `yaml:"cruise_speed_y"`
	Acceleration   float64 `yaml:"acceleration"` // speed change per time unit
}

// BulletConfig holds one projectile kind.
type BulletConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// BulletsConfig holds both projectile kinds.
type BulletsConfig struct {
	Player BulletConfig `yaml:"player"`
	Enemy  BulletConfig `yaml:"enemy"`
}

// AnimationConfig holds sprite cycling parameters.
type AnimationConfig struct {
	FrameDuration float64 `yaml:"frame_duration"` // time units per animation frame
}

// EnemyConfig describes one non-player kind: hostile enemies, fuel depots and bridges.
type EnemyConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Speed           float64 `yaml:"speed"`
	Points          int     `yaml:"points"`
	Shoots          bool    `yaml:"shoots"`
	FireRange       float64 `yaml:"fire_range"`
	PatrolRange     float64 `yaml:"patrol_range"`     // 0 = unbounded (wraps)
	ActivationRange float64 `yaml:"activation_range"` // starts moving when the player is this close
	Frames          int     `yaml:"frames"`
}

// BridgesConfig holds checkpoint layout.
type BridgesConfig struct {
	Distances     []float64 `yaml:"distances"`
	Centers       []float64 `yaml:"centers"`
	SegmentOffset float64   `yaml:"segment_offset"` // enemies with y-offset beyond the checkpoint are seeded
}

// FuelConfig holds fuel economics.
type FuelConfig struct {
	Max          float64 `yaml:"max"`
	DrainDivisor float64 `yaml:"drain_divisor"` // fuel lost per frame = elapsed ms / this
	RefillStep   float64 `yaml:"refill_step"`   // fuel gained per contact frame
	LowThreshold float64 `yaml:"low_threshold"`
}

// ScoringConfig holds lives and bonus parameters.
type ScoringConfig struct {
	InitialLives   int `yaml:"initial_lives"`
	ExtraLifeEvery int `yaml:"extra_life_every"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	WindowSeconds float64 `yaml:"window_seconds"`
}

// PersistenceConfig holds the high score location. Empty = user config dir.
type PersistenceConfig struct {
	HighscoreFile string `yaml:"highscore_file"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ViewportW float64 // Screen.Width as float64
	ViewportH float64 // Screen.Height as float64
	WindowMs  float64 // Telemetry window in milliseconds
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// MustLoad is like Load but panics on error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(fmt.Sprintf("config: failed to load: %v", err))
	}
	return cfg
}

// Validate checks the invariants the engine relies on.
func (c *Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalid, c.Screen.Width, c.Screen.Height)
	}
	if c.Timing.TimeUnitMs <= 0 {
		return fmt.Errorf("%w: timing.time_unit_ms must be positive", ErrInvalid)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("%w: player size must be positive", ErrInvalid)
	}
	if c.Player.MinSpeedY > c.Player.MaxSpeedY {
		return fmt.Errorf("%w: player.min_speed_y above max_speed_y", ErrInvalid)
	}
	if len(c.Bridges.Distances) == 0 {
		return fmt.Errorf("%w: no bridges configured", ErrInvalid)
	}
	if len(c.Bridges.Distances) != len(c.Bridges.Centers) {
		return fmt.Errorf("%w: %d bridge distances but %d centers",
			ErrInvalid, len(c.Bridges.Distances), len(c.Bridges.Centers))
	}
	for i := 1; i < len(c.Bridges.Distances); i++ {
		if c.Bridges.Distances[i] <= c.Bridges.Distances[i-1] {
			return fmt.Errorf("%w: bridge distances must increase (index %d)", ErrInvalid, i)
		}
	}
	for name, e := range c.Enemies {
		if e.Width <= 0 || e.Height <= 0 {
			return fmt.Errorf("%w: enemies.%s size must be positive", ErrInvalid, name)
		}
	}
	if c.Fuel.Max <= 0 || c.Fuel.DrainDivisor <= 0 {
		return fmt.Errorf("%w: fuel.max and fuel.drain_divisor must be positive", ErrInvalid)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ViewportW = float64(c.Screen.Width)
	c.Derived.ViewportH = float64(c.Screen.Height)
	c.Derived.WindowMs = c.Telemetry.WindowSeconds * 1000
	if c.Animation.FrameDuration <= 0 {
		c.Animation.FrameDuration = 1
	}
}

// Enemy returns the settings for a non-player kind by name.
func (c *Config) Enemy(name string) (EnemyConfig, bool) {
	e, ok := c.Enemies[name]
	return e, ok
}

// BridgeCenter returns the respawn x for a 1-based bridge index, clamped to the table.
func (c *Config) BridgeCenter(bridge int) float64 {
	return c.Bridges.Centers[clampIndex(bridge-1, len(c.Bridges.Centers))]
}

// BridgeDistance returns the checkpoint distance for a 1-based bridge index, clamped to the table.
func (c *Config) BridgeDistance(bridge int) float64 {
	return c.Bridges.Distances[clampIndex(bridge-1, len(c.Bridges.Distances))]
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
