package game

import "github.com/pthm-cable/riverraid/engine"

// Sound names played by the game.
const (
	SoundBoot        = "boot"
	SoundEnemyDeath  = "enemyDeath"
	SoundTanking     = "tanking"
	SoundTankingFull = "tankingFull"
	SoundLowFuel     = "lowFuel"
	SoundFlightStart = "flightStart"
)

// Renderer draws frames. Calls arrive in frame order from the game goroutine.
type Renderer interface {
	// Blackout clears the screen before a new game.
	Blackout()
	// DrawMap draws the river background at a distance. offset shifts the map
	// while a slide is still approaching its target.
	DrawMap(distance, offset float32)
	// Draw draws the entity snapshot and the HUD.
	Draw(entities []engine.Entity, data PlayerData)
	// Blink flashes the river once, after a bridge is destroyed.
	Blink()
	// SetGameStarted switches between the attract screen and the game HUD.
	SetGameStarted(started bool)
}

// SoundPlayer plays a named sound. Unknown names are ignored by implementations.
type SoundPlayer interface {
	Play(name string)
}

// ScoreStore persists one best score.
type ScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// InputSource returns the key snapshot for one frame.
type InputSource interface {
	Poll() engine.Keys
}

// NopRenderer draws nothing. Used in headless runs.
type NopRenderer struct{}

func (NopRenderer) Blackout()                        {}
func (NopRenderer) DrawMap(distance, offset float32) {}
func (NopRenderer) Draw([]engine.Entity, PlayerData) {}
func (NopRenderer) Blink()                           {}
func (NopRenderer) SetGameStarted(started bool)      {}

// NopSound is silent.
type NopSound struct{}

func (NopSound) Play(string) {}

// MemoryScores keeps the best score in memory only.
type MemoryScores struct {
	Score int
}

func (m *MemoryScores) Load() (int, error) { return m.Score, nil }

func (m *MemoryScores) Save(score int) error {
	m.Score = score
	return nil
}

// IdleInput never presses anything.
type IdleInput struct{}

func (IdleInput) Poll() engine.Keys { return engine.Keys{} }
