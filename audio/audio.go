// Package audio plays the game's sound effects through raylib.
package audio

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/riverraid/game"
)

// Files maps sound names to file names inside the sound directory.
var Files = map[string]string{
	game.SoundBoot:        "boot.wav",
	game.SoundEnemyDeath:  "enemy_death.wav",
	game.SoundTanking:     "tanking.wav",
	game.SoundTankingFull: "tanking_full.wav",
	game.SoundLowFuel:     "low_fuel.wav",
	game.SoundFlightStart: "flight_start.wav",
}

// Player implements game.SoundPlayer. Missing files leave their sound silent.
type Player struct {
	sounds map[string]rl.Sound
	logger *slog.Logger
}

// NewPlayer opens the audio device and loads every sound found in dir.
// Must be called after the window is created.
func NewPlayer(dir string, logger *slog.Logger) *Player {
	rl.InitAudioDevice()
	p := &Player{
		sounds: make(map[string]rl.Sound, len(Files)),
		logger: logger,
	}
	for name, file := range Files {
		path := filepath.Join(dir, file)
		if _, err := os.Stat(path); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				logger.Warn("sound unreadable", "name", name, "path", path, "error", err)
			}
			continue
		}
		p.sounds[name] = rl.LoadSound(path)
	}
	logger.Info("sounds loaded", "dir", dir, "count", len(p.sounds))
	return p
}

// Play starts a sound. A sound already playing is left alone, so per-frame
// calls such as the low fuel alarm do not restart it every frame.
func (p *Player) Play(name string) {
	s, ok := p.sounds[name]
	if !ok || rl.IsSoundPlaying(s) {
		return
	}
	rl.PlaySound(s)
}

// Unload frees sounds and closes the device.
func (p *Player) Unload() {
	for name, s := range p.sounds {
		rl.UnloadSound(s)
		delete(p.sounds, name)
	}
	rl.CloseAudioDevice()
}

var _ game.SoundPlayer = (*Player)(nil)
