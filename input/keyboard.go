// Package input reads player controls from the raylib window.
package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/riverraid/engine"
	"github.com/pthm-cable/riverraid/game"
)

// Bindings maps controls to raylib key codes.
type Bindings struct {
	Up, Down, Left, Right []int32
	Fire                  []int32
}

// DefaultBindings returns arrows plus WASD, with space or left ctrl to fire.
func DefaultBindings() Bindings {
	return Bindings{
		Up:    []int32{rl.KeyUp, rl.KeyW},
		Down:  []int32{rl.KeyDown, rl.KeyS},
		Left:  []int32{rl.KeyLeft, rl.KeyA},
		Right: []int32{rl.KeyRight, rl.KeyD},
		Fire:  []int32{rl.KeySpace, rl.KeyLeftControl},
	}
}

// Keyboard samples held keys once per frame.
type Keyboard struct {
	Bindings Bindings
}

// NewKeyboard creates a keyboard source with the default bindings.
func NewKeyboard() *Keyboard {
	return &Keyboard{Bindings: DefaultBindings()}
}

// Poll implements game.InputSource. Any is set when a key went down this frame,
// so holding a key does not skip through screens.
func (k *Keyboard) Poll() engine.Keys {
	b := k.Bindings
	return engine.Keys{
		Up:    anyDown(b.Up),
		Down:  anyDown(b.Down),
		Left:  anyDown(b.Left),
		Right: anyDown(b.Right),
		Fire:  anyDown(b.Fire),
		Any:   rl.GetKeyPressed() != 0,
	}
}

func anyDown(keys []int32) bool {
	for _, key := range keys {
		if rl.IsKeyDown(key) {
			return true
		}
	}
	return false
}

var _ game.InputSource = (*Keyboard)(nil)
