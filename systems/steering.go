package systems

import "github.com/pthm-cable/riverraid/components"

// Keys is a read-only snapshot of the controls held during one tick.
type Keys struct {
	Up, Down, Left, Right bool
	Fire                  bool
	Any                   bool // any key went down this frame
}

// Flight holds the player's speed caps and acceleration rate.
type Flight struct {
	MaxSpeedX    float32
	MaxSpeedY    float32
	MinSpeedY    float32
	CruiseSpeedY float32
	Acceleration float32 // speed change per time unit
}

// Player animation frames, banking left / level / banking right.
const (
	FrameBankLeft  uint8 = 0
	FrameLevel     uint8 = 1
	FrameBankRight uint8 = 2
)

// Steer applies held keys to the player's velocity within the flight caps.
// Speed changes are rate x delta so the result does not depend on frame rate.
func Steer(vel *components.Velocity, motion *components.Motion, keys Keys, f Flight, delta float32) {
	step := f.Acceleration * delta

	// Horizontal: accelerate toward the held side, coast back to zero otherwise
	targetX := float32(0)
	motion.Direction = 0
	switch {
	case keys.Left && !keys.Right:
		targetX = -f.MaxSpeedX
		motion.Direction = -1
	case keys.Right && !keys.Left:
		targetX = f.MaxSpeedX
		motion.Direction = 1
	}
	vel.X = clamp(approach(vel.X, targetX, step), -f.MaxSpeedX, f.MaxSpeedX)

	// Vertical: throttle between min and max, relax to cruise
	targetY := f.CruiseSpeedY
	switch {
	case keys.Up && !keys.Down:
		targetY = f.MaxSpeedY
	case keys.Down && !keys.Up:
		targetY = f.MinSpeedY
	}
	vel.Y = clamp(approach(vel.Y, targetY, step), f.MinSpeedY, f.MaxSpeedY)

	motion.MovingX = vel.X != 0
	motion.MovingY = true

	switch motion.Direction {
	case -1:
		motion.Frame = FrameBankLeft
	case 1:
		motion.Frame = FrameBankRight
	default:
		motion.Frame = FrameLevel
	}
}
