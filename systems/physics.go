package systems

import (
	"github.com/pthm-cable/riverraid/components"
)

// Integrate advances a position by velocity x delta on the axes flagged as moving.
// Delta is in engine time units; integration is linear in delta.
func Integrate(pos *components.Position, vel components.Velocity, motion components.Motion, delta float32) {
	if motion.MovingX {
		pos.X += vel.X * delta
	}
	if motion.MovingY {
		pos.Y += vel.Y * delta
	}
}

// Animate advances an animation cycle by delta time units.
func Animate(motion *components.Motion, delta, frameDuration float32) {
	if motion.FrameCount <= 1 || frameDuration <= 0 {
		return
	}
	motion.FrameClock += delta
	for motion.FrameClock >= frameDuration {
		motion.FrameClock -= frameDuration
		motion.Frame = (motion.Frame + 1) % motion.FrameCount
	}
}

// approach moves v toward target by at most step.
func approach(v, target, step float32) float32 {
	if v < target {
		v += step
		if v > target {
			v = target
		}
	} else if v > target {
		v -= step
		if v < target {
			v = target
		}
	}
	return v
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
