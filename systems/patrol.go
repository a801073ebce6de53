package systems

import (
	"github.com/pthm-cable/riverraid/components"
)

// Activate wakes an idle enemy once the player is within range along the scroll axis.
func Activate(patrol *components.Patrol, enemyY, playerY, activationRange float32) {
	if patrol.Active {
		return
	}
	d := enemyY - playerY
	if d < 0 {
		d = -d
	}
	if d <= activationRange {
		patrol.Active = true
	}
}

// Bounce keeps a patrolling enemy inside its band and the viewport, reversing at the ends.
func Bounce(pos *components.Position, vel *components.Velocity, motion *components.Motion, patrol components.Patrol, body components.Body, viewportW float32) {
	minX := patrol.MinX
	if minX < 0 {
		minX = 0
	}
	maxX := patrol.MaxX
	if maxX > viewportW {
		maxX = viewportW
	}

	if pos.X < minX {
		pos.X = minX
		if vel.X < 0 {
			vel.X = -vel.X
		}
	}
	if pos.X+body.Width > maxX {
		pos.X = maxX - body.Width
		if vel.X > 0 {
			vel.X = -vel.X
		}
	}

	switch {
	case vel.X < 0:
		motion.Direction = -1
	case vel.X > 0:
		motion.Direction = 1
	}
}

// Wrap re-enters an entity on the far side once it fully leaves the viewport.
func Wrap(pos *components.Position, body components.Body, viewportW float32) {
	if pos.X > viewportW {
		pos.X = -body.Width
	} else if pos.X+body.Width < 0 {
		pos.X = viewportW
	}
}

// Aim decides whether a shooter should fire at the player and in which direction.
// Enemy bullets travel along x only, toward the player's side.
func Aim(shooter, player Rect, fireRange float32) (dir int8, ok bool) {
	dy := shooter.Y - player.Y
	if dy < 0 {
		dy = -dy
	}
	if dy > fireRange {
		return 0, false
	}
	if player.X+player.W/2 < shooter.X+shooter.W/2 {
		return -1, true
	}
	return 1, true
}

// PlayerBulletOrigin places a player bullet centered on the nose of the craft.
func PlayerBulletOrigin(pos components.Position, body, bullet components.Body) components.Position {
	return components.Position{
		X: pos.X + body.Width/2 - bullet.Width/2,
		Y: pos.Y + body.Height,
	}
}

// EnemyBulletOrigin places an enemy bullet on the side of the shooter facing dir.
func EnemyBulletOrigin(pos components.Position, body, bullet components.Body, dir int8) components.Position {
	y := pos.Y + body.Height/2 - bullet.Height/2
	if dir < 0 {
		return components.Position{X: pos.X - bullet.Width, Y: y}
	}
	return components.Position{X: pos.X + body.Width, Y: y}
}
