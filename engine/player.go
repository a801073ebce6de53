package engine

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/riverraid/components"
	"github.com/pthm-cable/riverraid/level"
	"github.com/pthm-cable/riverraid/systems"
)

// BeginGame leaves showcase mode: it clears the world, seeds the given rows and
// places the player centered on x.
func (e *Engine) BeginGame(rows level.Table, playerX float32) uint32 {
	e.Clear()
	e.showcasing = false
	e.PutEnemiesData(rows)
	id := e.AddPlayer(playerX)
	e.logger.Info("game begun", "distance", e.distance, "rows", len(rows), "player_id", id)
	return id
}

// AddPlayer creates the player centered on x without touching other entities.
// A previous player, live or wrecked, is replaced.
func (e *Engine) AddPlayer(x float32) uint32 {
	if e.hasPlayer {
		e.remove(e.player)
	}

	body := e.p.playerBody
	pos := components.Position{X: x - body.Width/2, Y: e.distance + e.p.playerOffset}
	vel := components.Velocity{Y: e.p.flight.CruiseSpeedY}
	motion := components.Motion{MovingY: true, Frame: systems.FrameLevel, FrameCount: 1}

	entity, id := e.newEntity(components.KindPlayer, pos, vel, body, motion)
	e.shooterMap.Add(entity, &components.Shooter{})

	e.player = entity
	e.hasPlayer = true
	return id
}

// FindPlayer returns the player, live or wrecked.
func (e *Engine) FindPlayer() (Entity, bool) {
	if !e.hasPlayer {
		return Entity{}, false
	}
	return e.snapshot(e.player), true
}

// PlayerAlive is true while the player is in the live set and has not crashed.
func (e *Engine) PlayerAlive() bool {
	return e.hasPlayer && !e.wreckMap.Has(e.player)
}

// playerActive reports whether the player takes part in the simulation.
func (e *Engine) playerActive() bool {
	return !e.showcasing && e.PlayerAlive()
}

// CreateBullet fires from a shooter by id. It returns false when the id is not a
// shooter or its single bullet slot is taken; that is not an error.
func (e *Engine) CreateBullet(shooterID uint32) (Entity, bool) {
	entity, ok := e.byID[shooterID]
	if !ok || !e.shooterMap.Has(entity) || e.wreckMap.Has(entity) {
		return Entity{}, false
	}
	dir := e.motionMap.Get(entity).Direction
	if dir == 0 {
		dir = 1
	}
	bullet, ok := e.fire(entity, dir)
	if !ok {
		return Entity{}, false
	}
	return e.snapshot(bullet), true
}

// fire spawns a bullet for a shooter and occupies its slot. Player bullets fly
// ahead along y; enemy bullets fly along x in dir. Must not be called while a
// query is open.
func (e *Engine) fire(shooter ecs.Entity, dir int8) (ecs.Entity, bool) {
	slot := e.shooterMap.Get(shooter)
	if slot.HasBullet {
		return ecs.Entity{}, false
	}

	ident := *e.identMap.Get(shooter)
	pos := *e.posMap.Get(shooter)
	body := *e.bodyMap.Get(shooter)

	var (
		kind   components.Kind
		bpos   components.Position
		vel    components.Velocity
		bbody  components.Body
		motion components.Motion
	)
	if ident.Kind == components.KindPlayer {
		kind = components.KindPlayerBullet
		bbody = e.p.playerBullet
		bpos = systems.PlayerBulletOrigin(pos, body, bbody)
		vel = components.Velocity{Y: e.p.playerBulletSpeed}
		motion = components.Motion{MovingY: true, Direction: 0}
		e.playerShots++
	} else {
		kind = components.KindEnemyBullet
		bbody = e.p.enemyBullet
		bpos = systems.EnemyBulletOrigin(pos, body, bbody, dir)
		vel = components.Velocity{X: e.p.enemyBulletSpeed * float32(dir)}
		motion = components.Motion{MovingX: true, Direction: dir}
	}

	bullet, bulletID := e.newEntity(kind, bpos, vel, bbody, motion)
	e.projMap.Add(bullet, &components.Projectile{OwnerID: ident.ID})

	// Re-fetch: adding components may move storage
	slot = e.shooterMap.Get(shooter)
	slot.HasBullet = true
	slot.BulletID = bulletID
	return bullet, true
}
