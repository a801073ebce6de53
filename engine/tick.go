package engine

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/riverraid/components"
	"github.com/pthm-cable/riverraid/config"
	"github.com/pthm-cable/riverraid/systems"
	"github.com/pthm-cable/riverraid/traits"
)

// shot is a deferred enemy fire request, applied once the query is closed.
type shot struct {
	shooter ecs.Entity
	dir     int8
}

// Tick runs one frame of simulation. delta is in time units (elapsed ms / time
// unit) and every rate is scaled by it. The order is fixed: input, movement,
// spawning, collisions, despawning.
func (e *Engine) Tick(delta float32, keys Keys) []Event {
	if delta < 0 {
		delta = 0
	}

	// 1. Input
	if e.playerActive() {
		e.flyPlayer(delta, keys)
	}

	// 2. Movement and enemy fire
	e.moveEntities(delta)

	// 3. Spawning
	e.SpawnEnemy(e.TestNewEnemy())

	// 4. Collisions
	var events []Event
	if !e.showcasing {
		events = e.resolveCollisions(events)
	}

	// 5. Despawning
	e.despawn()

	return events
}

// flyPlayer applies input, moves the player and drags the scroll distance along.
func (e *Engine) flyPlayer(delta float32, keys Keys) {
	pos := e.posMap.Get(e.player)
	vel := e.velMap.Get(e.player)
	motion := e.motionMap.Get(e.player)
	body := e.bodyMap.Get(e.player)

	systems.Steer(vel, motion, keys, e.p.flight, delta)
	systems.Integrate(pos, *vel, *motion, delta)

	// Keep the craft on screen
	if pos.X < 0 {
		pos.X = 0
		vel.X = 0
	}
	if maxX := e.p.viewportW - body.Width; pos.X > maxX {
		pos.X = maxX
		vel.X = 0
	}

	e.distance = pos.Y - e.p.playerOffset

	if keys.Fire {
		e.fire(e.player, 0)
	}
}

// moveEntities advances every non-player entity and queues enemy fire.
func (e *Engine) moveEntities(delta float32) {
	active := e.playerActive()
	var playerRect systems.Rect
	if active {
		playerRect = systems.RectOf(*e.posMap.Get(e.player), *e.bodyMap.Get(e.player))
	}

	var shots []shot

	query := e.filter.Query()
	for query.Next() {
		entity := query.Entity()
		ident, pos, vel, body, motion := query.Get()

		if e.hasPlayer && entity == e.player {
			continue
		}

		if e.patrolMap.Has(entity) {
			patrol := e.patrolMap.Get(entity)
			ec := e.enemyConfig(ident.Kind)
			if active {
				systems.Activate(patrol, pos.Y, playerRect.Y, float32(ec.ActivationRange))
			}
			motion.MovingX = patrol.Active && vel.X != 0

			systems.Integrate(pos, *vel, *motion, delta)
			if ident.Kind.Traits().Has(traits.Wraps) {
				systems.Wrap(pos, *body, e.p.viewportW)
			} else if motion.MovingX {
				systems.Bounce(pos, vel, motion, *patrol, *body, e.p.viewportW)
			}

			if active && patrol.Active && e.shooterMap.Has(entity) && !e.shooterMap.Get(entity).HasBullet {
				if dir, ok := systems.Aim(systems.RectOf(*pos, *body), playerRect, float32(ec.FireRange)); ok {
					shots = append(shots, shot{shooter: entity, dir: dir})
				}
			}
		} else {
			systems.Integrate(pos, *vel, *motion, delta)
		}

		systems.Animate(motion, delta, e.p.frameDuration)
	}

	for _, s := range shots {
		e.fire(s.shooter, s.dir)
	}
}

// resolveCollisions applies every interacting pair in ascending id order.
// An entity removed by an earlier pair is not matched again this tick.
func (e *Engine) resolveCollisions(events []Event) []Event {
	var colliders []systems.Collider
	query := e.filter.Query()
	for query.Next() {
		entity := query.Entity()
		ident, pos, _, body, _ := query.Get()
		if e.wreckMap.Has(entity) {
			continue
		}
		colliders = append(colliders, systems.Collider{
			ID:   ident.ID,
			Kind: ident.Kind,
			Rect: systems.RectOf(*pos, *body),
		})
	}

	removed := make(map[uint32]bool)
	var order []uint32
	markRemoved := func(id uint32) {
		if !removed[id] {
			removed[id] = true
			order = append(order, id)
		}
	}
	crashed := false

	for _, pair := range systems.OverlappingPairs(colliders) {
		actor, target := pair.Actor, pair.Target
		if removed[actor.ID] || removed[target.ID] {
			continue
		}

		switch pair.Kind {
		case systems.InteractShotDown:
			markRemoved(actor.ID)
			markRemoved(target.ID)
			events = append(events, Kill(target.Kind, target.ID))

		case systems.InteractCrash:
			if crashed {
				continue
			}
			crashed = true
			events = append(events, PlayerDied(target.Kind, target.ID))
			if target.Kind != components.KindBridge {
				markRemoved(target.ID)
			}

		case systems.InteractRefuel:
			if crashed {
				continue
			}
			events = append(events, Refuel(target.ID))
		}
	}

	for _, id := range order {
		e.DestroyEntity(id)
	}
	if crashed && e.hasPlayer {
		e.wreckPlayer()
	}
	return events
}

// wreckPlayer freezes the player in place for the death frame.
func (e *Engine) wreckPlayer() {
	*e.velMap.Get(e.player) = components.Velocity{}
	motion := e.motionMap.Get(e.player)
	motion.MovingX = false
	motion.MovingY = false
	e.wreckMap.Add(e.player, &components.Wreck{SinceDistance: e.distance})
}

// despawn removes entities that have left the viewport. Bullets also go once
// they pass the leading edge or a side.
func (e *Engine) despawn() {
	vp := e.Viewport()
	var toRemove []ecs.Entity

	query := e.filter.Query()
	for query.Next() {
		entity := query.Entity()
		ident, pos, _, body, _ := query.Get()
		if e.hasPlayer && entity == e.player {
			continue
		}

		r := systems.RectOf(*pos, *body)
		if ident.Kind.IsBullet() {
			if vp.Behind(r, 0) || vp.Ahead(r, 0) || vp.OutsideX(r) {
				toRemove = append(toRemove, entity)
			}
			continue
		}
		if vp.Behind(r, e.p.despawnMargin) {
			toRemove = append(toRemove, entity)
		}
	}

	for _, entity := range toRemove {
		e.remove(entity)
	}
}

// UpdateEntities shifts every non-player entity by deltaDistance along the scroll
// axis and drops what falls out of view. No input, physics or collisions run.
func (e *Engine) UpdateEntities(deltaDistance float32) {
	if deltaDistance != 0 {
		query := e.filter.Query()
		for query.Next() {
			entity := query.Entity()
			_, pos, _, _, _ := query.Get()
			if e.hasPlayer && entity == e.player {
				continue
			}
			pos.Y += deltaDistance
		}
	}
	e.despawn()
}

// Animate advances animation cycles only, for scripted scrolling.
func (e *Engine) Animate(delta float32) {
	query := e.filter.Query()
	for query.Next() {
		_, _, _, _, motion := query.Get()
		systems.Animate(motion, delta, e.p.frameDuration)
	}
}

// enemyConfig returns the cached settings for a kind. Missing kinds get zero
// ranges, so they never activate or fire.
func (e *Engine) enemyConfig(kind components.Kind) config.EnemyConfig {
	return e.enemies[kind]
}
