// Package engine owns the live entity set, the scroll distance, spawning,
// per-tick physics and collision resolution.
package engine

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/riverraid/components"
	"github.com/pthm-cable/riverraid/config"
	"github.com/pthm-cable/riverraid/level"
	"github.com/pthm-cable/riverraid/systems"
)

// Keys is the input snapshot sampled once per tick.
type Keys = systems.Keys

// Session carries per-game context into the engine. There is no ambient state:
// everything the engine needs beyond config arrives here.
type Session struct {
	GameID int
	Logger *slog.Logger
}

// params are config values converted once to the float32 space the components use.
type params struct {
	viewportW, viewportH float32
	spawnMargin          float32
	despawnMargin        float32
	playerBody           components.Body
	playerOffset         float32
	flight               systems.Flight
	playerBullet         components.Body
	playerBulletSpeed    float32
	enemyBullet          components.Body
	enemyBulletSpeed     float32
	frameDuration        float32
}

// Engine is the world simulation. It is not safe for concurrent use: one goroutine
// drives every call, and each Tick runs to completion before the next.
type Engine struct {
	cfg    *config.Config
	p      params
	logger *slog.Logger
	gameID int

	world *ecs.World

	// Every entity carries these five
	mapper *ecs.Map5[
		components.Identity,
		components.Position,
		components.Velocity,
		components.Body,
		components.Motion,
	]
	filter *ecs.Filter5[
		components.Identity,
		components.Position,
		components.Velocity,
		components.Body,
		components.Motion,
	]

	identMap  *ecs.Map[components.Identity]
	posMap    *ecs.Map[components.Position]
	velMap    *ecs.Map[components.Velocity]
	bodyMap   *ecs.Map[components.Body]
	motionMap *ecs.Map[components.Motion]

	// Optional components
	templateMap *ecs.Map[components.Template]
	shooterMap  *ecs.Map[components.Shooter]
	projMap     *ecs.Map[components.Projectile]
	patrolMap   *ecs.Map[components.Patrol]
	wreckMap    *ecs.Map[components.Wreck]

	enemies map[components.Kind]config.EnemyConfig

	byID   map[uint32]ecs.Entity
	nextID uint32

	distance   float32
	showcasing bool

	player      ecs.Entity
	hasPlayer   bool
	playerShots int

	pending level.Table  // opponent rows not yet admitted
	spawned map[int]bool // template ids consumed since the last seed
}

// New creates an engine in showcase mode with an empty world.
func New(cfg *config.Config, session Session) *Engine {
	logger := session.Logger
	if logger == nil {
		logger = slog.Default()
	}

	world := ecs.NewWorld()
	e := &Engine{
		cfg:    cfg,
		p:      paramsFrom(cfg),
		logger: logger.With("game_id", session.GameID),
		gameID: session.GameID,
		world:  world,
		mapper: ecs.NewMap5[
			components.Identity,
			components.Position,
			components.Velocity,
			components.Body,
			components.Motion,
		](world),
		filter: ecs.NewFilter5[
			components.Identity,
			components.Position,
			components.Velocity,
			components.Body,
			components.Motion,
		](world),
		identMap:    ecs.NewMap[components.Identity](world),
		posMap:      ecs.NewMap[components.Position](world),
		velMap:      ecs.NewMap[components.Velocity](world),
		bodyMap:     ecs.NewMap[components.Body](world),
		motionMap:   ecs.NewMap[components.Motion](world),
		templateMap: ecs.NewMap[components.Template](world),
		shooterMap:  ecs.NewMap[components.Shooter](world),
		projMap:     ecs.NewMap[components.Projectile](world),
		patrolMap:   ecs.NewMap[components.Patrol](world),
		wreckMap:    ecs.NewMap[components.Wreck](world),
		byID:        make(map[uint32]ecs.Entity),
		nextID:      1,
		showcasing:  true,
		spawned:     make(map[int]bool),
		enemies:     make(map[components.Kind]config.EnemyConfig),
	}
	for _, kind := range components.Spawnable() {
		if ec, ok := cfg.Enemy(kind.String()); ok {
			e.enemies[kind] = ec
		}
	}
	return e
}

func paramsFrom(cfg *config.Config) params {
	return params{
		viewportW:     float32(cfg.Derived.ViewportW),
		viewportH:     float32(cfg.Derived.ViewportH),
		spawnMargin:   float32(cfg.World.SpawnMargin),
		despawnMargin: float32(cfg.World.DespawnMargin),
		playerBody: components.Body{
			Width:  float32(cfg.Player.Width),
			Height: float32(cfg.Player.Height),
		},
		playerOffset: float32(cfg.Player.DistanceOffset),
		flight: systems.Flight{
			MaxSpeedX:    float32(cfg.Player.MaxSpeedX),
			MaxSpeedY:    float32(cfg.Player.MaxSpeedY),
			MinSpeedY:    float32(cfg.Player.MinSpeedY),
			CruiseSpeedY: float32(cfg.Player.CruiseSpeedY),
			Acceleration: float32(cfg.Player.Acceleration),
		},
		playerBullet: components.Body{
			Width:  float32(cfg.Bullets.Player.Width),
			Height: float32(cfg.Bullets.Player.Height),
		},
		playerBulletSpeed: float32(cfg.Bullets.Player.Speed),
		enemyBullet: components.Body{
			Width:  float32(cfg.Bullets.Enemy.Width),
			Height: float32(cfg.Bullets.Enemy.Height),
		},
		enemyBulletSpeed: float32(cfg.Bullets.Enemy.Speed),
		frameDuration:    float32(cfg.Animation.FrameDuration),
	}
}

// GameID returns the session's game identifier.
func (e *Engine) GameID() int {
	return e.gameID
}

// Distance returns the scroll distance.
func (e *Engine) Distance() float32 {
	return e.distance
}

// SetDistance moves the viewport. The player, if any, keeps its place on screen.
func (e *Engine) SetDistance(d float32) {
	if e.hasPlayer && !e.wreckMap.Has(e.player) {
		e.posMap.Get(e.player).Y = d + e.p.playerOffset
	}
	e.distance = d
}

// PlayerShots returns how many bullets the player has fired in this engine.
func (e *Engine) PlayerShots() int {
	return e.playerShots
}

// Showcasing reports whether the engine is in attract mode.
func (e *Engine) Showcasing() bool {
	return e.showcasing
}

// SetShowcasing switches attract mode. While showcasing, ticks move enemies
// but apply no input and resolve no collisions.
func (e *Engine) SetShowcasing(on bool) {
	e.showcasing = on
}

// Viewport returns the visible world band.
func (e *Engine) Viewport() systems.Viewport {
	return systems.Viewport{Distance: e.distance, Width: e.p.viewportW, Height: e.p.viewportH}
}

// Clear removes every entity and forgets the seeded opponent rows.
// Ids keep counting up so they are never reused within the session.
func (e *Engine) Clear() {
	var toRemove []ecs.Entity
	query := e.filter.Query()
	for query.Next() {
		toRemove = append(toRemove, query.Entity())
	}
	for _, entity := range toRemove {
		e.world.RemoveEntity(entity)
	}

	clear(e.byID)
	clear(e.spawned)
	e.pending = nil
	e.hasPlayer = false
}

// DestroyEntity removes an entity by id. Unknown ids are ignored.
func (e *Engine) DestroyEntity(id uint32) {
	entity, ok := e.byID[id]
	if !ok {
		return
	}
	e.remove(entity)
}

// newEntity creates an entity with a fresh id.
func (e *Engine) newEntity(kind components.Kind, pos components.Position, vel components.Velocity, body components.Body, motion components.Motion) (ecs.Entity, uint32) {
	id := e.nextID
	e.nextID++

	ident := components.Identity{ID: id, Kind: kind}
	entity := e.mapper.NewEntity(&ident, &pos, &vel, &body, &motion)
	e.byID[id] = entity
	return entity, id
}

// remove deletes an entity and releases any bullet slot tied to it.
// Must not be called while a query is open.
func (e *Engine) remove(entity ecs.Entity) {
	if !e.world.Alive(entity) {
		return
	}
	ident := *e.identMap.Get(entity)

	if e.projMap.Has(entity) {
		owner := e.projMap.Get(entity).OwnerID
		if ownerEntity, ok := e.byID[owner]; ok && e.shooterMap.Has(ownerEntity) {
			slot := e.shooterMap.Get(ownerEntity)
			if slot.HasBullet && slot.BulletID == ident.ID {
				slot.HasBullet = false
				slot.BulletID = 0
			}
		}
	}

	if e.hasPlayer && entity == e.player {
		e.hasPlayer = false
	}
	delete(e.byID, ident.ID)
	e.world.RemoveEntity(entity)
}
