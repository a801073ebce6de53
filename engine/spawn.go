package engine

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/riverraid/components"
	"github.com/pthm-cable/riverraid/level"
	"github.com/pthm-cable/riverraid/systems"
	"github.com/pthm-cable/riverraid/traits"
)

// PutEnemiesData seeds the engine with opponent rows. The rows are copied, so
// later changes to the caller's table never reach the engine. Rows already on
// screen are admitted immediately; the rest wait for the scroll.
func (e *Engine) PutEnemiesData(rows level.Table) {
	e.pending = rows.Clone()

	// Rows live from an earlier seed stay admitted
	clear(e.spawned)
	query := e.filter.Query()
	for query.Next() {
		entity := query.Entity()
		if e.templateMap.Has(entity) {
			e.spawned[e.templateMap.Get(entity).ID] = true
		}
	}

	e.SpawnEnemy(e.TestNewEnemy())
}

// TestNewEnemy returns the pending rows that have entered the viewport and are
// not yet live. It does not change the live set.
func (e *Engine) TestNewEnemy() []level.Opponent {
	vp := e.Viewport()
	var out []level.Opponent
	for _, o := range e.pending {
		if e.spawned[o.ID] {
			continue
		}
		if float32(o.Y) > vp.Top()+e.p.spawnMargin {
			continue
		}
		if e.rowBehind(o, vp) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// SpawnEnemy admits candidate rows. Rows already admitted are skipped, so
// repeated calls with the same candidates never duplicate an entity.
func (e *Engine) SpawnEnemy(candidates []level.Opponent) {
	for _, o := range candidates {
		if e.spawned[o.ID] {
			continue
		}
		// Rows that fail to build are consumed too, so they are reported once
		e.spawnOpponent(o)
		e.spawned[o.ID] = true
	}
	e.prunePending()
}

// prunePending drops admitted rows and rows the scroll has already passed.
func (e *Engine) prunePending() {
	vp := e.Viewport()
	kept := e.pending[:0]
	for _, o := range e.pending {
		if e.spawned[o.ID] || e.rowBehind(o, vp) {
			continue
		}
		kept = append(kept, o)
	}
	e.pending = kept
}

func (e *Engine) rowBehind(o level.Opponent, vp systems.Viewport) bool {
	ec, ok := e.cfg.Enemy(o.Kind)
	height := float32(0)
	if ok {
		height = float32(ec.Height)
	}
	return vp.Behind(systems.Rect{X: float32(o.X), Y: float32(o.Y), H: height}, e.p.despawnMargin)
}

// Pending returns how many opponent rows are still waiting to be admitted.
func (e *Engine) Pending() int {
	return len(e.pending)
}

// spawnOpponent builds one enemy, depot or bridge from a table row.
func (e *Engine) spawnOpponent(o level.Opponent) (ecs.Entity, bool) {
	kind, ok := o.KindOf()
	if !ok || kind.IsBullet() || kind == components.KindPlayer {
		e.logger.Warn("skipping opponent of unknown kind", "row", o.ID, "kind", o.Kind)
		return ecs.Entity{}, false
	}
	ec, ok := e.cfg.Enemy(o.Kind)
	if !ok {
		e.logger.Warn("no settings for opponent kind", "row", o.ID, "kind", o.Kind)
		return ecs.Entity{}, false
	}

	pos := components.Position{X: float32(o.X), Y: float32(o.Y)}
	body := components.Body{Width: float32(ec.Width), Height: float32(ec.Height)}
	dir := int8(o.Direction)
	vel := components.Velocity{X: float32(ec.Speed) * float32(dir)}
	motion := components.Motion{
		Direction:  dir,
		FrameCount: uint8(max(ec.Frames, 1)),
	}

	entity, _ := e.newEntity(kind, pos, vel, body, motion)
	e.templateMap.Add(entity, &components.Template{ID: o.ID})

	t := kind.Traits()
	if traits.Moves(t) {
		patrol := components.Patrol{MinX: 0, MaxX: e.p.viewportW}
		if r := float32(ec.PatrolRange); r > 0 {
			patrol.MinX = pos.X - r
			patrol.MaxX = pos.X + body.Width + r
		}
		e.patrolMap.Add(entity, &patrol)
	}
	if t.Has(traits.Shoots) && ec.Shoots {
		e.shooterMap.Add(entity, &components.Shooter{})
	}
	return entity, true
}
