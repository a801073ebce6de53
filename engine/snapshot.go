package engine

import (
	"sort"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/riverraid/components"
)

// Entity is a read-only copy of one live entity, as handed to renderers.
// Changing it has no effect on the engine.
type Entity struct {
	ID         uint32
	Kind       components.Kind
	X, Y       float32 // world position, y grows with distance
	Width      float32
	Height     float32
	VX, VY     float32
	MovingX    bool
	MovingY    bool
	Frame      uint8
	Direction  int8
	Destroyed  bool // player wreck held for the death frame
	TemplateID int  // opponent table row, 0 for the player and bullets
}

// Data returns a snapshot of the live set ordered by id.
func (e *Engine) Data() []Entity {
	out := make([]Entity, 0, len(e.byID))

	query := e.filter.Query()
	for query.Next() {
		out = append(out, e.snapshot(query.Entity()))
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Count returns the number of live entities.
func (e *Engine) Count() int {
	return len(e.byID)
}

// CountKind returns how many live entities have the given kind.
func (e *Engine) CountKind(kind components.Kind) int {
	n := 0
	query := e.filter.Query()
	for query.Next() {
		ident, _, _, _, _ := query.Get()
		if ident.Kind == kind {
			n++
		}
	}
	return n
}

// Lookup returns a snapshot of one entity by id.
func (e *Engine) Lookup(id uint32) (Entity, bool) {
	entity, ok := e.byID[id]
	if !ok || !e.world.Alive(entity) {
		return Entity{}, false
	}
	return e.snapshot(entity), true
}

func (e *Engine) snapshot(entity ecs.Entity) Entity {
	ident := e.identMap.Get(entity)
	pos := e.posMap.Get(entity)
	vel := e.velMap.Get(entity)
	body := e.bodyMap.Get(entity)
	motion := e.motionMap.Get(entity)

	snap := Entity{
		ID:        ident.ID,
		Kind:      ident.Kind,
		X:         pos.X,
		Y:         pos.Y,
		Width:     body.Width,
		Height:    body.Height,
		VX:        vel.X,
		VY:        vel.Y,
		MovingX:   motion.MovingX,
		MovingY:   motion.MovingY,
		Frame:     motion.Frame,
		Direction: motion.Direction,
		Destroyed: e.wreckMap.Has(entity),
	}
	if e.templateMap.Has(entity) {
		snap.TemplateID = e.templateMap.Get(entity).ID
	}
	return snap
}
