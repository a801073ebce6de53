package systems

import (
	"sort"

	"github.com/pthm-cable/riverraid/components"
	"github.com/pthm-cable/riverraid/traits"
)

// Interaction is what happens when two entities overlap.
type Interaction uint8

const (
	InteractNone    Interaction = iota
	InteractShotDown            // player bullet destroys a shootable target
	InteractCrash               // player touches something hostile
	InteractRefuel              // player over a fuel depot
)

// Collider is the collision view of one live entity.
type Collider struct {
	ID   uint32
	Kind components.Kind
	Rect Rect
}

// Pair is an overlapping collider pair with a non-trivial interaction.
// Actor is the player or player bullet; Target is the other side.
type Pair struct {
	Actor  Collider
	Target Collider
	Kind   Interaction
}

// Classify returns the interaction between two kinds. actorFirst is false when b acts on a.
func Classify(a, b components.Kind) (kind Interaction, actorFirst bool) {
	if k := classifyOrdered(a, b); k != InteractNone {
		return k, true
	}
	if k := classifyOrdered(b, a); k != InteractNone {
		return k, false
	}
	return InteractNone, true
}

func classifyOrdered(actor, target components.Kind) Interaction {
	tt := target.Traits()
	switch actor {
	case components.KindPlayerBullet:
		if tt.Has(traits.Shootable) && !tt.Has(traits.Projectile) {
			return InteractShotDown
		}
	case components.KindPlayer:
		if tt.Has(traits.Pickup) {
			return InteractRefuel
		}
		if tt.Has(traits.Hostile) {
			return InteractCrash
		}
	}
	return InteractNone
}

// OverlappingPairs returns every interacting pair in a fixed order: colliders are
// sorted by ascending id and pairs are emitted as (lower id, higher id) in
// lexicographic order. The result is reproducible for a given entity set.
func OverlappingPairs(colliders []Collider) []Pair {
	sort.Slice(colliders, func(i, j int) bool { return colliders[i].ID < colliders[j].ID })

	var pairs []Pair
	for i := 0; i < len(colliders); i++ {
		for j := i + 1; j < len(colliders); j++ {
			a, b := colliders[i], colliders[j]
			kind, actorFirst := Classify(a.Kind, b.Kind)
			if kind == InteractNone || !a.Rect.Overlaps(b.Rect) {
				continue
			}
			if actorFirst {
				pairs = append(pairs, Pair{Actor: a, Target: b, Kind: kind})
			} else {
				pairs = append(pairs, Pair{Actor: b, Target: a, Kind: kind})
			}
		}
	}
	return pairs
}
