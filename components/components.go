// Package components defines ECS components for the simulation.
package components

import "github.com/pthm-cable/riverraid/traits"

// Kind tags what an entity is.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindPlayer
	KindHelicopter
	KindShootingHelicopter
	KindShip
	KindBalloon
	KindPlane
	KindTank
	KindFuel
	KindBridge
	KindPlayerBullet
	KindEnemyBullet
)

var kindNames = [...]string{
	KindUnknown:            "unknown",
	KindPlayer:             "player",
	KindHelicopter:         "helicopter",
	KindShootingHelicopter: "shootingHelicopter",
	KindShip:               "ship",
	KindBalloon:            "balloon",
	KindPlane:              "plane",
	KindTank:               "tank",
	KindFuel:               "fuel",
	KindBridge:             "bridge",
	KindPlayerBullet:       "playerBullet",
	KindEnemyBullet:        "enemyBullet",
}

// String returns the kind's table name, as used in the level CSV and config.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind maps a table name back to a Kind.
func ParseKind(name string) (Kind, bool) {
	for i, n := range kindNames {
		if n == name && Kind(i) != KindUnknown {
			return Kind(i), true
		}
	}
	return KindUnknown, false
}

// kindTraits is the capability table for every kind.
var kindTraits = [...]traits.Trait{
	KindPlayer:             traits.Steered | traits.Shoots | traits.Animated,
	KindHelicopter:         traits.Patrols | traits.Hostile | traits.Shootable | traits.Animated,
	KindShootingHelicopter: traits.Patrols | traits.Shoots | traits.Hostile | traits.Shootable | traits.Animated,
	KindShip:               traits.Patrols | traits.Hostile | traits.Shootable,
	KindBalloon:            traits.Drifts | traits.Hostile | traits.Shootable,
	KindPlane:              traits.Wraps | traits.Hostile | traits.Shootable,
	KindTank:               traits.Patrols | traits.Shoots | traits.Hostile | traits.Shootable | traits.Animated,
	KindFuel:               traits.Pickup | traits.Shootable,
	KindBridge:             traits.Obstacle | traits.Hostile | traits.Shootable,
	KindPlayerBullet:       traits.Projectile,
	KindEnemyBullet:        traits.Projectile | traits.Hostile,
	KindUnknown:            0,
}

// Traits returns the capability set of a kind.
func (k Kind) Traits() traits.Trait {
	if int(k) < len(kindTraits) {
		return kindTraits[k]
	}
	return 0
}

// IsBullet reports whether the kind is a projectile.
func (k Kind) IsBullet() bool {
	return k.Traits().Has(traits.Projectile)
}

// Spawnable lists the kinds that may appear in the opponent table.
func Spawnable() []Kind {
	return []Kind{
		KindHelicopter, KindShootingHelicopter, KindShip, KindBalloon,
		KindPlane, KindTank, KindFuel, KindBridge,
	}
}

// Identity holds the engine-assigned id and kind. Both are immutable.
type Identity struct {
	ID   uint32
	Kind Kind
}

// Template links an entity to the opponent table row it was spawned from.
type Template struct {
	ID int // table row id, stable across table copies
}

// Shooter is the single in-flight bullet slot.
type Shooter struct {
	HasBullet bool
	BulletID  uint32
}

// Projectile links a bullet back to the entity that fired it.
type Projectile struct {
	OwnerID uint32
}

// Patrol bounds horizontal movement of patrolling enemies.
type Patrol struct {
	MinX, MaxX float32
	Active     bool // enemies idle until the player is within activation range
}

// Wreck marks the player as destroyed this run. The entity stays in the live set
// so the death frame can be drawn, but takes no further part in the simulation.
type Wreck struct {
	SinceDistance float32
}
