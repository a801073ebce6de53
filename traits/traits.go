// Package traits defines entity capabilities and characteristics.
package traits

// Trait defines an entity capability.
type Trait uint32

const (
	// Movement traits
	Steered Trait = 1 << iota // Velocity comes from player input
	Patrols                   // Moves back and forth inside a patrol band
	Wraps                     // Crosses the viewport and re-enters on the far side
	Drifts                    // Slow patrol inside a narrow band

	// Combat traits
	Shoots     // May fire a bullet aimed at the player
	Projectile // Is a bullet
	Hostile    // Kills the player on contact
	Shootable  // Can be destroyed by a player bullet

	// Special traits
	Pickup   // Refuels the player while overlapped
	Obstacle // Wide, stationary, gates the next segment
	Animated // Cycles animation frames
)

// Has checks if a trait set contains a trait.
func (t Trait) Has(other Trait) bool {
	return t&other != 0
}

// Moves checks if traits give an entity its own velocity.
func Moves(t Trait) bool {
	return t.Has(Steered) || t.Has(Patrols) || t.Has(Wraps) || t.Has(Drifts) || t.Has(Projectile)
}

// IsEnemy checks if traits describe a hostile, shootable craft.
func IsEnemy(t Trait) bool {
	return t.Has(Hostile) && t.Has(Shootable) && !t.Has(Projectile)
}

// TraitNames returns human-readable names for traits.
func TraitNames(t Trait) []string {
	var names []string
	if t.Has(Steered) {
		names = append(names, "Steered")
	}
	if t.Has(Patrols) {
		names = append(names, "Patrols")
	}
	if t.Has(Wraps) {
		names = append(names, "Wraps")
	}
	if t.Has(Drifts) {
		names = append(names, "Drifts")
	}
	if t.Has(Shoots) {
		names = append(names, "Shoots")
	}
	if t.Has(Projectile) {
		names = append(names, "Projectile")
	}
	if t.Has(Hostile) {
		names = append(names, "Hostile")
	}
	if t.Has(Shootable) {
		names = append(names, "Shootable")
	}
	if t.Has(Pickup) {
		names = append(names, "Pickup")
	}
	if t.Has(Obstacle) {
		names = append(names, "Obstacle")
	}
	if t.Has(Animated) {
		names = append(names, "Animated")
	}
	return names
}

// GetTraitColor returns a fallback RGB color based on traits, used when no sprite exists.
func GetTraitColor(t Trait) (r, g, b uint8) {
	if t.Has(Steered) {
		return 230, 210, 80 // Yellow
	}
	if t.Has(Projectile) {
		return 250, 250, 250 // White
	}
	if t.Has(Pickup) {
		return 200, 60, 160 // Magenta
	}
	if t.Has(Obstacle) {
		return 150, 110, 70 // Brown
	}
	if t.Has(Shoots) {
		return 220, 70, 60 // Red
	}
	if t.Has(Wraps) {
		return 90, 200, 220 // Cyan
	}
	if t.Has(Hostile) {
		return 80, 170, 90 // Green
	}
	return 150, 150, 150 // Gray default
}
