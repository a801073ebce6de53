package traits

import (
	"reflect"
	"testing"
)

func TestTraitHas(t *testing.T) {
	set := Patrols | Shoots
	if !set.Has(Patrols) || !set.Has(Shoots) {
		t.Fatalf("set lost a trait: %v", TraitNames(set))
	}
	if set.Has(Wraps) {
		t.Error("Has reported a trait not in the set")
	}
}

func TestClassifiers(t *testing.T) {
	tests := []struct {
		name      string
		set       Trait
		wantMoves bool
		wantEnemy bool
	}{
		{"player", Steered | Shoots | Animated, true, false},
		{"helicopter", Patrols | Hostile | Shootable | Animated, true, true},
		{"bullet", Projectile | Hostile, true, false},
		{"fuel", Pickup | Shootable, false, false},
		{"bridge", Obstacle | Hostile | Shootable, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Moves(tt.set); got != tt.wantMoves {
				t.Errorf("Moves = %v, want %v", got, tt.wantMoves)
			}
			if got := IsEnemy(tt.set); got != tt.wantEnemy {
				t.Errorf("IsEnemy = %v, want %v", got, tt.wantEnemy)
			}
		})
	}
}

func TestTraitNames(t *testing.T) {
	got := TraitNames(Wraps | Hostile)
	want := []string{"Wraps", "Hostile"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TraitNames = %v, want %v", got, want)
	}
	if TraitNames(0) != nil {
		t.Error("empty set should have no names")
	}
}
