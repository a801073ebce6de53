package components

import (
	"testing"

	"github.com/pthm-cable/riverraid/traits"
)

func TestKindNamesRoundtrip(t *testing.T) {
	for k := KindPlayer; k <= KindEnemyBullet; k++ {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", k.String(), got, ok, k)
		}
	}
}

func TestParseKindUnknown(t *testing.T) {
	for _, name := range []string{"", "unknown", "submarine"} {
		if _, ok := ParseKind(name); ok {
			t.Errorf("ParseKind(%q) should fail", name)
		}
	}
	if Kind(200).String() != "unknown" {
		t.Error("out of range kind should stringify as unknown")
	}
}

func TestKindTraits(t *testing.T) {
	tests := []struct {
		kind Kind
		has  traits.Trait
		not  traits.Trait
	}{
		{KindPlayer, traits.Steered | traits.Shoots, traits.Hostile},
		{KindShootingHelicopter, traits.Shoots | traits.Patrols, traits.Wraps},
		{KindHelicopter, traits.Patrols, traits.Shoots},
		{KindTank, traits.Shoots, traits.Pickup},
		{KindPlane, traits.Wraps, traits.Shoots},
		{KindFuel, traits.Pickup | traits.Shootable, traits.Hostile},
		{KindBridge, traits.Obstacle | traits.Shootable, traits.Patrols},
		{KindEnemyBullet, traits.Projectile | traits.Hostile, traits.Shootable},
		{KindPlayerBullet, traits.Projectile, traits.Hostile},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got := tt.kind.Traits()
			if got&tt.has != tt.has {
				t.Errorf("traits %v missing %v", traits.TraitNames(got), traits.TraitNames(tt.has))
			}
			if got.Has(tt.not) {
				t.Errorf("traits %v should not include %v", traits.TraitNames(got), traits.TraitNames(tt.not))
			}
		})
	}
}

func TestSpawnableExcludesPlayerAndBullets(t *testing.T) {
	for _, k := range Spawnable() {
		if k == KindPlayer || k.IsBullet() {
			t.Errorf("%v should not be spawnable from the table", k)
		}
	}
}

func TestBodyRect(t *testing.T) {
	b := Body{Width: 32, Height: 30}
	x0, y0, x1, y1 := b.Rect(Position{X: 10, Y: 100})
	if x0 != 10 || y0 != 100 || x1 != 42 || y1 != 130 {
		t.Errorf("Rect = (%v,%v,%v,%v)", x0, y0, x1, y1)
	}
	if b.CenterX(Position{X: 10}) != 26 {
		t.Errorf("CenterX = %v, want 26", b.CenterX(Position{X: 10}))
	}
}
