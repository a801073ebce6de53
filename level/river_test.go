package level

import (
	"math"
	"testing"
)

func testRiver() River {
	return River{
		Distances: []float64{458, 3316, 6176},
		Centers:   []float64{400, 406, 378},
	}
}

func TestRiverNarrowsAtBridges(t *testing.T) {
	r := testRiver()
	for i, d := range r.Distances {
		c, hw := r.At(d)
		if c != r.Centers[i] {
			t.Errorf("bridge %d: center %f, want %f", i+1, c, r.Centers[i])
		}
		if hw != BridgeHalfWidth {
			t.Errorf("bridge %d: half width %f, want %d", i+1, hw, BridgeHalfWidth)
		}
	}
}

func TestRiverWidensBetweenBridges(t *testing.T) {
	r := testRiver()
	mid := (r.Distances[0] + r.Distances[1]) / 2
	_, hw := r.At(mid)
	if math.Abs(hw-MaxHalfWidth) > 1e-6 {
		t.Errorf("mid-segment half width %f, want %d", hw, MaxHalfWidth)
	}

	_, near := r.At(r.Distances[0] + 60)
	if near != BridgeHalfWidth {
		t.Errorf("approach half width %f, want %d", near, BridgeHalfWidth)
	}
}

func TestRiverBanks(t *testing.T) {
	r := testRiver()
	tests := []struct {
		name string
		y    float64
	}{
		{"before start", 0},
		{"first segment", 1500},
		{"second segment", 5000},
		{"past last bridge", 9000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, right := r.Banks(tt.y)
			if right <= left {
				t.Errorf("banks (%f, %f) not ordered", left, right)
			}
			if right-left < 2*BridgeHalfWidth {
				t.Errorf("channel %f narrower than a bridge", right-left)
			}
		})
	}
}

func TestRiverEmpty(t *testing.T) {
	c, hw := River{}.At(100)
	if c != 0 || hw != MaxHalfWidth {
		t.Errorf("empty river = (%f, %f), want (0, %d)", c, hw, MaxHalfWidth)
	}
}
