package level

import "math"

// River widths in world units.
const (
	BridgeHalfWidth = 90  // channel under a bridge
	MaxHalfWidth    = 300 // widest point between bridges
	bridgeApproach  = 120 // straight channel either side of a bridge
)

// River describes the channel shape. The center follows the bridge centers and
// the channel narrows to BridgeHalfWidth at every bridge.
type River struct {
	Distances []float64
	Centers   []float64
}

// At returns the channel center and half width at world y.
func (r River) At(y float64) (center, halfWidth float64) {
	n := min(len(r.Distances), len(r.Centers))
	if n == 0 {
		return 0, MaxHalfWidth
	}
	if y <= r.Distances[0] {
		return r.Centers[0], BridgeHalfWidth
	}

	i := 0
	for i+1 < n && r.Distances[i+1] <= y {
		i++
	}
	if i == n-1 {
		// Past the last bridge the river keeps its course
		return r.Centers[i], r.bulge(y-r.Distances[i], 2*bridgeApproach+math.Pi*MaxHalfWidth)
	}

	start, end := r.Distances[i], r.Distances[i+1]
	t := (y - start) / (end - start)
	center = r.Centers[i] + (r.Centers[i+1]-r.Centers[i])*smooth(t)
	return center, r.bulge(y-start, end-start)
}

// Banks returns the left and right shore x at world y.
func (r River) Banks(y float64) (left, right float64) {
	c, hw := r.At(y)
	return c - hw, c + hw
}

// bulge widens the channel between the straight approaches of a segment.
func (r River) bulge(into, length float64) float64 {
	span := length - 2*bridgeApproach
	if span <= 0 || into <= bridgeApproach || into >= length-bridgeApproach {
		return BridgeHalfWidth
	}
	s := math.Sin(math.Pi * (into - bridgeApproach) / span)
	return BridgeHalfWidth + (MaxHalfWidth-BridgeHalfWidth)*s*s
}

// smooth is the smoothstep easing on [0, 1].
func smooth(t float64) float64 {
	return t * t * (3 - 2*t)
}
