package components

// Position represents an entity's world position (bottom-left corner).
// Y grows with scroll distance.
type Position struct {
	X, Y float32
}

// Velocity represents an entity's velocity in world units per time unit.
type Velocity struct {
	X, Y float32
}

// Motion holds per-axis movement flags, facing, and the animation cycle.
type Motion struct {
	MovingX, MovingY bool
	Direction        int8    // -1 left, 1 right, 0 level
	Frame            uint8   // current animation frame index
	FrameCount       uint8   // frames in the cycle (0 or 1 = static)
	FrameClock       float32 // time units accumulated toward the next frame
}
