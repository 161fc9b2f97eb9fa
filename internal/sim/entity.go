// Package sim implements the crowd-runner simulation core: procedural
// lane spawning, entity lifecycle, collision resolution, and the score
// mutation rules. It contains pure logic with no UI dependencies; the
// platform layer drives it with a clamped per-frame delta and reads the
// resulting state for drawing.
package sim

import (
	"github.com/vovakirdan/crowd-rush/internal/core"
)

// Gate is a score-transforming arch. Touching it applies its operation
// to the crowd value exactly once.
type Gate struct {
	core.RectF
	Op   GateOp
	Used bool
}

// Zombie is a basic enemy. Stats scale with scroll distance at spawn time.
type Zombie struct {
	core.RectF
	HP     int
	Damage int
}

// Boss is a large enemy spawned at fixed distance intervals. A boss whose
// bottom edge reaches the lane bottom ends the run unconditionally.
type Boss struct {
	core.RectF
	HP     int
	Damage int
}

// Obstacle is a destructible block. It does not move horizontally, only
// scrolls with the lane. Destroying it drops an attack-bonus item.
type Obstacle struct {
	core.RectF
	HP    int
	MaxHP int
}

// Item is a falling attack-bonus pickup dropped by a destroyed obstacle.
type Item struct {
	core.RectF
	FallVel   float64 // Own fall speed, applied on top of lane scroll
	Bonus     int
	Collected bool
}

// Bullet is an auto-fired projectile moving straight up.
type Bullet struct {
	core.RectF
	VY     float64 // Negative = upward
	Life   float64 // Remaining lifetime in seconds
	Damage int
}

// Floater is transient score-delta text drifting upward while fading.
// Purely cosmetic; it never participates in collisions.
type Floater struct {
	X, Y float64
	VY   float64
	Life float64
	Text string
}
