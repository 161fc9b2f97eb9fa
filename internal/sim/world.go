package sim

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/crowd-rush/internal/core"
)

// World owns the entire session state. All mutation happens synchronously
// inside Update; the presentation layer has read-only access to the
// entity slices and player rectangle for drawing.
type World struct {
	Player core.RectF

	Gates     []Gate
	Zombies   []Zombie
	Bosses    []Boss
	Obstacles []Obstacle
	Items     []Item
	Bullets   []Bullet
	Floaters  []Floater

	Value       int  // Crowd score value; non-negative
	Alive       bool // Once false the world stops advancing
	AttackBonus int  // Global bullet damage bonus, capped

	Elapsed  float64 // Total simulated time, seconds
	Distance float64 // Cumulative scroll distance, lane units
	Speed    float64 // Scroll speed, constant

	NextBossDist  float64 // Distance threshold for the next boss spawn
	spawnCursor   int     // Last generated lane segment index
	shootCooldown float64

	hudAccum float64
	hud      HUDSnapshot

	rng *rand.Rand
}

// HUDSnapshot is the throttled read-only state published for display
// outside the lane view. Published at most every 100ms of simulated time.
type HUDSnapshot struct {
	Value int
	Dist  int // Floored distance in meters
	Alive bool
}

// NewWorld creates a fresh world seeded from the runtime config.
func NewWorld(cfg core.RuntimeConfig) *World {
	w := &World{}
	w.Reset(cfg.Seed)
	return w
}

// Reset re-initializes the session with the given RNG seed.
// The same seed always produces the same lane content.
func (w *World) Reset(seed int64) {
	w.rng = rand.New(rand.NewSource(seed))

	w.Gates = w.Gates[:0]
	w.Zombies = w.Zombies[:0]
	w.Bosses = w.Bosses[:0]
	w.Obstacles = w.Obstacles[:0]
	w.Items = w.Items[:0]
	w.Bullets = w.Bullets[:0]
	w.Floaters = w.Floaters[:0]

	w.Value = startValue
	w.Alive = true
	w.AttackBonus = 0
	w.Elapsed = 0
	w.Distance = 0
	w.Speed = scrollSpeed
	w.NextBossDist = bossStride
	w.spawnCursor = 0
	w.shootCooldown = 0
	w.hudAccum = 0

	count := PlayerCount(w.Value)
	width := CrowdWidth(count)
	w.Player = core.NewRectF(core.LaneW/2-width/2, playerY, width, segmentH)

	// Pre-fill the lookahead horizon so the run starts populated.
	w.spawnAhead()

	w.hud = HUDSnapshot{Value: w.Value, Dist: int(w.Distance), Alive: w.Alive}
}

// Snapshot returns the last published HUD snapshot.
func (w *World) Snapshot() HUDSnapshot {
	return w.hud
}

// hurt converts incoming damage into a score reduction, floored at 0.
// Reaching 0 ends the run on the same step. A signed floater is emitted
// at the crowd's position. No-op once the player is dead.
func (w *World) hurt(amount int) {
	if !w.Alive || amount <= 0 {
		return
	}
	w.Value -= amount
	if w.Value <= 0 {
		w.Value = 0
		w.Alive = false
	}
	w.addFloater(fmt.Sprintf("-%d", amount), w.Player.CenterX(), w.Player.Y)
}

// addFloater emits transient feedback text at (x, y).
func (w *World) addFloater(text string, x, y float64) {
	w.Floaters = append(w.Floaters, Floater{
		X:    x,
		Y:    y,
		VY:   -floaterRise,
		Life: floaterLife,
		Text: text,
	})
}
