package sim

// Fixed gameplay parameters. These are deliberately constants rather than
// configuration: the difficulty curve is part of the game's identity and
// the distance-scaling formulas below are covered by tests.
const (
	laneMargin  = 18.0  // Playable area inset from both lane edges
	scrollSpeed = 150.0 // Lane scroll speed, units/sec

	// Player crowd
	playerY     = 520.0 // Fixed vertical position of the crowd row
	segmentW    = 12.0
	segmentH    = 14.0
	glideFactor = 0.18 // Exponential smoothing toward the pointer target, per frame
	maxSegments = 20
	baseSpacing = 8 // Gap between segments at count 1, shrinks 1 per 4 segments
	minSpacing  = 2
	startValue  = 10

	// Procedural lane content
	segmentLen = 240.0  // One lane stride of generated content
	lookahead  = 1400.0 // Generation horizon ahead of current distance
	bossStride = 2000.0 // Distance between boss spawns

	// Gates
	gateW       = 84.0
	gateH       = 46.0
	gatePairGap = 120.0 // Vertical gap between the two gates of a pair, on top of gateH
	gateAmount  = 5     // add/sub operand
	gateFactor  = 2     // mul/div operand

	// Zombies
	zombieW     = 22.0
	zombieH     = 22.0
	waveStagger = 40.0 // Vertical offset per zombie within a wave
	maxWaveSize = 40

	// Bosses
	bossW      = 64.0
	bossH      = 64.0
	bossSpawnY = -160.0

	// Obstacles and items
	obstacleW      = 48.0
	obstacleH      = 30.0
	itemW          = 18.0
	itemH          = 18.0
	itemFallSpeed  = 140.0 // Own fall velocity, on top of lane scroll
	attackBonusCap = 6

	// Bullets
	bulletW          = 4.0
	bulletH          = 10.0
	bulletSpeed      = 520.0 // Upward, units/sec
	bulletLife       = 1.4   // Seconds
	bulletBaseDamage = 2
	shootInterval    = 0.08 // Seconds between volleys, independent of crowd size

	// Floaters
	floaterLife = 0.8
	floaterRise = 40.0 // Upward drift, units/sec

	// Entities are discarded this far past the lane bottom.
	pruneMargin     = 40.0
	bossPruneMargin = 80.0

	// HUD snapshots are published at most this often.
	hudInterval = 0.1
)
