package sim

import "github.com/vovakirdan/crowd-rush/internal/core"

// spawnAhead generates lane content up to the lookahead horizon. Each
// lane segment index is generated exactly once; content kind follows a
// fixed rhythm (index mod 3) while positions and stats are randomized
// within each kind.
func (w *World) spawnAhead() {
	horizon := w.Distance + lookahead
	for idx := w.spawnCursor + 1; float64(idx)*segmentLen <= horizon; idx++ {
		w.generateSegment(idx)
		w.spawnCursor = idx
	}
}

// generateSegment fills one lane stride with content.
func (w *World) generateSegment(idx int) {
	// Screen-space position of this stride: content idx*segmentLen units
	// ahead sits that far above the lane bottom right now, and scrolls
	// down as distance advances.
	base := core.LaneH - (float64(idx)*segmentLen - w.Distance)

	switch idx % 3 {
	case 0:
		w.spawnGatePair(base)
	case 1:
		w.spawnZombieWave(base)
	case 2:
		w.spawnObstacle(base)
	}
}

// spawnGatePair places two gates at fixed horizontal thirds, each with an
// independently chosen operation from the fixed set.
func (w *World) spawnGatePair(base float64) {
	leftX := laneMargin
	rightX := core.LaneW - laneMargin - gateW

	w.Gates = append(w.Gates,
		Gate{
			RectF: core.NewRectF(leftX, base, gateW, gateH),
			Op:    gateOps[w.rng.Intn(len(gateOps))],
		},
		Gate{
			RectF: core.NewRectF(rightX, base-(gateH+gatePairGap), gateW, gateH),
			Op:    gateOps[w.rng.Intn(len(gateOps))],
		},
	)
}

// spawnZombieWave spawns a cluster of zombies whose size and stats scale
// with cumulative distance.
func (w *World) spawnZombieWave(base float64) {
	count := 6 + 3 + w.rng.Intn(6) + int(w.Distance/800)
	if count > maxWaveSize {
		count = maxWaveSize
	}

	hp := 12 + int(w.Distance/200)*8
	damage := 3 + int(w.Distance/1000)

	for i := 0; i < count; i++ {
		x := laneMargin + w.rng.Float64()*(core.LaneW-2*laneMargin-zombieW)
		w.Zombies = append(w.Zombies, Zombie{
			RectF:  core.NewRectF(x, base-float64(i)*waveStagger, zombieW, zombieH),
			HP:     hp,
			Damage: damage,
		})
	}
}

// spawnObstacle places a destructible block at a random lane position.
func (w *World) spawnObstacle(base float64) {
	hp := 32 + int(w.Distance/300)*10
	x := laneMargin + w.rng.Float64()*(core.LaneW-2*laneMargin-obstacleW)
	w.Obstacles = append(w.Obstacles, Obstacle{
		RectF: core.NewRectF(x, base, obstacleW, obstacleH),
		HP:    hp,
		MaxHP: hp,
	})
}

// spawnBosses crosses boss distance thresholds. It loops rather than
// single-triggering so a large catch-up step cannot skip a spawn.
func (w *World) spawnBosses() {
	for w.Distance >= w.NextBossDist {
		// Stats derive from the threshold, not the overshoot distance,
		// so catch-up spawns are deterministic.
		d := w.NextBossDist
		hp := 260 + int(d/400)*90
		damage := 20 + int(d/2000)*5

		x := laneMargin + w.rng.Float64()*(core.LaneW-2*laneMargin-bossW)
		w.Bosses = append(w.Bosses, Boss{
			RectF:  core.NewRectF(x, bossSpawnY, bossW, bossH),
			HP:     hp,
			Damage: damage,
		})

		w.NextBossDist += bossStride
	}
}

// spawnAttackItem drops a falling attack-bonus item at a destroyed
// obstacle's bottom-center. The bonus derives from the obstacle's max HP.
func (w *World) spawnAttackItem(o Obstacle) {
	bonus := core.Clamp(o.MaxHP/30, 1, attackBonusCap)
	w.Items = append(w.Items, Item{
		RectF:   core.NewRectF(o.CenterX()-itemW/2, o.Bottom()-itemH/2, itemW, itemH),
		FallVel: itemFallSpeed,
		Bonus:   bonus,
	})
}
