package sim

import (
	"testing"

	"github.com/vovakirdan/crowd-rush/internal/core"
)

func TestSpawnCadence(t *testing.T) {
	w := NewWorld(core.RuntimeConfig{Seed: 42})

	// At distance 0 the lookahead covers segment indices 1..5:
	// 1 -> zombie wave, 2 -> obstacle, 3 -> gate pair, 4 -> wave, 5 -> obstacle.
	if w.spawnCursor != 5 {
		t.Fatalf("spawn cursor = %d, expected 5", w.spawnCursor)
	}
	if len(w.Gates) != 2 {
		t.Errorf("expected one gate pair (2 gates), got %d", len(w.Gates))
	}
	if len(w.Obstacles) != 2 {
		t.Errorf("expected 2 obstacles, got %d", len(w.Obstacles))
	}
	// Two waves of at least the minimum size each
	if len(w.Zombies) < 18 {
		t.Errorf("expected at least 18 zombies from two waves, got %d", len(w.Zombies))
	}
}

func TestSpawnAheadGeneratesOnce(t *testing.T) {
	w := NewWorld(core.RuntimeConfig{Seed: 42})

	gates, zombies, obstacles := len(w.Gates), len(w.Zombies), len(w.Obstacles)
	cursor := w.spawnCursor

	// Horizon already generated: repeated catch-up must be a no-op.
	w.spawnAhead()
	w.spawnAhead()

	if w.spawnCursor != cursor {
		t.Errorf("spawn cursor advanced without distance: %d -> %d", cursor, w.spawnCursor)
	}
	if len(w.Gates) != gates || len(w.Zombies) != zombies || len(w.Obstacles) != obstacles {
		t.Error("spawnAhead generated duplicate content for the same segments")
	}
}

func TestZombieStatsAtStart(t *testing.T) {
	w := NewWorld(core.RuntimeConfig{Seed: 7})

	for _, z := range w.Zombies {
		if z.HP != 12 {
			t.Errorf("zombie hp at distance 0 = %d, expected 12", z.HP)
		}
		if z.Damage != 3 {
			t.Errorf("zombie damage at distance 0 = %d, expected 3", z.Damage)
		}
	}
}

func TestZombieWaveCapped(t *testing.T) {
	w := NewWorld(core.RuntimeConfig{Seed: 7})
	w.Zombies = w.Zombies[:0]
	w.Distance = 40000

	w.spawnZombieWave(0)

	if len(w.Zombies) != maxWaveSize {
		t.Errorf("wave at huge distance = %d zombies, expected cap %d", len(w.Zombies), maxWaveSize)
	}
}

func TestObstacleScaling(t *testing.T) {
	tests := []struct {
		distance   float64
		expectedHP int
	}{
		{0, 32},
		{299, 32},
		{300, 42},
		{900, 62},
	}

	for _, tc := range tests {
		w := NewWorld(core.RuntimeConfig{Seed: 1})
		w.Obstacles = w.Obstacles[:0]
		w.Distance = tc.distance

		w.spawnObstacle(0)

		o := w.Obstacles[0]
		if o.HP != tc.expectedHP {
			t.Errorf("obstacle hp at distance %f = %d, expected %d", tc.distance, o.HP, tc.expectedHP)
		}
		if o.MaxHP != o.HP {
			t.Errorf("obstacle maxHp %d != hp %d at spawn", o.MaxHP, o.HP)
		}
	}
}

func TestGatePairLayout(t *testing.T) {
	w := NewWorld(core.RuntimeConfig{Seed: 3})
	w.Gates = w.Gates[:0]

	w.spawnGatePair(400)

	if len(w.Gates) != 2 {
		t.Fatalf("expected 2 gates, got %d", len(w.Gates))
	}

	left, right := w.Gates[0], w.Gates[1]
	if left.X != laneMargin {
		t.Errorf("left gate x = %f, expected %f", left.X, laneMargin)
	}
	if right.Right() != core.LaneW-laneMargin {
		t.Errorf("right gate right edge = %f, expected %f", right.Right(), core.LaneW-laneMargin)
	}
	if gap := left.Y - right.Y; gap != gateH+gatePairGap {
		t.Errorf("vertical gap between pair = %f, expected %f", gap, gateH+gatePairGap)
	}
}

func TestBossThresholdCatchUp(t *testing.T) {
	w := NewWorld(core.RuntimeConfig{Seed: 9})

	// Simulate a huge catch-up step: distance jumps from 1999 to 5000.
	w.Distance = 1999
	w.Update(0, core.Pointer{})
	if len(w.Bosses) != 0 {
		t.Fatalf("no boss should spawn before the first threshold, got %d", len(w.Bosses))
	}

	w.Distance = 5000
	w.Update(0, core.Pointer{})

	if len(w.Bosses) != 2 {
		t.Errorf("expected exactly 2 bosses for thresholds 2000 and 4000, got %d", len(w.Bosses))
	}
	if w.NextBossDist != 6000 {
		t.Errorf("next boss distance = %f, expected 6000", w.NextBossDist)
	}
}

func TestBossStatsScaleWithThreshold(t *testing.T) {
	w := NewWorld(core.RuntimeConfig{Seed: 9})
	w.Distance = 5000
	w.Update(0, core.Pointer{})

	first, second := w.Bosses[0], w.Bosses[1]
	if first.HP >= second.HP {
		t.Errorf("later boss should have more hp: %d then %d", first.HP, second.HP)
	}
}

func TestAttackItemBonus(t *testing.T) {
	tests := []struct {
		maxHP    int
		expected int
	}{
		{10, 1},  // floor(10/30)=0, clamped up to 1
		{32, 1},  // floor(32/30)=1
		{90, 3},  // floor(90/30)=3
		{300, 6}, // floor(300/30)=10, clamped to cap
	}

	for _, tc := range tests {
		w := NewWorld(core.RuntimeConfig{Seed: 1})
		w.Items = w.Items[:0]

		o := Obstacle{RectF: core.NewRectF(100, 100, obstacleW, obstacleH), HP: 0, MaxHP: tc.maxHP}
		w.spawnAttackItem(o)

		if len(w.Items) != 1 {
			t.Fatalf("expected exactly 1 item, got %d", len(w.Items))
		}
		it := w.Items[0]
		if it.Bonus != tc.expected {
			t.Errorf("item bonus for maxHp %d = %d, expected %d", tc.maxHP, it.Bonus, tc.expected)
		}
		// Dropped at the obstacle's bottom-center
		if cx := it.CenterX(); cx != o.CenterX() {
			t.Errorf("item center x = %f, expected obstacle center %f", cx, o.CenterX())
		}
		if it.FallVel != itemFallSpeed {
			t.Errorf("item fall velocity = %f, expected %f", it.FallVel, itemFallSpeed)
		}
	}
}
