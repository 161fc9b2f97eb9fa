package sim

import (
	"testing"

	"github.com/vovakirdan/crowd-rush/internal/core"
)

func TestPlayerCount(t *testing.T) {
	tests := []struct {
		value    int
		expected int
	}{
		{0, 1},
		{1, 1},
		{5, 5},
		{20, 20},
		{21, 20},
		{999, 20},
	}

	for _, tc := range tests {
		if got := PlayerCount(tc.value); got != tc.expected {
			t.Errorf("PlayerCount(%d) = %d, expected %d", tc.value, got, tc.expected)
		}
	}
}

func TestPlayerCountMonotone(t *testing.T) {
	prev := PlayerCount(0)
	for v := 1; v <= 50; v++ {
		cur := PlayerCount(v)
		if cur < prev {
			t.Fatalf("PlayerCount must be non-decreasing, dropped from %d to %d at value %d", prev, cur, v)
		}
		prev = cur
	}
}

func TestCrowdWidthMonotone(t *testing.T) {
	prev := CrowdWidth(1)
	for count := 2; count <= maxSegments; count++ {
		cur := CrowdWidth(count)
		if cur <= prev {
			t.Fatalf("CrowdWidth must be strictly increasing, got %f after %f at count %d", cur, prev, count)
		}
		prev = cur
	}
}

func TestSegmentSpacing(t *testing.T) {
	tests := []struct {
		count    int
		expected float64
	}{
		{1, 8},
		{4, 8},
		{5, 7},
		{9, 6},
		{20, 4},
	}

	for _, tc := range tests {
		if got := SegmentSpacing(tc.count); got != tc.expected {
			t.Errorf("SegmentSpacing(%d) = %f, expected %f", tc.count, got, tc.expected)
		}
	}

	// Spacing never drops below the floor
	for count := 1; count <= 100; count++ {
		if SegmentSpacing(count) < minSpacing {
			t.Fatalf("SegmentSpacing(%d) below floor", count)
		}
	}
}

func TestCrowdFitsInsideLane(t *testing.T) {
	// Even the widest crowd must fit between the lane margins.
	widest := CrowdWidth(maxSegments)
	if widest > core.LaneW-2*laneMargin {
		t.Errorf("widest crowd (%f) does not fit inside lane margins (%f)", widest, core.LaneW-2*laneMargin)
	}
}

func TestMovePlayerGlidesTowardTarget(t *testing.T) {
	w := NewWorld(core.RuntimeConfig{Seed: 1})

	start := w.Player.CenterX()
	target := 300.0
	w.movePlayer(core.Pointer{TargetX: target, Down: true})

	moved := w.Player.CenterX()
	if moved <= start {
		t.Errorf("crowd should glide toward target, center %f -> %f", start, moved)
	}
	if moved >= target {
		t.Errorf("glide should be partial, center jumped to %f", moved)
	}
}

func TestMovePlayerClampedToLane(t *testing.T) {
	w := NewWorld(core.RuntimeConfig{Seed: 1})

	// Repeatedly steer far outside the lane; the crowd must stay inside
	// the margins.
	for i := 0; i < 200; i++ {
		w.movePlayer(core.Pointer{TargetX: -1000, Down: true})
	}
	if w.Player.X < laneMargin {
		t.Errorf("crowd left edge %f beyond left margin", w.Player.X)
	}

	for i := 0; i < 200; i++ {
		w.movePlayer(core.Pointer{TargetX: 1000, Down: true})
	}
	if w.Player.Right() > core.LaneW-laneMargin {
		t.Errorf("crowd right edge %f beyond right margin", w.Player.Right())
	}
}

func TestMovePlayerPreservesCenterOnGrowth(t *testing.T) {
	w := NewWorld(core.RuntimeConfig{Seed: 1})

	// Settle on the current position, then grow the crowd. The center
	// must not jump from the width change alone.
	target := w.Player.CenterX()
	w.movePlayer(core.Pointer{TargetX: target, Down: true})
	before := w.Player.CenterX()

	w.Value = 20
	w.movePlayer(core.Pointer{TargetX: target, Down: true})
	after := w.Player.CenterX()

	if diff := after - before; diff > 0.001 || diff < -0.001 {
		t.Errorf("center moved by %f on width change, expected preserved", diff)
	}
	if w.Player.W != CrowdWidth(20) {
		t.Errorf("width = %f, expected %f", w.Player.W, CrowdWidth(20))
	}
}
