package sim

import "github.com/vovakirdan/crowd-rush/internal/core"

// PlayerCount derives the number of crowd segments from the score value.
// Always in [1, maxSegments].
func PlayerCount(value int) int {
	return core.Clamp(value, 1, maxSegments)
}

// SegmentSpacing returns the gap between adjacent segments for a given
// crowd size. The crowd packs tighter as it grows: spacing shrinks by 1
// per 4 additional segments, down to a floor of 2.
func SegmentSpacing(count int) float64 {
	return float64(core.Max(minSpacing, baseSpacing-(count-1)/4))
}

// CrowdWidth returns the bounding-box width of a crowd with the given
// segment count. A pure function of count only, monotonically increasing.
func CrowdWidth(count int) float64 {
	return float64(count)*segmentW + float64(count-1)*SegmentSpacing(count)
}

// movePlayer recomputes the crowd rectangle from the current score value
// and glides it toward the pointer target.
func (w *World) movePlayer(in core.Pointer) {
	count := PlayerCount(w.Value)
	width := CrowdWidth(count)

	// Preserve the horizontal center across width changes.
	cx := w.Player.CenterX()
	w.Player.W = width
	w.Player.H = segmentH
	w.Player.Y = playerY

	// Exponential smoothing toward the pointer target.
	cx = core.Lerp(cx, in.TargetX, glideFactor)

	// Keep the whole crowd inside the lane margins.
	x := core.ClampF(cx-width/2, laneMargin, core.LaneW-laneMargin-width)
	w.Player.X = x
}

// segmentX returns the left edge of segment i within the crowd rectangle.
func (w *World) segmentX(i int) float64 {
	spacing := SegmentSpacing(PlayerCount(w.Value))
	return w.Player.X + float64(i)*(segmentW+spacing)
}
