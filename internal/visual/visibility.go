package visual

import "git.lost.host/meutraa/arcview/internal/game"

// Bounds is the time and scroll extent of a note. Notes with a single tick
// have equal start and end values.
type Bounds struct {
	StartTick, EndTick int
	StartY, EndY       float32
}

// IsVisible reports whether a note should be drawn at tick, with the
// judgement line scrolled to currentY.
func IsVisible(b Bounds, tick int, currentY float32, m game.StageMetrics) bool {
	if b.EndTick < tick-m.PastTickThreshold || tick+m.FutureTickThreshold < b.StartTick {
		return false
	}
	return !(b.EndY < currentY || currentY+m.TrackLength < b.StartY)
}
