// Package timeline converts chart ticks into scroll positions by integrating
// the tempo over the chart's timing notes.
package timeline

import (
	"errors"

	"git.lost.host/meutraa/arcview/internal/game"
)

const (
	timeScale = 0.6
	tickScale = 100000
)

// ErrEmptyTimeline is not fatal: every position of an empty timeline is 0.
var ErrEmptyTimeline = errors.New("no timing note found in chart")

type Timeline struct {
	timings []game.TimingNote
}

// New keeps the timing notes in the given order. They are expected to be in
// ascending tick order already, which the parser guarantees.
func New(timings []game.TimingNote) *Timeline {
	t := make([]game.TimingNote, len(timings))
	copy(t, timings)
	return &Timeline{timings: t}
}

func FromBeatmap(b *game.Beatmap) *Timeline {
	return New(b.Timings())
}

func (t *Timeline) Empty() bool {
	return len(t.timings) == 0
}

func (t *Timeline) Timings() []game.TimingNote {
	return t.timings
}

func (t *Timeline) FirstBpm() (float32, error) {
	if t.Empty() {
		return 0, ErrEmptyTimeline
	}
	return t.timings[0].Bpm, nil
}

// Accumulated returns the sum of span * bpm over every timing segment up to
// tick. Segments starting after tick contribute nothing.
func (t *Timeline) Accumulated(tick int) float32 {
	result := float32(0)
	for i, timing := range t.timings {
		if tick < timing.Tick {
			break
		}
		if i >= len(t.timings)-1 || tick < t.timings[i+1].Tick {
			result += float32(tick-timing.Tick) * timing.Bpm
		} else {
			result += float32(t.timings[i+1].Tick-timing.Tick) * timing.Bpm
		}
	}
	return result
}

// PositionAt returns the scroll distance of tick, in the same units as the
// track length, with baseOffset added.
func (t *Timeline) PositionAt(tick int, metrics game.StageMetrics, baseOffset float32) float32 {
	if t.Empty() {
		return 0
	}
	measureLength := metrics.FloorNoteHeight * 6

	result := t.Accumulated(tick)
	result /= tickScale
	result *= measureLength * timeScale * metrics.Speed
	result += baseOffset

	return result
}
