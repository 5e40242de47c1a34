package timeline

import (
	"math"

	"git.lost.host/meutraa/arcview/internal/game"
)

// Measures returns the bar lines from the first timing note up to and
// including until. Segments with a non-positive tempo or measure length have
// no bar lines other than their first.
func (t *Timeline) Measures(until int) []*game.Measure {
	measures := []*game.Measure{}
	for i, timing := range t.timings {
		if timing.Tick > until {
			break
		}
		end := until
		if i < len(t.timings)-1 && t.timings[i+1].Tick <= until {
			end = t.timings[i+1].Tick - 1
		}

		measures = append(measures, &game.Measure{Tick: timing.Tick, First: true})
		if timing.Bpm <= 0 || timing.BeatsPerMeasure <= 0 {
			continue
		}
		// Milliseconds per beat times beats per measure
		length := 60000 / float64(timing.Bpm) * float64(timing.BeatsPerMeasure)
		for k := 1; ; k++ {
			tick := timing.Tick + int(math.Round(float64(k)*length))
			if tick > end {
				break
			}
			measures = append(measures, &game.Measure{Tick: tick})
		}
	}
	return measures
}
