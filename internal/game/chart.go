package game

import "sort"

type Beatmap struct {
	AudioOffset int    // Milliseconds
	Notes       []Note // Sorted by primary tick
}

// SortNotes orders notes by primary tick, keeping file order for equal ticks.
func SortNotes(notes []Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].PrimaryTick() < notes[j].PrimaryTick()
	})
}

// Timings returns the timing notes in chart order.
func (b *Beatmap) Timings() []TimingNote {
	timings := []TimingNote{}
	for _, n := range b.Notes {
		if n.Type == Timing {
			timings = append(timings, *n.Timing)
		}
	}
	return timings
}

// Count returns the number of notes of the given type. Sky notes are counted
// through their arcs.
func (b *Beatmap) Count(t NoteType) int {
	count := 0
	for _, n := range b.Notes {
		if t == Sky && n.Type == Arc {
			count += len(n.Arc.SkyNotes)
		} else if n.Type == t {
			count++
		}
	}
	return count
}

// LastTick is the latest end tick of any note.
func (b *Beatmap) LastTick() int {
	last := 0
	for _, n := range b.Notes {
		if _, end := n.Ticks(); end > last {
			last = end
		}
	}
	return last
}

func (b *Beatmap) Equal(o *Beatmap) bool {
	if b.AudioOffset != o.AudioOffset || len(b.Notes) != len(o.Notes) {
		return false
	}
	for i := range b.Notes {
		if !b.Notes[i].Equal(o.Notes[i]) {
			return false
		}
	}
	return true
}
