// Package visual precomputes the scroll positions of every note of a chart
// and answers which of them are on the track for a given frame.
package visual

import (
	"git.lost.host/meutraa/arcview/internal/easing"
	"git.lost.host/meutraa/arcview/internal/game"
	"git.lost.host/meutraa/arcview/internal/timeline"
)

type Note struct {
	Type   game.NoteType
	Bounds Bounds

	Floor *game.FloorNote
	Long  *game.LongNote
	Arc   *game.ArcNote
	Sky   *game.SkyNote

	Skies  []int // Indices into Beatmap.Skies, arcs only
	Parent int   // Index into Beatmap.Notes of the arc owning a sky note
}

type Beatmap struct {
	Base     *game.Beatmap
	Timeline *timeline.Timeline
	Metrics  game.StageMetrics

	Notes []*Note // Floor, long and arc notes in chart order
	Skies []*Note

	// floor note index -> sky note index, for notes hit at the same tick
	sync map[int]int
}

func New(base *game.Beatmap, m game.StageMetrics) *Beatmap {
	b := &Beatmap{
		Base:     base,
		Timeline: timeline.FromBeatmap(base),
		Metrics:  m,
		Notes:    []*Note{},
		Skies:    []*Note{},
		sync:     map[int]int{},
	}

	point := func(tick int, addition float32) Bounds {
		y := b.Timeline.PositionAt(tick, m, addition)
		return Bounds{StartTick: tick, EndTick: tick, StartY: y, EndY: y}
	}
	ranged := func(start, end int, addition float32) Bounds {
		return Bounds{
			StartTick: start,
			EndTick:   end,
			StartY:    b.Timeline.PositionAt(start, m, addition),
			EndY:      b.Timeline.PositionAt(end, m, addition),
		}
	}

	for _, n := range base.Notes {
		switch n.Type {
		case game.Floor:
			b.Notes = append(b.Notes, &Note{
				Type:   game.Floor,
				Bounds: point(n.Floor.Tick, m.FinishLineY),
				Floor:  n.Floor,
			})
		case game.Long:
			// Holds are drawn from their bottom edge
			b.Notes = append(b.Notes, &Note{
				Type:   game.Long,
				Bounds: ranged(n.Long.StartTick, n.Long.EndTick, m.FinishLineY-m.FloorNoteHeight/2),
				Long:   n.Long,
			})
		case game.Arc:
			arc := &Note{
				Type:   game.Arc,
				Bounds: ranged(n.Arc.StartTick, n.Arc.EndTick, m.FinishLineY),
				Arc:    n.Arc,
			}
			parent := len(b.Notes)
			for i := range n.Arc.SkyNotes {
				sky := &n.Arc.SkyNotes[i]
				arc.Skies = append(arc.Skies, len(b.Skies))
				b.Skies = append(b.Skies, &Note{
					Type:   game.Sky,
					Bounds: point(sky.Tick, m.FinishLineY),
					Sky:    sky,
					Parent: parent,
				})
			}
			b.Notes = append(b.Notes, arc)
		}
	}

	b.indexSynchronized()

	return b
}

// Links each floor note to the first sky note sharing its tick.
func (b *Beatmap) indexSynchronized() {
	skyByTick := map[int]int{}
	for i, sky := range b.Skies {
		if _, ok := skyByTick[sky.Sky.Tick]; !ok {
			skyByTick[sky.Sky.Tick] = i
		}
	}
	for i, n := range b.Notes {
		if n.Type != game.Floor {
			continue
		}
		if s, ok := skyByTick[n.Floor.Tick]; ok {
			b.sync[i] = s
		}
	}
}

// SynchronizedSky returns the sky note hit together with the floor note at
// index i of Notes.
func (b *Beatmap) SynchronizedSky(i int) (int, bool) {
	s, ok := b.sync[i]
	return s, ok
}

// CurrentY is the scroll position of the judgement line at tick.
func (b *Beatmap) CurrentY(tick int) float32 {
	return b.Timeline.PositionAt(tick, b.Metrics, 0)
}

func (b *Beatmap) IsVisible(n *Note, tick int, currentY float32) bool {
	return IsVisible(n.Bounds, tick, currentY, b.Metrics)
}

// Visible returns the notes and sky notes to draw at tick.
func (b *Beatmap) Visible(tick int, currentY float32) ([]*Note, []*Note) {
	notes := []*Note{}
	for _, n := range b.Notes {
		if b.IsVisible(n, tick, currentY) {
			notes = append(notes, n)
		}
	}
	skies := []*Note{}
	for _, n := range b.Skies {
		if b.IsVisible(n, tick, currentY) {
			skies = append(skies, n)
		}
	}
	return notes, skies
}

// LaneX maps an arc x coordinate, [-0.5, 1.5] on the playable area, to a
// horizontal track position centred on 0.
func (b *Beatmap) LaneX(x float32) float32 {
	return (x+0.5)*b.Metrics.TrackInnerWidth/2 - b.Metrics.HalfTrackInnerWidth()
}

// TrackX is the horizontal centre of a floor track.
func (b *Beatmap) TrackX(t game.Track) float32 {
	lane := b.Metrics.TrackInnerWidth / 4
	return float32(int(t)-1)*lane - b.Metrics.HalfTrackInnerWidth() + lane/2
}

// ArcPoint returns where the arc is at tick, relative to the judgement line
// scrolled to currentY. Ticks outside the arc are clamped to its ends.
func (b *Beatmap) ArcPoint(n *Note, tick int, currentY float32) easing.Point3 {
	a := n.Arc
	start := easing.Point3{
		X: b.LaneX(a.StartX),
		Y: n.Bounds.StartY - currentY,
		Z: b.Metrics.SkyInputZ * a.StartY,
	}
	end := easing.Point3{
		X: b.LaneX(a.EndX),
		Y: n.Bounds.EndY - currentY,
		Z: b.Metrics.SkyInputZ * a.EndY,
	}
	progress := float32(1)
	if a.EndTick != a.StartTick {
		progress = float32(tick-a.StartTick) / float32(a.EndTick-a.StartTick)
	}
	return easing.Ease(start, end, progress, a.Easing)
}

// SkyPoint places a sky note on its parent arc.
func (b *Beatmap) SkyPoint(sky *Note, currentY float32) easing.Point3 {
	p := b.ArcPoint(b.Notes[sky.Parent], sky.Sky.Tick, currentY)
	p.Y = sky.Bounds.StartY - currentY
	return p
}
