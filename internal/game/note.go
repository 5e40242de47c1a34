package game

type NoteType uint8

const (
	Floor NoteType = iota
	Long
	Arc
	Timing
	Sky // only reachable through an arc's sky notes
)

func (t NoteType) String() string {
	switch t {
	case Floor:
		return "floor"
	case Long:
		return "long"
	case Arc:
		return "arc"
	case Timing:
		return "timing"
	case Sky:
		return "sky"
	}
	return "unknown"
}

type Track uint8

const (
	TrackInvalid Track = iota
	Track1             // The left track
	Track2
	Track3
	Track4 // The right track
)

type ArcColor uint8

const (
	LightBlue ArcColor = iota
	Magenta
)

func (c ArcColor) String() string {
	if c == Magenta {
		return "magenta"
	}
	return "lightblue"
}

type FloorNote struct {
	Tick  int // Milliseconds from the start of the chart
	Track Track
}

type LongNote struct {
	StartTick int
	EndTick   int
	Track     Track
}

type SkyNote struct {
	Tick int
}

type ArcNote struct {
	StartTick int
	EndTick   int
	StartX    float32 // Playable region is [-0.5, 1.5]
	EndX      float32
	StartY    float32 // Playable region is [0, 1]
	EndY      float32
	Easing    Easing
	Color     ArcColor // Only matters for playable arcs
	IsTrace   bool
	Unknown   string // Usually "none"

	// nil when the arc has no arctap clauses
	SkyNotes []SkyNote
}

func (a *ArcNote) IsPlayable() bool {
	return !a.IsTrace
}

type TimingNote struct {
	Tick            int
	Bpm             float32
	BeatsPerMeasure float32
}

// Note is one line of a chart. Exactly one of the payload pointers is set,
// matching Type.
type Note struct {
	Type NoteType

	Floor  *FloorNote
	Long   *LongNote
	Arc    *ArcNote
	Timing *TimingNote
}

func NewFloor(n FloorNote) Note   { return Note{Type: Floor, Floor: &n} }
func NewLong(n LongNote) Note     { return Note{Type: Long, Long: &n} }
func NewArc(n ArcNote) Note       { return Note{Type: Arc, Arc: &n} }
func NewTiming(n TimingNote) Note { return Note{Type: Timing, Timing: &n} }

// Ticks returns the start and end tick of the note. Notes with a single tick
// return it twice.
func (n Note) Ticks() (int, int) {
	switch n.Type {
	case Floor:
		return n.Floor.Tick, n.Floor.Tick
	case Long:
		return n.Long.StartTick, n.Long.EndTick
	case Arc:
		return n.Arc.StartTick, n.Arc.EndTick
	case Timing:
		return n.Timing.Tick, n.Timing.Tick
	}
	panic("game: note has no payload")
}

// PrimaryTick is the tick notes are ordered by.
func (n Note) PrimaryTick() int {
	start, _ := n.Ticks()
	return start
}

func (n Note) Equal(o Note) bool {
	if n.Type != o.Type {
		return false
	}
	switch n.Type {
	case Floor:
		return *n.Floor == *o.Floor
	case Long:
		return *n.Long == *o.Long
	case Timing:
		return *n.Timing == *o.Timing
	case Arc:
		return n.Arc.equal(o.Arc)
	}
	return false
}

func (a *ArcNote) equal(b *ArcNote) bool {
	if a.StartTick != b.StartTick || a.EndTick != b.EndTick ||
		a.StartX != b.StartX || a.EndX != b.EndX ||
		a.StartY != b.StartY || a.EndY != b.EndY ||
		a.Easing != b.Easing || a.Color != b.Color ||
		a.IsTrace != b.IsTrace || a.Unknown != b.Unknown {
		return false
	}
	// absent and empty sky notes are the same thing
	if len(a.SkyNotes) != len(b.SkyNotes) {
		return false
	}
	for i := range a.SkyNotes {
		if a.SkyNotes[i] != b.SkyNotes[i] {
			return false
		}
	}
	return true
}
