package library

import (
	"time"
)

// Library remembers every attempt to load a chart. It never stores the parsed
// notes, charts are parsed again on each load.
type Library interface {
	Init() error
	Deinit()

	// Record a load attempt
	Record(entry *Entry) error

	// Load all attempts for charts with this content hash, oldest first
	Load(sum string) ([]Entry, error)

	// Recent returns the latest attempts over all charts
	Recent(limit int) ([]Entry, error)

	Hash(text []byte) string
}

type Entry struct {
	Sum         string
	Path        string
	LoadedAt    time.Time
	Ok          bool
	Error       string
	AudioOffset int
	Counts      Counts
}

type Counts struct {
	Floor  int `json:"floor"`
	Long   int `json:"long"`
	Arc    int `json:"arc"`
	Sky    int `json:"sky"`
	Timing int `json:"timing"`
}
