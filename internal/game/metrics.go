package game

import (
	"fmt"
	"math"
)

// StageMetrics controls the track layout. It is supplied by the caller and
// never modified by the core.
type StageMetrics struct {
	TrackLength     float32 `yaml:"track_length"`
	TrackInnerWidth float32 `yaml:"track_inner_width"`
	FloorNoteWidth  float32 `yaml:"floor_note_width"`
	FloorNoteHeight float32 `yaml:"floor_note_height"`
	SkyNoteWidth    float32 `yaml:"sky_note_width"`
	FinishLineY     float32 `yaml:"finish_line_y"`
	SkyInputZ       float32 `yaml:"sky_input_z"`
	Speed           float32 `yaml:"speed"`

	// Notes ending before tick - PastTickThreshold are not drawn
	PastTickThreshold int `yaml:"past_tick_threshold"`
	// Notes starting after tick + FutureTickThreshold are not drawn. This
	// needs to grow with Speed, or notes after a sudden tempo change vanish.
	FutureTickThreshold int `yaml:"future_tick_threshold"`
}

func DefaultStageMetrics() StageMetrics {
	width := float32(20)
	return StageMetrics{
		TrackLength:         100,
		TrackInnerWidth:     width,
		FloorNoteWidth:      width / 64 * 15,
		FloorNoteHeight:     width / 8,
		SkyNoteWidth:        width / 4,
		FinishLineY:         10,
		SkyInputZ:           width / 3.236,
		Speed:               5,
		PastTickThreshold:   0,
		FutureTickThreshold: 4000,
	}
}

func (m StageMetrics) HalfTrackInnerWidth() float32 {
	return m.TrackInnerWidth / 2
}

func (m StageMetrics) Validate() error {
	finite := map[string]float32{
		"finish_line_y": m.FinishLineY,
		"sky_input_z":   m.SkyInputZ,
		"speed":         m.Speed,
	}
	positive := map[string]float32{
		"track_length":      m.TrackLength,
		"track_inner_width": m.TrackInnerWidth,
		"floor_note_width":  m.FloorNoteWidth,
		"floor_note_height": m.FloorNoteHeight,
		"sky_note_width":    m.SkyNoteWidth,
	}
	for name, v := range finite {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return fmt.Errorf("stage metric %s is not finite: %v", name, v)
		}
	}
	for name, v := range positive {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) || v <= 0 {
			return fmt.Errorf("stage metric %s must be positive: %v", name, v)
		}
	}
	return nil
}
