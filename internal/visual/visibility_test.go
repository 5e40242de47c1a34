package visual

import (
	"testing"

	"git.lost.host/meutraa/arcview/internal/game"
)

func metrics() game.StageMetrics {
	m := game.DefaultStageMetrics()
	m.PastTickThreshold = 100
	m.FutureTickThreshold = 4000
	return m
}

type visibilityTest struct {
	Name     string
	Bounds   Bounds
	Tick     int
	CurrentY float32
	Visible  bool
}

var visibilityTests = []visibilityTest{
	{"future edge", Bounds{5000, 5000, 50, 50}, 1000, 0, true},
	{"past future edge", Bounds{5001, 5001, 50, 50}, 1000, 0, false},
	{"past edge", Bounds{900, 900, 50, 50}, 1000, 0, true},
	{"beyond past edge", Bounds{899, 899, 50, 50}, 1000, 0, false},
	{"long note still held", Bounds{0, 2000, 10, 90}, 1500, 60, true},
	{"long note ended", Bounds{0, 1000, 10, 90}, 1500, 60, false},
	{"scrolled below", Bounds{1200, 1200, 59, 59}, 1000, 60, false},
	{"at judgement", Bounds{1200, 1200, 60, 60}, 1000, 60, true},
	{"track end", Bounds{1200, 1200, 160, 160}, 1000, 60, true},
	{"beyond track end", Bounds{1200, 1200, 161, 161}, 1000, 60, false},
	{"span covers window", Bounds{0, 3000, 0, 500}, 1000, 60, true},
}

func TestIsVisible(t *testing.T) {
	m := metrics()
	for _, test := range visibilityTests {
		if got := IsVisible(test.Bounds, test.Tick, test.CurrentY, m); got != test.Visible {
			t.Log("Test    ", test.Name)
			t.Log("Visible ", got)
			t.Log("Expected", test.Visible)
			t.Fail()
		}
	}
}
