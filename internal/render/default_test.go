package render

import (
	"bytes"
	"image/color"
	"testing"
)

func TestFillColor(t *testing.T) {
	var out bytes.Buffer
	r := &DefaultRenderer{Out: &out}
	r.FillColor(3, 7, color.RGBA{R: 1, G: 2, B: 3}, "x")
	r.flush()
	expected := "\033[3;7H\033[38;2;1;2;3mx\033[0m"
	if out.String() != expected {
		t.Logf("Output   %q", out.String())
		t.Logf("Expected %q", expected)
		t.Fail()
	}
}

func TestDecorationsExpire(t *testing.T) {
	var out bytes.Buffer
	r := &DefaultRenderer{Out: &out}
	r.AddDecoration(1, 1, "paused", 2)
	for i := 0; i < 3; i++ {
		r.tickDecorations()
	}
	if len(r.decorations) != 0 {
		t.Errorf("%v decorations left", len(r.decorations))
	}
}

type rowTest struct {
	Y        float32
	Row      int
	OnScreen bool
}

var rowTests = []rowTest{
	{10, 40, true},
	{100, 2, true},
	{55, 21, true},
	{0, 44, false},
	{120, -6, false},
}

func TestProjectionRow(t *testing.T) {
	p := Projection{Top: 2, Bottom: 40, Near: 10, Far: 100, Left: 10, Right: 50, HalfWidth: 10}
	for _, test := range rowTests {
		row, ok := p.Row(test.Y)
		if row != test.Row || ok != test.OnScreen {
			t.Errorf("y %v: row %v (%v), expected %v (%v)", test.Y, row, ok, test.Row, test.OnScreen)
		}
	}
	if col, ok := p.Column(0); col != 30 || !ok {
		t.Errorf("centre column %v", col)
	}
	if col, ok := p.Column(-10); col != 10 || !ok {
		t.Errorf("left column %v", col)
	}
	if _, ok := p.Column(11); ok {
		t.Error("outside the track")
	}
}
