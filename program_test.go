package main

import (
	"bytes"
	"errors"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"git.lost.host/meutraa/arcview/internal/game"
	"git.lost.host/meutraa/arcview/internal/library"
	"git.lost.host/meutraa/arcview/internal/parser"
	"git.lost.host/meutraa/arcview/internal/render"
	"git.lost.host/meutraa/arcview/internal/testdata"
	"git.lost.host/meutraa/arcview/internal/theme"
	"git.lost.host/meutraa/arcview/internal/timeline"
)

func newProgram(t *testing.T, out *bytes.Buffer) *Program {
	lib := &library.DefaultLibrary{Path: ":memory:"}
	if err := lib.Init(); nil != err {
		t.Fatal(err)
	}
	t.Cleanup(lib.Deinit)

	r := &render.DefaultRenderer{Out: out}
	r.SetSize(50, 100)

	return &Program{
		Parser:   &parser.DefaultParser{},
		Library:  lib,
		Theme:    &theme.DefaultTheme{},
		Renderer: r,
		Metrics:  game.DefaultStageMetrics(),
	}
}

func writeChart(t *testing.T, text string) string {
	path := filepath.Join(t.TempDir(), "chart.aff")
	if err := ioutil.WriteFile(path, []byte(text), 0644); nil != err {
		t.Fatal(err)
	}
	return path
}

func TestLoadBrokenChart(t *testing.T) {
	var out bytes.Buffer
	p := newProgram(t, &out)
	path := writeChart(t, "AudioOffset:0\n-\nhold(1,2);\n")

	if err := p.Load(path); !errors.Is(err, errNoBeatmap) {
		t.Log("Expected no beatmap, got", err)
		t.Fail()
	}
	if p.Loaded() || p.Ended(100000) {
		t.Error("a broken chart leaves the viewer open without a beatmap")
	}

	entries, err := p.Library.Recent(1)
	if nil != err || len(entries) != 1 {
		t.Fatal(entries, err)
	}
	if entries[0].Ok || !strings.Contains(entries[0].Error, "line 3") {
		t.Errorf("recorded %+v", entries[0])
	}

	frame(p, 0)
	if !strings.Contains(out.String(), errNoBeatmap.Error()) {
		t.Errorf("frame %q", out.String())
	}
}

// frame renders and flushes a single frame.
func frame(p *Program, tick int) {
	p.Renderer.RenderLoop(0, func(time.Time, time.Duration) bool {
		p.Render(tick)
		return false
	})
}

func TestLoadChart(t *testing.T) {
	var out bytes.Buffer
	p := newProgram(t, &out)
	path := writeChart(t, testdata.Chart)

	if err := p.Load(path); nil != err {
		t.Fatal(err)
	}
	if !p.Loaded() {
		t.Fatal("chart not loaded")
	}

	entries, err := p.Library.Load(p.Library.Hash([]byte(testdata.Chart)))
	if nil != err || len(entries) != 1 {
		t.Fatal(entries, err)
	}
	expected := library.Counts{Floor: 6, Long: 2, Arc: 4, Sky: 3, Timing: 3}
	if !entries[0].Ok || entries[0].Counts != expected || entries[0].AudioOffset != 248 {
		t.Errorf("recorded %+v", entries[0])
	}

	frame(p, 1905)
	if !strings.Contains(out.String(), "▬") {
		t.Error("the floor note on the judgement line is not drawn")
	}

	last := 9524
	if p.Ended(last) || !p.Ended(last+p.Metrics.PastTickThreshold+1) {
		t.Error("the viewer ends once the last note has left the track")
	}
}

func TestLoadChartWithoutTiming(t *testing.T) {
	var logs bytes.Buffer
	log.SetOutput(&logs)
	defer log.SetOutput(os.Stderr)

	var out bytes.Buffer
	p := newProgram(t, &out)
	path := writeChart(t, "AudioOffset:0\n-\n(1000,1);\nhold(500,1500,3);\narc(0,2000,0,1,si,0,1,0,none,false)[arctap(1000)];\n")

	if err := p.Load(path); nil != err {
		t.Fatal(err)
	}
	if !p.Loaded() {
		t.Fatal("a chart without timing notes still loads")
	}
	if !strings.Contains(logs.String(), timeline.ErrEmptyTimeline.Error()) {
		t.Log("Logs", logs.String())
		t.Fail()
	}
	if len(p.measures) != 0 {
		t.Errorf("bar lines without a tempo: %v", len(p.measures))
	}

	for _, tick := range []int{0, 1000, 2000} {
		frame(p, tick)
	}
	if !strings.Contains(out.String(), "tick   2000") {
		t.Errorf("frame %q", out.String())
	}
	if !p.Ended(2001) {
		t.Error("the viewer ends after the last note")
	}
}
