package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/ioutil"
	"log"

	"git.lost.host/meutraa/arcview/internal/config"
	"git.lost.host/meutraa/arcview/internal/game"
	"git.lost.host/meutraa/arcview/internal/library"
	"git.lost.host/meutraa/arcview/internal/parser"
	"git.lost.host/meutraa/arcview/internal/render"
	"git.lost.host/meutraa/arcview/internal/theme"
	"git.lost.host/meutraa/arcview/internal/timeline"
	"git.lost.host/meutraa/arcview/internal/transport"
	"git.lost.host/meutraa/arcview/internal/visual"
)

var errNoBeatmap = errors.New("no beatmap loaded")

type Program struct {
	Parser   parser.Parser
	Library  library.Library
	Theme    theme.Theme
	Renderer render.Renderer
	Clock    transport.Clock

	Metrics game.StageMetrics

	// nil when the chart failed to load
	beatmap  *game.Beatmap
	visual   *visual.Beatmap
	measures []*game.Measure
}

// Load parses a chart, leaving the program without a beatmap when that
// fails. Every attempt is recorded in the library.
func (p *Program) Load(path string) error {
	p.beatmap, p.visual, p.measures = nil, nil, nil

	data, err := ioutil.ReadFile(path)
	if nil != err {
		return fmt.Errorf("unable to read chart: %w", err)
	}

	entry := &library.Entry{Sum: p.Library.Hash(data), Path: path}
	beatmap, err := p.Parser.Parse(bytes.NewReader(data))
	if nil != err {
		entry.Error = err.Error()
	} else {
		entry.Ok = true
		entry.AudioOffset = beatmap.AudioOffset
		entry.Counts = library.CountNotes(beatmap)
	}
	if err := p.Library.Record(entry); nil != err {
		log.Println(err)
	}
	if nil != err {
		log.Printf("unable to load %s: %v\n", path, err)
		return errNoBeatmap
	}

	p.beatmap = beatmap
	p.visual = visual.New(beatmap, p.Metrics)
	if _, err := p.visual.Timeline.FirstBpm(); errors.Is(err, timeline.ErrEmptyTimeline) {
		log.Printf("%s: %v, every note sits on the judgement line\n", path, err)
	}
	p.measures = p.visual.Timeline.Measures(beatmap.LastTick())

	log.Printf("Loaded %s: %+v\n", path, entry.Counts)
	return nil
}

func (p *Program) Loaded() bool {
	return nil != p.beatmap
}

// Ended reports whether the last note has left the track, which is when it
// stops being visible. Without a beatmap the viewer stays open until it is
// quit.
func (p *Program) Ended(tick int) bool {
	return p.Loaded() && tick > p.beatmap.LastTick()+p.Metrics.PastTickThreshold
}

func (p *Program) projection() render.Projection {
	rows, columns := p.Renderer.Size()
	width := columns / 2
	if width > 60 {
		width = 60
	}
	return render.Projection{
		Top:       2,
		Bottom:    rows - 2,
		Left:      columns/2 - width/2,
		Right:     columns/2 + width/2,
		Near:      p.Metrics.FinishLineY,
		Far:       p.Metrics.TrackLength,
		HalfWidth: p.Metrics.HalfTrackInnerWidth(),
	}
}

// Render draws one frame of the track at tick.
func (p *Program) Render(tick int) {
	r := p.Renderer
	r.Clear()
	if !p.Loaded() {
		r.Fill(1, 1, errNoBeatmap.Error())
		return
	}

	pr := p.projection()
	currentY := p.visual.CurrentY(tick)

	p.RenderStatic(pr)
	p.RenderMeasures(pr, currentY)
	notes, skies := p.visual.Visible(tick, currentY)
	for _, n := range notes {
		p.RenderNote(pr, n, tick, currentY)
	}
	for _, n := range skies {
		pt := p.visual.SkyPoint(n, currentY)
		p.fill(pr, pt.X, pt.Y, n)
	}

	r.Fill(1, 1, fmt.Sprintf("tick %6d  visible %3d", tick, len(notes)+len(skies)))
}

func (p *Program) RenderStatic(pr render.Projection) {
	row, _ := pr.Row(p.Metrics.FinishLineY)
	for col := pr.Left; col <= pr.Right; col++ {
		p.Renderer.Fill(row, col, p.Theme.JudgementLine())
	}
	for lane := game.Track1; lane <= game.Track4+1; lane++ {
		x := float32(int(lane)-1)*p.Metrics.TrackInnerWidth/4 - p.Metrics.HalfTrackInnerWidth()
		col, _ := pr.Column(x)
		for r := pr.Top; r < row; r++ {
			p.Renderer.Fill(r, col, p.Theme.LaneDivider())
		}
	}
}

func (p *Program) RenderMeasures(pr render.Projection, currentY float32) {
	for _, m := range p.measures {
		y := p.visual.Timeline.PositionAt(m.Tick, p.Metrics, p.Metrics.FinishLineY) - currentY
		row, ok := pr.Row(y)
		if !ok || y < p.Metrics.FinishLineY {
			continue
		}
		sym, c := p.Theme.BarLine(m.First)
		for col := pr.Left + 1; col < pr.Right; col++ {
			p.Renderer.FillColor(row, col, c, sym)
		}
	}
}

func (p *Program) RenderNote(pr render.Projection, n *visual.Note, tick int, currentY float32) {
	switch n.Type {
	case game.Floor:
		p.fill(pr, p.visual.TrackX(n.Floor.Track), n.Bounds.StartY-currentY, n)
	case game.Long:
		x := p.visual.TrackX(n.Long.Track)
		bottom := n.Bounds.StartY - currentY
		if bottom < p.Metrics.FinishLineY {
			bottom = p.Metrics.FinishLineY
		}
		top := n.Bounds.EndY - currentY
		if top > p.Metrics.TrackLength {
			top = p.Metrics.TrackLength
		}
		from, _ := pr.Row(bottom)
		to, _ := pr.Row(top)
		col, ok := pr.Column(x)
		if !ok {
			return
		}
		for row := to; row <= from; row++ {
			if row >= pr.Top && row <= pr.Bottom {
				p.Renderer.FillColor(row, col, p.Theme.NoteColor(n), p.Theme.NoteSymbol(n))
			}
		}
	case game.Arc:
		// Sample the arc once per row it covers
		from, _ := pr.Row(n.Bounds.StartY - currentY)
		to, _ := pr.Row(n.Bounds.EndY - currentY)
		steps := from - to
		if steps < 1 {
			steps = 1
		} else if steps > pr.Bottom-pr.Top {
			steps = pr.Bottom - pr.Top
		}
		start := n.Arc.StartTick
		if start < tick {
			start = tick
		}
		for i := 0; i <= steps; i++ {
			t := start + (n.Arc.EndTick-start)*i/steps
			pt := p.visual.ArcPoint(n, t, currentY)
			if t == start && start == tick {
				pt.Y = p.Metrics.FinishLineY
			}
			p.fill(pr, pt.X, pt.Y, n)
		}
	}
}

func (p *Program) fill(pr render.Projection, x, y float32, n *visual.Note) {
	row, rok := pr.Row(y)
	col, cok := pr.Column(x)
	if rok && cok {
		p.Renderer.FillColor(row, col, p.Theme.NoteColor(n), p.Theme.NoteSymbol(n))
	}
}

func (p *Program) Init() error {
	p.Parser = &parser.DefaultParser{}
	p.Theme = &theme.DefaultTheme{}
	p.Metrics = config.Metrics

	lib := &library.DefaultLibrary{Path: *config.Library}
	if err := lib.Init(); nil != err {
		return fmt.Errorf("unable to open library: %w", err)
	}
	p.Library = lib

	if err := p.Load(*config.ChartFile); nil != err && !errors.Is(err, errNoBeatmap) {
		return err
	}

	audioOffset := 0
	if p.Loaded() {
		audioOffset = p.beatmap.AudioOffset
	}
	if *config.AudioFile != "" {
		clock, err := transport.Open(*config.AudioFile, audioOffset, *config.Offset)
		if nil != err {
			return err
		}
		p.Clock = clock
	} else {
		p.Clock = &transport.WallClock{AudioOffset: audioOffset, Offset: *config.Offset}
	}

	p.Renderer = &render.DefaultRenderer{FramePeriod: *config.FramePeriod}
	return nil
}

func (p *Program) Deinit() {
	if nil != p.Clock {
		if err := p.Clock.Close(); nil != err {
			log.Println("unable to close clock", err)
		}
	}
	if nil != p.Library {
		p.Library.Deinit()
	}
}
