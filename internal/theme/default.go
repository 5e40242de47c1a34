package theme

import (
	"image/color"

	"git.lost.host/meutraa/arcview/internal/game"
	"git.lost.host/meutraa/arcview/internal/visual"
)

type DefaultTheme struct{}

const (
	floorSym = "▬"
	longSym  = "█"
	arcSym   = "●"
	traceSym = "·"
	skySym   = "◆"
)

var (
	noteColors = map[game.NoteType]color.RGBA{
		game.Floor: {238, 130, 238, 255}, // violet
		game.Long:  {255, 255, 255, 255},
		game.Sky:   {173, 216, 230, 255}, // light blue
	}
	arcColors = map[game.ArcColor]color.RGBA{
		game.LightBlue: {0, 191, 255, 255},
		game.Magenta:   {255, 105, 180, 255},
	}
	traceColor = color.RGBA{106, 106, 106, 255}
	barColor   = color.RGBA{80, 80, 80, 255}
	otherColor = color.RGBA{255, 255, 255, 255}
)

func (t *DefaultTheme) NoteSymbol(n *visual.Note) string {
	switch n.Type {
	case game.Floor:
		return floorSym
	case game.Long:
		return longSym
	case game.Arc:
		if n.Arc.IsTrace {
			return traceSym
		}
		return arcSym
	case game.Sky:
		return skySym
	}
	return "?"
}

func (t *DefaultTheme) NoteColor(n *visual.Note) color.RGBA {
	if n.Type == game.Arc {
		if n.Arc.IsTrace {
			return traceColor
		}
		c, ok := arcColors[n.Arc.Color]
		if !ok {
			return otherColor
		}
		return c
	}
	c, ok := noteColors[n.Type]
	if !ok {
		return otherColor
	}
	return c
}

func (t *DefaultTheme) BarLine(first bool) (string, color.RGBA) {
	if first {
		return "═", barColor
	}
	return "─", barColor
}

func (t *DefaultTheme) LaneDivider() string {
	return "│"
}

func (t *DefaultTheme) JudgementLine() string {
	return "━"
}
