package theme

import (
	"image/color"

	"git.lost.host/meutraa/arcview/internal/visual"
)

type Theme interface {
	NoteSymbol(n *visual.Note) string
	NoteColor(n *visual.Note) color.RGBA
	BarLine(first bool) (string, color.RGBA)
	LaneDivider() string
	JudgementLine() string
}
