package parser

import (
	"io"

	"git.lost.host/meutraa/arcview/internal/game"
)

type Parser interface {
	// Parse reads a whole chart. The first error aborts the parse.
	Parse(r io.Reader) (*game.Beatmap, error)
	ParseFile(path string) (*game.Beatmap, error)
}

// TryParse is the best-effort form of Parse, for callers that fall back to
// having no beatmap loaded.
func TryParse(p Parser, r io.Reader) (*game.Beatmap, bool) {
	beatmap, err := p.Parse(r)
	if nil != err {
		return nil, false
	}
	return beatmap, true
}
