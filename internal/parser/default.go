package parser

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"git.lost.host/meutraa/arcview/internal/game"
	"github.com/pkg/errors"
)

const (
	audioOffsetPrefix = "AudioOffset:"
	byteOrderMark     = "\ufeff"
)

var (
	tapRegex    = regexp.MustCompile(`^\(([^)]+)\);$`)
	holdRegex   = regexp.MustCompile(`^hold\(([^)]+)\);$`)
	arcRegex    = regexp.MustCompile(`^arc\(([^)]+)\)(\[([^\]]*)\])?;$`)
	arcTapRegex = regexp.MustCompile(`^arctap\((\d+)\)$`)
	timingRegex = regexp.MustCompile(`^timing\(([^)]+)\);$`)
)

type DefaultParser struct{}

func (p *DefaultParser) ParseFile(path string) (*game.Beatmap, error) {
	f, err := os.Open(path)
	if nil != err {
		return nil, errors.Wrapf(err, "unable to open chart %s", path)
	}
	defer f.Close()
	return p.Parse(f)
}

// ParseString parses chart text held in memory.
func (p *DefaultParser) ParseString(text string) (*game.Beatmap, error) {
	return p.Parse(strings.NewReader(text))
}

func (p *DefaultParser) Parse(r io.Reader) (*game.Beatmap, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	lineNumber := 1
	if !sc.Scan() {
		if err := sc.Err(); nil != err {
			return nil, errors.Wrap(err, "unable to read chart")
		}
		return nil, errors.WithStack(&FormatError{Line: 1, Construct: ConstructAudioOffset})
	}
	// Charts saved on Windows usually start with a byte order mark
	header := strings.TrimSpace(strings.TrimPrefix(sc.Text(), byteOrderMark))
	if !strings.HasPrefix(header, audioOffsetPrefix) {
		return nil, errors.WithStack(&FormatError{Line: 1, Construct: ConstructAudioOffset})
	}
	audioOffset, err := parseInt(1, "audio offset", strings.TrimPrefix(header, audioOffsetPrefix))
	if nil != err {
		return nil, err
	}

	// The separator line, usually "-"
	if sc.Scan() {
		lineNumber++
	}

	notes := []game.Note{}
	for sc.Scan() {
		lineNumber++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		note, err := p.parseLine(lineNumber, line)
		if nil != err {
			return nil, err
		}
		notes = append(notes, note)
	}
	if err := sc.Err(); nil != err {
		return nil, errors.Wrapf(err, "unable to read chart after line %d", lineNumber)
	}

	game.SortNotes(notes)

	return &game.Beatmap{
		AudioOffset: audioOffset,
		Notes:       notes,
	}, nil
}

func (p *DefaultParser) parseLine(n int, line string) (game.Note, error) {
	switch {
	case strings.HasPrefix(line, "hold"):
		return p.parseHold(n, line)
	case strings.HasPrefix(line, "arc"):
		return p.parseArc(n, line)
	case strings.HasPrefix(line, "timing"):
		return p.parseTiming(n, line)
	}
	return p.parseTap(n, line)
}

// content returns the comma separated fields inside the first group of the
// regex, requiring exactly count of them.
func content(re *regexp.Regexp, n int, line, construct string, count int) ([]string, []string, error) {
	match := re.FindStringSubmatch(line)
	if nil == match {
		return nil, nil, errors.WithStack(&FormatError{Line: n, Construct: construct})
	}
	segs := strings.Split(match[1], ",")
	if len(segs) != count {
		return nil, nil, errors.WithStack(&FormatError{Line: n, Construct: construct})
	}
	return segs, match, nil
}

func (p *DefaultParser) parseTap(n int, line string) (game.Note, error) {
	segs, _, err := content(tapRegex, n, line, ConstructTap, 2)
	if nil != err {
		return game.Note{}, err
	}
	var note game.FloorNote
	if note.Tick, err = parseInt(n, "tick", segs[0]); nil != err {
		return game.Note{}, err
	}
	track, err := parseInt(n, "track", segs[1])
	if nil != err {
		return game.Note{}, err
	}
	note.Track = game.Track(track)
	return game.NewFloor(note), nil
}

func (p *DefaultParser) parseHold(n int, line string) (game.Note, error) {
	segs, _, err := content(holdRegex, n, line, ConstructHold, 3)
	if nil != err {
		return game.Note{}, err
	}
	var note game.LongNote
	if note.StartTick, err = parseInt(n, "start tick", segs[0]); nil != err {
		return game.Note{}, err
	}
	if note.EndTick, err = parseInt(n, "end tick", segs[1]); nil != err {
		return game.Note{}, err
	}
	track, err := parseInt(n, "track", segs[2])
	if nil != err {
		return game.Note{}, err
	}
	note.Track = game.Track(track)
	return game.NewLong(note), nil
}

func (p *DefaultParser) parseTiming(n int, line string) (game.Note, error) {
	segs, _, err := content(timingRegex, n, line, ConstructTiming, 3)
	if nil != err {
		return game.Note{}, err
	}
	var note game.TimingNote
	if note.Tick, err = parseInt(n, "tick", segs[0]); nil != err {
		return game.Note{}, err
	}
	if note.Bpm, err = parseFloat(n, "bpm", segs[1]); nil != err {
		return game.Note{}, err
	}
	if note.BeatsPerMeasure, err = parseFloat(n, "beats per measure", segs[2]); nil != err {
		return game.Note{}, err
	}
	return game.NewTiming(note), nil
}

func (p *DefaultParser) parseArc(n int, line string) (game.Note, error) {
	segs, match, err := content(arcRegex, n, line, ConstructArc, 10)
	if nil != err {
		return game.Note{}, err
	}

	var note game.ArcNote

	// arctap clauses come first so a broken clause is reported as such
	if extra := match[3]; strings.TrimSpace(extra) != "" {
		for _, clause := range strings.Split(extra, ",") {
			sub := arcTapRegex.FindStringSubmatch(clause)
			if nil == sub {
				return game.Note{}, errors.WithStack(&FormatError{Line: n, Construct: ConstructArcTap})
			}
			tick, err := parseInt(n, "arctap tick", sub[1])
			if nil != err {
				return game.Note{}, err
			}
			note.SkyNotes = append(note.SkyNotes, game.SkyNote{Tick: tick})
		}
	}

	if note.StartTick, err = parseInt(n, "start tick", segs[0]); nil != err {
		return game.Note{}, err
	}
	if note.EndTick, err = parseInt(n, "end tick", segs[1]); nil != err {
		return game.Note{}, err
	}
	if note.StartX, err = parseFloat(n, "start x", segs[2]); nil != err {
		return game.Note{}, err
	}
	if note.EndX, err = parseFloat(n, "end x", segs[3]); nil != err {
		return game.Note{}, err
	}
	if note.Easing, err = parseEasing(n, segs[4]); nil != err {
		return game.Note{}, err
	}
	if note.StartY, err = parseFloat(n, "start y", segs[5]); nil != err {
		return game.Note{}, err
	}
	if note.EndY, err = parseFloat(n, "end y", segs[6]); nil != err {
		return game.Note{}, err
	}
	color, err := parseInt(n, "color", segs[7])
	if nil != err {
		return game.Note{}, err
	}
	note.Color = game.ArcColor(color)
	note.Unknown = segs[8]
	if note.IsTrace, err = parseBool(n, "trace flag", segs[9]); nil != err {
		return game.Note{}, err
	}
	return game.NewArc(note), nil
}

func parseEasing(n int, token string) (game.Easing, error) {
	easing, ok := game.EasingFromToken(strings.ToLower(strings.TrimSpace(token)))
	if !ok {
		return 0, errors.WithStack(&InvalidEasingTokenError{Line: n, Token: token})
	}
	return easing, nil
}

func parseInt(n int, field, value string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if nil != err {
		return 0, errors.WithStack(&NumberFormatError{Line: n, Field: field, Value: value, Err: err})
	}
	return v, nil
}

func parseFloat(n int, field, value string) (float32, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 32)
	if nil != err {
		return 0, errors.WithStack(&NumberFormatError{Line: n, Field: field, Value: value, Err: err})
	}
	return float32(v), nil
}

func parseBool(n int, field, value string) (bool, error) {
	switch v := strings.TrimSpace(value); {
	case strings.EqualFold(v, "true"):
		return true, nil
	case strings.EqualFold(v, "false"):
		return false, nil
	}
	return false, errors.WithStack(&NumberFormatError{
		Line:  n,
		Field: field,
		Value: value,
		Err:   strconv.ErrSyntax,
	})
}
