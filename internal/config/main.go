package config

import (
	"fmt"
	"io/ioutil"

	"git.lost.host/meutraa/arcview/internal/game"
	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/yaml.v3"
)

var (
	ChartFile   = kingpin.Arg("chart", "Chart (.aff) file").Required().ExistingFile()
	AudioFile   = kingpin.Flag("audio", "Song audio (.ogg/.mp3), the wall clock is used without it").Short('a').ExistingFile()
	MetricsFile = kingpin.Flag("metrics", "YAML file overriding the stage metrics").Short('m').ExistingFile()
	Library     = kingpin.Flag("library", "Chart library database").Default("./charts.db").String()
	Offset      = kingpin.Flag("offset", "Global offset").Default("0ms").Short('o').Duration()
	Delay       = kingpin.Flag("delay", "Start delay").Default("1.5s").Short('d').Duration()
	FramePeriod = kingpin.Flag("frame-period", "Render frame period").Default("16ms").Short('p').Duration()
	speed       = kingpin.Flag("speed", "Note speed, 0 keeps the metrics value").Default("0").Short('s').Float64()
	past        = kingpin.Flag("past", "Past tick threshold in ms, -1 keeps the metrics value").Default("-1").Int()
	future      = kingpin.Flag("future", "Future tick threshold in ms, -1 keeps the metrics value").Default("-1").Int()
	Metrics     game.StageMetrics
)

// Overrides are the metrics set on the command line. Zero speed and negative
// thresholds are left alone.
type Overrides struct {
	Speed  float32
	Past   int
	Future int
}

// Parse reads the command line and resolves the stage metrics.
func Parse(args []string) error {
	kingpin.Version("0.1.0")
	if _, err := kingpin.CommandLine.Parse(args); nil != err {
		return err
	}

	m, err := ResolveMetrics(*MetricsFile, Overrides{
		Speed:  float32(*speed),
		Past:   *past,
		Future: *future,
	})
	if nil != err {
		return err
	}
	Metrics = m
	return nil
}

// LoadMetrics reads a YAML file on top of the default metrics, so the file
// only needs the fields it changes.
func LoadMetrics(path string) (game.StageMetrics, error) {
	m := game.DefaultStageMetrics()
	data, err := ioutil.ReadFile(path)
	if nil != err {
		return m, fmt.Errorf("unable to read metrics: %w", err)
	}
	if err := yaml.Unmarshal(data, &m); nil != err {
		return m, fmt.Errorf("unable to decode metrics %s: %w", path, err)
	}
	return m, nil
}

func ResolveMetrics(path string, o Overrides) (game.StageMetrics, error) {
	m := game.DefaultStageMetrics()
	if path != "" {
		var err error
		if m, err = LoadMetrics(path); nil != err {
			return m, err
		}
	}
	if o.Speed > 0 {
		m.Speed = o.Speed
	}
	if o.Past >= 0 {
		m.PastTickThreshold = o.Past
	}
	if o.Future >= 0 {
		m.FutureTickThreshold = o.Future
	}
	if err := m.Validate(); nil != err {
		return m, err
	}
	return m, nil
}
