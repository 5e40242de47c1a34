package config

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"git.lost.host/meutraa/arcview/internal/game"
)

func writeMetrics(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "metrics.yaml")
	if err := ioutil.WriteFile(path, []byte(content), 0644); nil != err {
		t.Fatal(err)
	}
	return path
}

func TestLoadMetricsKeepsDefaults(t *testing.T) {
	path := writeMetrics(t, "speed: 7.5\nfuture_tick_threshold: 6000\n")
	m, err := LoadMetrics(path)
	if nil != err {
		t.Fatal(err)
	}
	defaults := game.DefaultStageMetrics()
	if m.Speed != 7.5 || m.FutureTickThreshold != 6000 {
		t.Errorf("file values not applied: %+v", m)
	}
	if m.TrackLength != defaults.TrackLength || m.FloorNoteHeight != defaults.FloorNoteHeight {
		t.Errorf("defaults lost: %+v", m)
	}
}

func TestResolveMetricsOverrides(t *testing.T) {
	path := writeMetrics(t, "speed: 7.5\npast_tick_threshold: 50\n")
	m, err := ResolveMetrics(path, Overrides{Speed: 3, Past: -1, Future: 1000})
	if nil != err {
		t.Fatal(err)
	}
	if m.Speed != 3 || m.PastTickThreshold != 50 || m.FutureTickThreshold != 1000 {
		t.Errorf("unexpected metrics %+v", m)
	}
}

func TestResolveMetricsRejectsInvalid(t *testing.T) {
	for _, content := range []string{
		"track_length: 0\n",
		"track_inner_width: -20\n",
		"speed: .nan\n",
		"speed: [1, 2]\n",
	} {
		if _, err := ResolveMetrics(writeMetrics(t, content), Overrides{Past: -1, Future: -1}); nil == err {
			t.Errorf("%q should be rejected", content)
		}
	}
}

func TestResolveMetricsWithoutFile(t *testing.T) {
	m, err := ResolveMetrics("", Overrides{Past: -1, Future: -1})
	if nil != err {
		t.Fatal(err)
	}
	if m != game.DefaultStageMetrics() {
		t.Errorf("expected the default metrics, got %+v", m)
	}
}
