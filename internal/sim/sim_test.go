package sim

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/skybird/internal/config"
)

func TestRunIsDeterministic(t *testing.T) {
	opts := Options{Frames: 2000, Every: 50, Seed: 77}

	a := Run(config.DefaultSkybirdConfig(), opts)
	b := Run(config.DefaultSkybirdConfig(), opts)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced different reports:\n%+v\n%+v", a, b)
	}
	if a.Seed != 77 {
		t.Errorf("first run seed = %d, expected 77", a.Seed)
	}
}

func TestIdleRunHitsGround(t *testing.T) {
	cfg := config.DefaultSkybirdConfig().Classic()
	r := Run(cfg, Options{Frames: 1000, Idle: true, Seed: 1})

	if !r.Ended || r.Crash != "ground" {
		t.Fatalf("expected ground crash, got %+v", r)
	}
	if r.Score != 0 || r.Frames == 0 || r.Frames >= 120 {
		t.Errorf("idle bird should fall before the first pipe: %+v", r)
	}
}

func TestSnapshotInterval(t *testing.T) {
	cfg := config.DefaultSkybirdConfig()
	cfg.Canvas.Height = 100000
	cfg.Hazards.Enabled = false

	r := Run(cfg, Options{Frames: 100, Every: 25, Idle: true, Seed: 1})
	if r.Ended {
		t.Fatalf("run should survive 100 frames on a tall canvas: %+v", r)
	}
	if len(r.Snapshots) != 4 {
		t.Fatalf("expected 4 snapshots, got %d", len(r.Snapshots))
	}
	for i, snap := range r.Snapshots {
		if snap.Frame != (i+1)*25 {
			t.Errorf("snapshot %d at frame %d", i, snap.Frame)
		}
	}
}

func TestFinalSnapshotOnCrash(t *testing.T) {
	r := Run(config.DefaultSkybirdConfig().Classic(), Options{Frames: 1000, Every: 1000, Idle: true, Seed: 1})
	if len(r.Snapshots) != 1 || r.Snapshots[0].Crash != "ground" {
		t.Errorf("crash frame should always be captured: %+v", r.Snapshots)
	}
}

func TestSurvivingRunKeepsScore(t *testing.T) {
	cfg := config.DefaultSkybirdConfig().Classic()
	r := Run(cfg, Options{Frames: 2000, Every: 1, Seed: 2})

	last := r.Snapshots[len(r.Snapshots)-1]
	if r.Score != last.Score {
		t.Errorf("report score %d, last frame had %d", r.Score, last.Score)
	}
	if !r.Ended && r.Score == 0 {
		t.Errorf("autopilot survived %d frames without scoring: %+v", r.Frames, last)
	}
}

func TestWriters(t *testing.T) {
	r := Run(config.DefaultSkybirdConfig().Classic(), Options{Frames: 1000, Every: 10, Idle: true, Seed: 3})

	var text bytes.Buffer
	if err := WriteText(&text, r); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(text.String()), "\n")
	if len(lines) != len(r.Snapshots)+1 {
		t.Errorf("text output has %d lines, expected %d", len(lines), len(r.Snapshots)+1)
	}
	if !strings.Contains(lines[len(lines)-1], "crashed into ground") {
		t.Errorf("summary line: %q", lines[len(lines)-1])
	}

	var out bytes.Buffer
	if err := WriteYAML(&out, r); err != nil {
		t.Fatal(err)
	}
	var decoded Report
	if err := yaml.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Frames != r.Frames || len(decoded.Snapshots) != len(r.Snapshots) {
		t.Errorf("yaml output lost data: %+v", decoded)
	}
}
