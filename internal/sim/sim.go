// Package sim runs skybird sessions without a terminal.
package sim

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/skybird/internal/config"
	"github.com/vovakirdan/skybird/internal/games/skybird"
)

// Options controls a headless run.
type Options struct {
	Frames int   // Upper bound on ticks
	Every  int   // Snapshot interval in frames, 0 for none
	Idle   bool  // Send no input instead of using the autopilot
	Seed   int64 // Session seed
}

// Report is the outcome of a headless run.
type Report struct {
	Seed      int64              `yaml:"seed"`
	Frames    int                `yaml:"frames"`
	Score     int                `yaml:"score"`
	CoinScore int                `yaml:"coin_score"`
	Ended     bool               `yaml:"ended"`
	Crash     string             `yaml:"crash,omitempty"`
	Snapshots []skybird.Snapshot `yaml:"snapshots,omitempty"`
}

// Run plays one run to a crash or to opts.Frames, whichever comes first.
func Run(cfg config.SkybirdConfig, opts Options) Report {
	s := skybird.NewSession(cfg, opts.Seed)
	s.Start()

	var pilot skybird.Autopilot
	report := Report{Seed: s.RunSeed()}
	for range opts.Frames {
		if !opts.Idle {
			s.Apply(pilot.Decide(s))
		}
		running := s.Tick()

		if opts.Every > 0 && (s.Frame()%opts.Every == 0 || !running) {
			report.Snapshots = append(report.Snapshots, s.Snapshot())
		}
		if !running {
			break
		}
	}

	report.Frames = s.Frame()
	report.Score = s.Score()
	report.CoinScore = s.CoinScore()
	report.Ended = s.IsEnded()
	if report.Ended {
		report.Crash = s.Crash().String()
	}
	return report
}

// WriteText prints one line per snapshot and a summary line.
func WriteText(w io.Writer, r Report) error {
	for _, snap := range r.Snapshots {
		_, err := fmt.Fprintf(w, "frame %5d  score %3d  coins %3d  y %7.2f  v %6.2f  charge %2d  pipes %d  gap %4d  inv %3d  night %t\n",
			snap.Frame, snap.Score, snap.CoinScore, snap.BirdY, snap.BirdVelocity,
			snap.ChargeTime, snap.Pipes, snap.NextGapTop, snap.InvincibleLeft, snap.Night)
		if err != nil {
			return err
		}
	}

	outcome := "survived"
	if r.Ended {
		outcome = "crashed into " + r.Crash
	}
	_, err := fmt.Fprintf(w, "seed %d: %s after %d frames, score %d, coins %d\n",
		r.Seed, outcome, r.Frames, r.Score, r.CoinScore)
	return err
}

// WriteYAML encodes the whole report.
func WriteYAML(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("sim: encode report: %w", err)
	}
	return enc.Close()
}
