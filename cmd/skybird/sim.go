package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skybird/internal/games/skybird"
	"github.com/vovakirdan/skybird/internal/sim"
)

var (
	flagSimFrames int
	flagSimEvery  int
	flagSimIdle   bool
	flagSimFormat string
	flagSimMode   string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run one skybird session without a terminal.

The built-in autopilot flies the bird (or nothing does, with --idle) until
it crashes or --frames is reached. A snapshot is printed every --every
frames, followed by a summary. The same --seed always gives the same run.

Examples:
  skybird sim --seed 42
  skybird sim --frames 10000 --every 600 --difficulty hard
  skybird sim --idle --every 1 --format yaml
  skybird sim --mode skybird_classic`,
	Run: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimFrames, "frames", 3600, "Maximum frames to simulate")
	simCmd.Flags().IntVar(&flagSimEvery, "every", 60, "Snapshot interval in frames (0 = summary only)")
	simCmd.Flags().BoolVar(&flagSimIdle, "idle", false, "Send no input instead of using the autopilot")
	simCmd.Flags().StringVar(&flagSimFormat, "format", "text", "Output format: text or yaml")
	simCmd.Flags().StringVar(&flagSimMode, "mode", "skybird", "Mode: skybird or skybird_classic")
}

func runSim(_ *cobra.Command, _ []string) {
	logger, closeLog := mustLogger(false)
	defer closeLog()

	cfg, source, err := skybird.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	switch flagSimMode {
	case "skybird":
	case "skybird_classic":
		cfg = cfg.Classic()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", flagSimMode)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("simulating", "mode", flagSimMode, "seed", seed, "frames", flagSimFrames, "config", source)

	report := sim.Run(cfg, sim.Options{
		Frames: flagSimFrames,
		Every:  flagSimEvery,
		Idle:   flagSimIdle,
		Seed:   seed,
	})

	switch flagSimFormat {
	case "yaml":
		err = sim.WriteYAML(os.Stdout, report)
	case "text":
		err = sim.WriteText(os.Stdout, report)
	default:
		err = fmt.Errorf("unknown format %q", flagSimFormat)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
