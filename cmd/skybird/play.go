package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skybird/internal/platform/tui"
	"github.com/vovakirdan/skybird/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (default: skybird).

Controls:
  Space        - Start charging, press again to release the flap
  Mouse left   - Hold to charge, release to flap
  Up/W         - Quick tap flap
  Enter        - Start
  P/Esc        - Pause
  R            - Restart (after game over)
  B            - Back (when idle, paused or over)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Wider gaps, slower scrolling, fewer hazards
  normal - Default settings
  hard   - Narrower gaps, faster scrolling, more hazards

Examples:
  skybird play
  skybird play skybird_classic
  skybird play --difficulty hard --sound
  skybird play --config ./my-skybird.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "skybird"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'skybird list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := mustLogger(true)
	defer closeLog()
	logConfigSource(logger)

	store := openStore(logger)
	player := openPlayer(logger)

	_, runErr := tui.Run(game, store, runtimeConfig(),
		tui.WithLogger(logger),
		tui.WithPlayer(player),
	)

	player.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
