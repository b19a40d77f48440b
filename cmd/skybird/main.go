// skybird is a charge-flap arcade game for the terminal.
//
// Usage:
//
//	skybird list              - List available modes
//	skybird play [mode]       - Play a mode (default: skybird)
//	skybird menu              - Start menu to pick modes interactively
//	skybird scores [mode]     - Show high scores
//	skybird serve             - Start SSH server for remote play
//	skybird sim               - Run a headless simulation
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.skybird/scores.db)
//	--config <path>       - Load game settings from a YAML file
//	--difficulty <preset> - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Log file for interactive commands
//	--sound               - Play sound cues through the system audio player
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skybird/internal/config"
	"github.com/vovakirdan/skybird/internal/games/skybird"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
	flagSound      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skybird",
	Short: "Skybird - a charge-flap arcade game for your terminal",
	Long: `Skybird is a side-scrolling arcade game. Hold to charge a flap, release
to fly: the longer the charge, the stronger the lift. Thread the pipes,
grab coins and power-ups, and dodge spikes and comets.

Available commands:
  list     - Show all modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  scores   - View high scores
  serve    - Start SSH server for remote play
  sim      - Run a headless simulation

Examples:
  skybird play
  skybird play skybird_classic --difficulty hard
  skybird menu --sound
  skybird serve --ssh :2222
  skybird sim --frames 5000 --every 300 --seed 42`,
	SilenceUsage:      true,
	PersistentPreRunE: applyGameFlags,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skybird/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.skybird/skybird.log", "Log file for interactive commands")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Play sound cues")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}

// applyGameFlags validates the game flags and hands them to the game package
// before any command creates a game.
func applyGameFlags(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 || flagFPS > 240 {
		return fmt.Errorf("--fps must be between 1 and 240, got %d", flagFPS)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}

	skybird.SetConfigPath(flagConfig)
	skybird.SetDifficultyPreset(flagDifficulty)

	// Surface a broken config now rather than silently falling back later
	if _, _, err := skybird.LoadConfig(); err != nil {
		return err
	}
	return nil
}
