package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skybird/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the skybird SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own menu and its own simulation, seeded
independently. Every connection shares the server's score database, so all
players compete on one leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.skybird/host_key

Examples:
  skybird serve                           # Listen on :23234 with auto-generated key
  skybird serve --ssh :2222               # Listen on port 2222
  skybird serve --host-key ./my_host_key  # Use specific host key
  skybird serve --db ./scores.db          # Use specific database
  skybird serve --idle-timeout 5m         # Drop idle players sooner

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Disconnect sessions idle for this long")
}

func runServe(_ *cobra.Command, _ []string) {
	logger, closeLog := mustLogger(false)
	defer closeLog()
	logConfigSource(logger)

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		TickRate:    flagFPS,
		IdleTimeout: flagIdleTimeout,
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting skybird SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
