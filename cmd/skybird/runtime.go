package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/skybird/internal/audio"
	"github.com/vovakirdan/skybird/internal/core"
	"github.com/vovakirdan/skybird/internal/games/skybird"
	"github.com/vovakirdan/skybird/internal/storage"
)

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// newLogger builds the process logger. Interactive commands log to
// --log-file so output does not tear the alt screen; the rest use stderr.
// The returned func closes the log file.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	if interactive {
		w = io.Discard
		if flagLogFile != "" {
			path, err := expandHome(flagLogFile)
			if err != nil {
				return nil, nil, err
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
			}
			f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				return nil, nil, fmt.Errorf("cannot open log file: %w", err)
			}
			w = f
			closeFn = func() { f.Close() }
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "skybird",
		Level:           level,
	})
	return logger, closeFn, nil
}

// mustLogger is newLogger for commands that exit on setup errors.
func mustLogger(interactive bool) (*log.Logger, func()) {
	logger, closeFn, err := newLogger(interactive)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger, closeFn
}

// openStore opens the score database, or returns nil and warns.
// The game runs without persistence in that case.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// openPlayer starts audio when --sound is set. A nil player is silent.
func openPlayer(logger *log.Logger) *audio.Player {
	if !flagSound {
		return nil
	}
	player, err := audio.NewPlayer(0.6, logger)
	if err != nil {
		if errors.Is(err, audio.ErrNoAudioBackend) {
			logger.Warn("sound requested but no audio player found (pacat, pw-cat, aplay)")
		} else {
			logger.Warn("could not start audio", "err", err)
		}
		return nil
	}
	logger.Info("audio enabled", "backend", player.Backend())
	return player
}

// logConfigSource records where the game settings come from.
func logConfigSource(logger *log.Logger) {
	if _, source, err := skybird.LoadConfig(); err == nil {
		logger.Info("config loaded", "source", source, "difficulty", flagDifficulty)
	}
}

// runtimeConfig builds the runtime settings from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
