// Package skybird implements a charge-flap arcade game.
// The bird charges its flap while input is held and releases a stronger
// impulse the longer it charged, threading gaps between scrolling pipes,
// collecting coins and power-ups and dodging hazards.
package skybird

import (
	"fmt"

	"github.com/vovakirdan/skybird/internal/config"
	"github.com/vovakirdan/skybird/internal/core"
	"github.com/vovakirdan/skybird/internal/registry"
)

// Mode selects which features a game instance carries.
type Mode int

const (
	ModeFull    Mode = iota // Pipes plus power-ups, coins, hazards and day/night
	ModeClassic             // Bird and pipes only
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset = config.DifficultyNormal

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
// Unknown names fall back to normal; the CLI validates them first.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = config.DifficultyNormal
	}
	difficultyPreset = p
}

// LoadConfig loads the configuration selected through SetConfigPath and
// SetDifficultyPreset, reporting where it was read from.
func LoadConfig() (config.SkybirdConfig, string, error) {
	cfg, source, err := config.LoadSkybird(configPath)
	if err != nil {
		return cfg, source, err
	}
	if err := config.ApplySkybirdPreset(&cfg, difficultyPreset); err != nil {
		return cfg, source, fmt.Errorf("skybird: preset %s: %w", difficultyPreset, err)
	}
	return cfg, source, nil
}

// Game adapts a Session to the platform's game interface.
// It adds pause handling and draws overlays on top of the playfield.
type Game struct {
	mode    Mode
	session *Session
	paused  bool
	runtime core.RuntimeConfig
	cfg     config.SkybirdConfig
}

// New creates a game with every feature enabled.
func New() *Game {
	return &Game{mode: ModeFull}
}

// NewClassic creates a game with only the bird and the pipes.
func NewClassic() *Game {
	return &Game{mode: ModeClassic}
}

// NewWithConfig creates a game around an explicit configuration,
// bypassing the file lookup.
func NewWithConfig(cfg config.SkybirdConfig) *Game {
	return &Game{mode: ModeFull, cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeClassic {
		return "skybird_classic"
	}
	return "skybird"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Skybird (Classic)"
	}
	return "Skybird"
}

// Reset builds a fresh idle session.
// A broken config file falls back to the defaults; the CLI reports the error
// before a game is ever created.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg := g.cfg
	if cfg.Canvas.Width == 0 {
		loaded, _, err := LoadConfig()
		if err != nil {
			loaded = config.DefaultSkybirdConfig()
		}
		cfg = loaded
	}
	if g.mode == ModeClassic {
		cfg = cfg.Classic()
	}

	g.session = NewSession(cfg, runtime.Seed)
	g.paused = false
}

// Session exposes the underlying simulation.
func (g *Game) Session() *Session {
	return g.session
}

// Step applies input and advances one tick when a run is in progress.
// The frame that starts or unpauses a run does not tick, so the host can
// resume its fixed-step schedule from there.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	s := g.session
	wasTicking := s.IsRunning() && !g.paused

	if in.Has(core.ActionPause) && s.IsRunning() {
		g.paused = !g.paused
	}

	events := make([]core.Event, 0, 2)
	if !g.paused {
		before := s.Runs()
		s.Apply(in)
		if s.Runs() != before {
			events = append(events, core.EventStart)
		}
	}

	if wasTicking && !g.paused && s.IsRunning() {
		s.Tick()
		events = append(events, s.Events()...)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// Charging reports whether the bird is charging a flap.
// The terminal host uses it to turn a repeated key into press and release.
func (g *Game) Charging() bool {
	return g.session.Charging()
}

// RunStats reports the details the score store keeps for a run.
func (g *Game) RunStats() (coins, frames int, seed int64) {
	s := g.session
	return s.CoinScore(), s.Frame(), s.RunSeed()
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	s := g.session
	s.Draw(dst)

	switch {
	case s.Phase() == PhaseIdle:
		g.drawCenteredMessage(dst, g.Title(), "Space/Enter to start  |  hold Space to charge")
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case s.IsEnded():
		sub := fmt.Sprintf("Score: %d  |  Press R to restart", s.FinalScore())
		if s.CoinScore() > 0 {
			sub = fmt.Sprintf("Score: %d (coins %d)  |  Press R to restart", s.FinalScore(), s.CoinScore())
		}
		g.drawCenteredMessage(dst, "GAME OVER", sub)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := len([]rune(title))
	subLen := len([]rune(subtitle))
	boxW := max(titleLen, subLen) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-titleLen)/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-subLen)/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.session
	score := s.Score()
	if s.IsEnded() {
		score = s.FinalScore()
	}
	return core.GameState{
		Score:    score,
		Started:  s.Phase() != PhaseIdle,
		Running:  s.IsRunning(),
		GameOver: s.IsEnded(),
		Paused:   g.paused,
	}
}

// Register both modes with the registry
func init() {
	registry.Register("skybird", func() registry.Game {
		return New()
	})
	registry.Register("skybird_classic", func() registry.Game {
		return NewClassic()
	})
}
