package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skybird/internal/audio"
	"github.com/vovakirdan/skybird/internal/core"
	"github.com/vovakirdan/skybird/internal/registry"
	"github.com/vovakirdan/skybird/internal/storage"
)

// charger is implemented by games that charge an action while input is held.
type charger interface {
	Charging() bool
}

// runStats is implemented by games that report run details for the score store.
type runStats interface {
	RunStats() (coins, frames int, seed int64)
}

// Option customizes a Model.
type Option func(*Model)

// WithPlayer plays sound cues for game events.
func WithPlayer(p *audio.Player) Option {
	return func(m *Model) { m.player = p }
}

// WithLogger sets the logger for run and error reporting.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithScreenshotDir overrides where Ctrl+S writes screen captures.
func WithScreenshotDir(dir string) Option {
	return func(m *Model) { m.screenshotDir = dir }
}

// WithPalette renders with styles bound to a specific terminal.
func WithPalette(p Palette) Option {
	return func(m *Model) { m.palette = p }
}

// embedded keeps the model from quitting the program on back-to-menu.
func embedded() Option {
	return func(m *Model) { m.embedded = true }
}

// Model is the Bubble Tea model for running a game.
// Ticks are only scheduled while a run is in progress and not paused.
type Model struct {
	game          registry.Game
	screen        *core.Screen
	store         *storage.Store
	player        *audio.Player
	logger        *log.Logger
	keys          *KeyMapper
	palette       Palette
	config        core.RuntimeConfig
	inputFrame    core.InputFrame
	gameState     core.GameState
	screenshotDir string
	ticking       bool
	quitting      bool
	backToMenu    bool
	embedded      bool
	scoreSaved    bool // Whether the current run has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     log.New(io.Discard),
		keys:       NewKeyMapper(),
		palette:    defaultPalette,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init resets the game. Nothing ticks until the player starts a run.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if action := m.keys.MapMouse(msg); action != core.ActionNone {
			m.inputFrame.Set(action)
			return m.pump()
		}

	case tea.WindowSizeMsg:
		// The playfield scales to the screen, so a resize keeps the run going.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		}
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg, m.charging())
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionBack:
		// Leaving mid-run would lose the run, so only idle, paused or ended games go back.
		if m.gameState.Running && !m.gameState.Paused {
			return m, nil
		}
		m.backToMenu = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit
	}

	m.inputFrame.Set(action)
	return m.pump()
}

// pump applies latched input right away when the loop is stopped.
// While ticking, input waits for the next tick.
func (m Model) pump() (tea.Model, tea.Cmd) {
	if m.ticking {
		return m, nil
	}
	m.step()
	return m, m.schedule()
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.ticking {
		// Stale tick from before a pause or game over
		return m, nil
	}
	m.ticking = false
	m.step()
	return m, m.schedule()
}

// schedule starts or continues the tick loop when the game wants frames.
func (m *Model) schedule() tea.Cmd {
	if !m.gameState.Running || m.gameState.Paused {
		return nil
	}
	m.ticking = true
	return tickCmd(m.config.TickRate)
}

// step runs one game step with the latched input.
func (m *Model) step() {
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.gameState = result.State

	m.player.PlayEvents(result.Events)
	for _, e := range result.Events {
		if e == core.EventStart {
			m.scoreSaved = false
			rec := m.runRecord()
			m.logger.Info("run started", "mode", rec.Mode, "seed", rec.Seed)
		}
	}

	// Record the run once when it ends
	if m.gameState.GameOver && !m.scoreSaved {
		m.scoreSaved = true
		m.saveRun()
	}
}

// runRecord describes the current run for logging and storage.
func (m *Model) runRecord() storage.RunRecord {
	rec := storage.RunRecord{
		Mode:  m.game.ID(),
		Score: m.gameState.Score,
	}
	if rs, ok := m.game.(runStats); ok {
		rec.CoinScore, rec.Frames, rec.Seed = rs.RunStats()
	}
	return rec
}

// saveRun logs and stores the finished run. Zero scores are not stored.
func (m *Model) saveRun() {
	rec := m.runRecord()
	m.logger.Info("run ended",
		"mode", rec.Mode,
		"seed", rec.Seed,
		"score", rec.Score,
		"coins", rec.CoinScore,
		"frames", rec.Frames,
	)

	if m.store == nil || rec.Score <= 0 {
		return
	}
	if _, err := m.store.SaveRun(rec); err != nil {
		m.logger.Warn("could not save run", "err", err)
	}
}

// charging reports whether Space should release rather than start a charge,
// counting input that is latched but not yet applied.
func (m Model) charging() bool {
	switch {
	case m.inputFrame.Has(core.ActionChargeRelease) && m.inputFrame.Has(core.ActionChargeStart):
		return true
	case m.inputFrame.Has(core.ActionChargeRelease):
		return false
	case m.inputFrame.Has(core.ActionChargeStart):
		return true
	}
	if c, ok := m.game.(charger); ok {
		return c.Charging()
	}
	return false
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() error {
	m.game.Render(m.screen)

	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		dir = filepath.Join(home, ".skybird", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return err
	}
	m.logger.Info("screenshot saved", "path", path)
	return nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.palette.Render(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Ticking reports whether the tick loop is running.
func (m Model) Ticking() bool {
	return m.ticking
}

// Run starts the Bubble Tea program with the given model.
// It reports whether the player asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) (backToMenu bool, err error) {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Left button holds a charge
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.BackToMenu(), nil
	}
	return false, nil
}
