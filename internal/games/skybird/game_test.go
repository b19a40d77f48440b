package skybird

import (
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/skybird/internal/config"
	"github.com/vovakirdan/skybird/internal/core"
	"github.com/vovakirdan/skybird/internal/registry"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := NewWithConfig(config.DefaultSkybirdConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 99})
	return g
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameStartsIdle(t *testing.T) {
	g := newTestGame(t)

	st := g.State()
	if st.Started || st.Running || st.GameOver {
		t.Errorf("new game should be idle, got %+v", st)
	}

	// Empty input does nothing while idle
	res := g.Step(core.NewInputFrame())
	if res.State.Running || g.Session().Frame() != 0 {
		t.Error("idle game should not tick")
	}
}

func TestGameConfirmStartsWithoutTicking(t *testing.T) {
	g := newTestGame(t)

	res := g.Step(input(core.ActionConfirm))
	if !res.State.Started || !res.State.Running {
		t.Fatalf("Confirm should start a run, got %+v", res.State)
	}
	if !slices.Contains(res.Events, core.EventStart) {
		t.Errorf("expected start event, got %v", res.Events)
	}
	if g.Session().Frame() != 0 {
		t.Errorf("start frame should not tick, frame = %d", g.Session().Frame())
	}

	g.Step(core.NewInputFrame())
	if g.Session().Frame() != 1 {
		t.Errorf("frame = %d, expected 1", g.Session().Frame())
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t)
	g.Step(input(core.ActionConfirm))
	g.Step(core.NewInputFrame())

	res := g.Step(input(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}
	frame := g.Session().Frame()

	g.Step(input(core.ActionChargeStart))
	g.Step(core.NewInputFrame())
	if g.Session().Frame() != frame {
		t.Error("paused game should not tick")
	}
	if g.Charging() {
		t.Error("charge input should be ignored while paused")
	}

	res = g.Step(input(core.ActionPause))
	if res.State.Paused || !res.State.Running {
		t.Errorf("expected running after unpause, got %+v", res.State)
	}
}

func TestGameChargeToggle(t *testing.T) {
	g := newTestGame(t)
	g.Step(input(core.ActionConfirm))

	g.Step(input(core.ActionChargeStart))
	if !g.Charging() {
		t.Fatal("expected charging after ChargeStart")
	}
	for range 5 {
		g.Step(core.NewInputFrame())
	}

	res := g.Step(input(core.ActionChargeRelease))
	if !slices.Contains(res.Events, core.EventFlap) {
		t.Errorf("expected flap event, got %v", res.Events)
	}
	if g.Charging() {
		t.Error("release should stop charging")
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := newTestGame(t)
	g.Step(input(core.ActionConfirm))

	var res core.StepResult
	for range 1000 {
		res = g.Step(core.NewInputFrame())
		if res.State.GameOver {
			break
		}
	}
	if !res.State.GameOver || res.State.Running {
		t.Fatalf("expected game over, got %+v", res.State)
	}
	if !slices.Contains(res.Events, core.EventCrash) {
		t.Errorf("expected crash event, got %v", res.Events)
	}

	res = g.Step(input(core.ActionRestart))
	if res.State.GameOver || !res.State.Running || res.State.Score != 0 {
		t.Errorf("restart should begin a clean run, got %+v", res.State)
	}
}

func TestClassicModeDisablesFeatures(t *testing.T) {
	g := NewClassic()
	g.cfg = config.DefaultSkybirdConfig()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})

	cfg := g.Session().Config()
	if cfg.Coins.Enabled || cfg.PowerUps.Enabled || cfg.Hazards.Enabled || cfg.World.DayNight {
		t.Errorf("classic mode should disable extras: %+v", cfg)
	}
	if g.ID() != "skybird_classic" {
		t.Errorf("ID = %q", g.ID())
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "Skybird") {
		t.Error("idle screen should show the title")
	}

	g.Step(input(core.ActionConfirm))
	g.Step(input(core.ActionChargeStart))
	g.Step(core.NewInputFrame())
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD missing score: %q", screen.Row(0))
	}
	if !strings.ContainsRune(out, BirdChar) {
		t.Error("bird not drawn")
	}
	if !strings.ContainsRune(out, ChargeChar) {
		t.Error("charge bar not drawn while charging")
	}
	if !strings.ContainsRune(screen.Row(23), GroundChar) {
		t.Error("ground not drawn on the last row")
	}

	// Bird sits at canvas (100, ~300): column 10, row 1 + 300*22/600 = 12.
	if cell := screen.GetCell(10, 12); cell.Rune != BirdChar {
		t.Errorf("expected bird at (10, 12), got %q", cell.Rune)
	}
}

func TestViewportMapping(t *testing.T) {
	v := NewViewport(800, 600, 80, 24)

	if v.Col(0) != 0 || v.Col(799) != 79 {
		t.Errorf("columns: %d %d", v.Col(0), v.Col(799))
	}
	if v.Row(0) != 1 || v.Row(599) != 22 {
		t.Errorf("rows: %d %d", v.Row(0), v.Row(599))
	}
	if v.GroundRow() != 23 {
		t.Errorf("ground row = %d", v.GroundRow())
	}
	if v.Span(60) != 6 || v.Span(1) != 1 {
		t.Errorf("spans: %d %d", v.Span(60), v.Span(1))
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"skybird", "skybird_classic"} {
		if !registry.Exists(id) {
			t.Errorf("%s not registered", id)
		}
	}
}

func TestSetDifficultyPreset(t *testing.T) {
	defer SetDifficultyPreset("normal")

	SetDifficultyPreset("hard")
	if difficultyPreset != config.DifficultyHard {
		t.Errorf("preset = %q", difficultyPreset)
	}
	SetDifficultyPreset("bogus")
	if difficultyPreset != config.DifficultyNormal {
		t.Errorf("unknown preset should fall back to normal, got %q", difficultyPreset)
	}
}
