package skybird

import (
	"slices"
	"testing"

	"github.com/vovakirdan/skybird/internal/config"
	"github.com/vovakirdan/skybird/internal/core"
)

// tallConfig gives the bird room to fall for hundreds of frames without
// touching the ground, and removes hazards so nothing else can end the run.
func tallConfig() config.SkybirdConfig {
	cfg := config.DefaultSkybirdConfig()
	cfg.Canvas.Height = 4000
	cfg.Hazards.Enabled = false
	return cfg
}

func TestIdleSessionDoesNotTick(t *testing.T) {
	s := NewSession(config.DefaultSkybirdConfig(), 1)

	if s.Tick() {
		t.Error("idle session should not ask for another frame")
	}
	if s.Frame() != 0 || s.Phase() != PhaseIdle {
		t.Errorf("idle tick changed state: frame %d phase %v", s.Frame(), s.Phase())
	}
	if s.FinalScore() != 0 {
		t.Errorf("FinalScore before any run = %d", s.FinalScore())
	}
}

func TestNoInputFor120Frames(t *testing.T) {
	s := NewSession(tallConfig(), 5)
	s.RequestStart()

	prevY := s.bird.Y
	for frame := 1; frame <= 120; frame++ {
		if !s.Tick() {
			t.Fatalf("run ended at frame %d", frame)
		}
		if s.bird.Y <= prevY {
			t.Fatalf("frame %d: bird y %v did not increase from %v", frame, s.bird.Y, prevY)
		}
		prevY = s.bird.Y

		if frame < 120 && s.pipes.Len() != 0 {
			t.Fatalf("pipe spawned early at frame %d", frame)
		}
	}

	if s.pipes.Len() != 1 {
		t.Fatalf("expected one pipe at frame 120, got %d", s.pipes.Len())
	}
	if x := s.pipes.Pipes()[0].X; x != 800 {
		t.Errorf("new pipe at x=%v, expected the right edge", x)
	}
}

func TestInvincibilityLasts300Frames(t *testing.T) {
	cfg := tallConfig()
	cfg.PowerUps.Enabled = false
	s := NewSession(cfg, 5)
	s.Start()
	s.activatePowerUp(PowerUpInvincible)

	for frame := 1; frame < 300; frame++ {
		s.Tick()
		if !s.Invincible() || !s.bird.Invincible || !s.bird.Flashing {
			t.Fatalf("frame %d: invincibility cleared early", frame)
		}
	}

	s.Tick()
	if s.Invincible() || s.bird.Invincible {
		t.Error("invincibility should clear on frame 300")
	}
	if s.bird.Flashing {
		t.Error("flash should clear with invincibility")
	}
	if !s.IsRunning() {
		t.Errorf("run ended unexpectedly: %v", s.Crash())
	}
}

func TestInvincibilityIgnoresGround(t *testing.T) {
	cfg := config.DefaultSkybirdConfig()
	cfg.PowerUps.Enabled = false
	cfg.Hazards.Enabled = false
	s := NewSession(cfg, 5)
	s.Start()
	s.activatePowerUp(PowerUpInvincible)

	for frame := 1; frame < 300; frame++ {
		if !s.Tick() {
			t.Fatalf("frame %d: invincible bird crashed", frame)
		}
	}
	if s.bird.Circle().Bottom() <= 600 {
		t.Fatal("bird should have fallen through the ground by now")
	}

	// The window closes on frame 300 and the ground check applies again.
	if s.Tick() {
		t.Error("expected ground crash once invincibility expired")
	}
	if s.Crash() != CrashGround {
		t.Errorf("crash = %v, expected ground", s.Crash())
	}
}

func TestGroundEndsRunAndRestartResets(t *testing.T) {
	cfg := config.DefaultSkybirdConfig().Classic()
	s := NewSession(cfg, 11)
	s.RequestStart()

	for range 1000 {
		if !s.Tick() {
			break
		}
	}
	if !s.IsEnded() || s.Crash() != CrashGround {
		t.Fatalf("expected ground crash, phase %v crash %v", s.Phase(), s.Crash())
	}
	if s.FinalScore() != s.Score() {
		t.Errorf("FinalScore %d != Score %d", s.FinalScore(), s.Score())
	}
	if !slices.Contains(s.Events(), core.EventCrash) {
		t.Errorf("crash tick should raise a crash event, got %v", s.Events())
	}
	if s.Tick() {
		t.Error("ended session should not tick")
	}

	if !s.RequestStart() {
		t.Fatal("restart from ended should succeed")
	}
	if s.Frame() != 0 || s.Score() != 0 || s.CoinScore() != 0 || s.pipes.Len() != 0 {
		t.Errorf("restart left state behind: %+v", s.Snapshot())
	}
	if s.bird.Y != cfg.Bird.StartY || s.bird.Velocity != 0 {
		t.Errorf("bird not reset: y %v v %v", s.bird.Y, s.bird.Velocity)
	}
	if s.Night() || s.Invincible() || s.Crash() != CrashNone {
		t.Error("restart should clear night, invincibility and crash cause")
	}
	if s.RunSeed() != 12 {
		t.Errorf("second run seed = %d, expected 12", s.RunSeed())
	}
}

func TestRequestStartWhileRunningIsNoop(t *testing.T) {
	s := NewSession(config.DefaultSkybirdConfig(), 1)
	s.RequestStart()
	s.Tick()

	if s.RequestStart() {
		t.Error("RequestStart during a run should be refused")
	}
	if s.Frame() != 1 {
		t.Errorf("frame = %d, run should not have restarted", s.Frame())
	}
}

func TestPressStartFromIdleStartsRun(t *testing.T) {
	s := NewSession(config.DefaultSkybirdConfig(), 1)
	s.PressStart()

	if !s.IsRunning() {
		t.Fatal("press while idle should start the run")
	}
	if s.Charging() {
		t.Error("the starting press should not also charge")
	}
}

func TestLatchedCharge(t *testing.T) {
	s := NewSession(tallConfig(), 1)
	s.Start()

	s.PressStart()
	if !s.Charging() {
		t.Error("latched press should report charging")
	}
	s.Tick()
	// StartCharge then one frame of ContinueCharge
	if s.bird.ChargeTime != 2 {
		t.Errorf("ChargeTime = %d, expected 2", s.bird.ChargeTime)
	}

	for range 30 {
		s.Tick()
	}
	s.PressEnd()
	s.Tick()

	if !slices.Contains(s.Events(), core.EventFlap) {
		t.Errorf("release should raise a flap event, got %v", s.Events())
	}
	if s.bird.ChargeTime != 0 {
		t.Errorf("ChargeTime = %d after release", s.bird.ChargeTime)
	}
	want := (s.cfg.Bird.MaxLift + s.cfg.Bird.Gravity) * s.cfg.Bird.Damping
	if !almostEqual(s.bird.Velocity, want) {
		t.Errorf("velocity = %v, expected full charge %v", s.bird.Velocity, want)
	}
}

func TestTapFlapsInOneFrame(t *testing.T) {
	s := NewSession(tallConfig(), 1)
	s.Start()

	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	s.Apply(in)
	s.Tick()

	want := (s.bird.Impulse(1) + s.cfg.Bird.Gravity) * s.cfg.Bird.Damping
	if !almostEqual(s.bird.Velocity, want) {
		t.Errorf("velocity = %v, expected tap impulse %v", s.bird.Velocity, want)
	}
	if s.bird.Charging() {
		t.Error("tap should not leave the bird charging")
	}
}

func TestReleaseThenPressInOneTick(t *testing.T) {
	s := NewSession(tallConfig(), 1)
	s.Start()
	s.PressStart()
	for range 10 {
		s.Tick()
	}

	s.PressEnd()
	s.PressStart()
	if !s.Charging() {
		t.Error("a press after the release should still report charging")
	}
	s.Tick()
	if !slices.Contains(s.Events(), core.EventFlap) {
		t.Errorf("the release should flap, got %v", s.Events())
	}
	if !s.bird.Charging() {
		t.Fatal("the new press was lost")
	}

	s.PressEnd()
	s.Tick()
	if !slices.Contains(s.Events(), core.EventFlap) {
		t.Errorf("releasing the second hold should flap, got %v", s.Events())
	}
	if s.bird.Charging() {
		t.Error("bird still charging after the second release")
	}
}

func TestApplyReleaseAndPressWhileCharging(t *testing.T) {
	s := NewSession(tallConfig(), 1)
	s.Start()
	s.PressStart()
	s.Tick()

	in := core.NewInputFrame()
	in.Set(core.ActionChargeStart)
	in.Set(core.ActionChargeRelease)
	s.Apply(in)
	s.Tick()

	if !slices.Contains(s.Events(), core.EventFlap) {
		t.Errorf("held charge should flap, got %v", s.Events())
	}
	if !s.bird.Charging() {
		t.Error("frame with both edges should begin a new hold")
	}
}

func TestReleaseWithoutPressIsNoop(t *testing.T) {
	s := NewSession(tallConfig(), 1)
	s.Start()
	s.PressEnd()
	s.Tick()

	if slices.Contains(s.Events(), core.EventFlap) {
		t.Error("release without charge should not flap")
	}
}

func TestSessionDeterminism(t *testing.T) {
	run := func() []Snapshot {
		s := NewSession(config.DefaultSkybirdConfig(), 2024)
		s.Start()
		var pilot Autopilot
		snaps := make([]Snapshot, 0, 3000)
		for range 3000 {
			s.Apply(pilot.Decide(s))
			running := s.Tick()
			snaps = append(snaps, s.Snapshot())
			if !running {
				break
			}
		}
		return snaps
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("runs lasted %d and %d frames", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("frame %d diverged:\n%+v\n%+v", i+1, a[i], b[i])
		}
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	a := NewSession(config.DefaultSkybirdConfig(), 3)
	b := NewSession(config.DefaultSkybirdConfig(), 3)
	a.Start()
	b.Start()

	for range 50 {
		a.Tick()
	}
	if b.Frame() != 0 || b.bird.Y != 300 {
		t.Error("ticking one session changed another")
	}
}

func TestEnvironmentCycle(t *testing.T) {
	env := NewEnvironment(config.DefaultSkybirdConfig())

	if env.ToggleNight(999) {
		t.Error("should not toggle before the period")
	}
	if !env.ToggleNight(1000) || !env.Night {
		t.Error("should turn night at frame 1000")
	}
	if !env.ToggleNight(2000) || env.Night {
		t.Error("should turn day at frame 2000")
	}

	for range 1601 {
		env.Scroll()
		if env.Offset < 0 || env.Offset > 800 {
			t.Fatalf("offset %v out of range", env.Offset)
		}
	}

	env.Reset()
	if env.Night || env.Offset != 0 {
		t.Error("Reset should restore day with no scroll")
	}

	classic := NewEnvironment(config.DefaultSkybirdConfig().Classic())
	if classic.ToggleNight(1000) {
		t.Error("day/night disabled should never toggle")
	}
}
