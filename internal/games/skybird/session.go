package skybird

import (
	"math/rand"

	"github.com/vovakirdan/skybird/internal/config"
	"github.com/vovakirdan/skybird/internal/core"
)

// Phase is the lifecycle state of a session.
type Phase int

const (
	PhaseIdle    Phase = iota // Before the first start
	PhaseRunning              // Ticking
	PhaseEnded                // Crashed, waiting for a restart
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// CrashCause records what ended a run.
type CrashCause int

const (
	CrashNone CrashCause = iota
	CrashGround
	CrashPipe
	CrashHazard
)

// String returns the cause name.
func (c CrashCause) String() string {
	switch c {
	case CrashGround:
		return "ground"
	case CrashPipe:
		return "pipe"
	case CrashHazard:
		return "hazard"
	default:
		return "none"
	}
}

// Session is one player's simulation: the bird, every entity collection,
// scores and timers. Nothing is shared between sessions.
type Session struct {
	cfg config.SkybirdConfig

	bird     *Bird
	pipes    *PipeLane
	powerUps *Pool[*PowerUp]
	coins    *Pool[*Coin]
	hazards  *Pool[*Hazard]
	env      *Environment

	phase          Phase
	score          int
	coinScore      int
	frame          int
	invincibleLeft int
	crash          CrashCause

	// Input latched between ticks
	pressPending      bool
	releasePending    bool
	pressAfterRelease bool // A release and then a new press arrived in one tick window

	seed   int64
	runs   int
	rng    *rand.Rand
	events []core.Event
}

// NewSession creates an idle session. Run n (counting from 0) is seeded
// with seed+n, so a fresh session replays identically for the same inputs.
func NewSession(cfg config.SkybirdConfig, seed int64) *Session {
	return &Session{
		cfg:      cfg,
		bird:     NewBird(cfg.Bird),
		pipes:    NewPipeLane(cfg),
		powerUps: newPowerUpPool(cfg),
		coins:    newCoinPool(cfg),
		hazards:  newHazardPool(cfg),
		env:      NewEnvironment(cfg),
		seed:     seed,
		rng:      rand.New(rand.NewSource(seed)),
		events:   make([]core.Event, 0, 4),
	}
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.SkybirdConfig {
	return s.cfg
}

// Start resets every piece of run state and begins a new run.
func (s *Session) Start() {
	s.rng = rand.New(rand.NewSource(s.seed + int64(s.runs)))
	s.runs++

	s.score = 0
	s.coinScore = 0
	s.frame = 0
	s.invincibleLeft = 0
	s.crash = CrashNone
	s.pressPending = false
	s.releasePending = false
	s.pressAfterRelease = false

	s.bird.Reset()
	s.pipes.Reset()
	s.powerUps.Reset()
	s.coins.Reset()
	s.hazards.Reset()
	s.env.Reset()

	s.phase = PhaseRunning
	s.events = append(s.events[:0], core.EventStart)
}

// RequestStart starts a run from Idle or restarts from Ended.
// Returns false while a run is in progress.
func (s *Session) RequestStart() bool {
	if s.phase == PhaseRunning {
		return false
	}
	s.Start()
	return true
}

// PressStart latches a charge start for the next tick.
// Pressing before the first run starts it.
func (s *Session) PressStart() {
	switch s.phase {
	case PhaseIdle:
		s.Start()
	case PhaseRunning:
		s.pressPending = true
		if s.releasePending {
			s.pressAfterRelease = true
		}
	}
}

// PressEnd latches a charge release for the next tick.
func (s *Session) PressEnd() {
	if s.phase == PhaseRunning {
		s.releasePending = true
		s.pressAfterRelease = false
	}
}

// Apply feeds one frame of host input into the session.
// Start requests are handled immediately, charge input is latched.
func (s *Session) Apply(in core.InputFrame) {
	if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
		s.RequestStart()
	}
	start, release := in.Has(core.ActionChargeStart), in.Has(core.ActionChargeRelease)
	if start && release && !in.Has(core.ActionJump) && s.Charging() {
		// Released and pressed again within one frame
		s.PressEnd()
		s.PressStart()
		return
	}
	if start || in.Has(core.ActionJump) {
		s.PressStart()
	}
	if release || in.Has(core.ActionJump) {
		s.PressEnd()
	}
}

// Tick advances one frame and reports whether the host should schedule
// another one.
func (s *Session) Tick() bool {
	s.events = s.events[:0]
	if s.phase != PhaseRunning {
		return false
	}

	// Latched input is applied in arrival order. A press and release in one
	// window is a tap; a release then a press flaps and starts a new hold.
	if s.pressAfterRelease {
		s.release()
		s.bird.StartCharge()
	} else {
		if s.pressPending {
			s.bird.StartCharge()
		}
		if s.releasePending {
			s.release()
		}
	}
	s.pressPending, s.releasePending, s.pressAfterRelease = false, false, false

	s.frame++
	if s.invincibleLeft > 0 {
		s.invincibleLeft--
		if s.invincibleLeft == 0 {
			s.bird.Invincible = false
			s.bird.StopFlash()
		}
	}

	if s.env.ToggleNight(s.frame) {
		s.emit(core.EventDayNight)
	}
	s.env.Scroll()

	s.bird.Integrate()

	s.pipes.RetireOffscreen()
	if passed := s.pipes.Advance(s.bird.X); passed > 0 {
		s.score += passed
		s.emit(core.EventPass)
	}
	s.pipes.TrySpawn(s.frame, s.rng)

	s.powerUps.TrySpawn(s.rng)
	s.powerUps.Update(s)
	s.coins.TrySpawn(s.rng)
	s.coins.Update(s)
	s.hazards.TrySpawn(s.rng)
	s.hazards.Update(s)

	if !s.Invincible() {
		if cause := s.collision(); cause != CrashNone {
			s.crash = cause
			s.phase = PhaseEnded
			s.emit(core.EventCrash)
		}
	}

	return s.phase == PhaseRunning
}

// collision returns the first lethal contact, if any.
func (s *Session) collision() CrashCause {
	body := s.bird.Circle()
	switch {
	case body.Bottom() > float64(s.cfg.Canvas.Height):
		return CrashGround
	case s.pipes.Collides(body):
		return CrashPipe
	case s.hazards.Touching(body):
		return CrashHazard
	default:
		return CrashNone
	}
}

func (s *Session) release() {
	if s.bird.Release() {
		s.emit(core.EventFlap)
	}
}

var _ World = (*Session)(nil)

func (s *Session) birdCircle() core.Circle {
	return s.bird.Circle()
}

func (s *Session) activatePowerUp(t PowerUpType) {
	switch t {
	case PowerUpInvincible:
		s.invincibleLeft = s.cfg.PowerUps.InvincibleFrames
		s.bird.Invincible = true
		s.bird.StartFlash()
	case PowerUpMagnet:
		for _, c := range s.coins.Items() {
			c.Magnetized = true
		}
	}
	s.emit(core.EventPowerUp)
}

func (s *Session) collectCoin(value int) {
	s.score += value
	s.coinScore += value
	s.emit(core.EventCoin)
}

// emit records an event for this tick, once per kind.
func (s *Session) emit(e core.Event) {
	for _, have := range s.events {
		if have == e {
			return
		}
	}
	s.events = append(s.events, e)
}

// Events returns what happened during the last tick (or the last start).
func (s *Session) Events() []core.Event {
	return s.events
}

// Phase returns the lifecycle state.
func (s *Session) Phase() Phase { return s.phase }

// IsRunning reports whether a run is in progress.
func (s *Session) IsRunning() bool { return s.phase == PhaseRunning }

// IsEnded reports whether the last run crashed.
func (s *Session) IsEnded() bool { return s.phase == PhaseEnded }

// Score returns the current score, pipes plus coin values.
func (s *Session) Score() int { return s.score }

// CoinScore returns the part of the score earned from coins.
func (s *Session) CoinScore() int { return s.coinScore }

// FinalScore returns the score of the ended run, or 0 when no run has ended.
func (s *Session) FinalScore() int {
	if s.phase != PhaseEnded {
		return 0
	}
	return s.score
}

// Frame returns the frame counter of the current run.
func (s *Session) Frame() int { return s.frame }

// Night reports whether the night palette is active.
func (s *Session) Night() bool { return s.env.Night }

// Invincible reports whether the invincibility window is open.
func (s *Session) Invincible() bool { return s.invincibleLeft > 0 }

// InvincibleLeft returns the remaining invincibility frames.
func (s *Session) InvincibleLeft() int { return s.invincibleLeft }

// Crash returns what ended the last run.
func (s *Session) Crash() CrashCause { return s.crash }

// Runs returns how many runs have been started.
func (s *Session) Runs() int { return s.runs }

// RunSeed returns the RNG seed of the current run.
func (s *Session) RunSeed() int64 {
	if s.runs == 0 {
		return s.seed
	}
	return s.seed + int64(s.runs-1)
}

// Charging reports whether the bird is charging, counting a press that
// is latched but not yet applied.
func (s *Session) Charging() bool {
	if s.releasePending {
		return s.pressAfterRelease
	}
	return s.pressPending || s.bird.Charging()
}

// Bird returns the actor.
func (s *Session) Bird() *Bird { return s.bird }
