package skybird

import (
	"math"

	"github.com/vovakirdan/skybird/internal/core"
)

// Autopilot is a deterministic controller that steers the bird toward the
// middle of the next gap. It only sees what a player sees.
type Autopilot struct {
	hold int // Frames left before releasing the current charge
}

// autopilot tuning, canvas units
const (
	pilotDeadband = 30 // Distance below the target that triggers a flap
	pilotPerFrame = 12 // Distance covered per frame of extra charge
)

// Decide returns the input for the next tick.
func (a *Autopilot) Decide(s *Session) core.InputFrame {
	in := core.NewInputFrame()
	if !s.IsRunning() {
		return in
	}

	b := s.bird
	if b.Charging() {
		a.hold--
		if a.hold <= 0 {
			in.Set(core.ActionChargeRelease)
		}
		return in
	}

	below := b.Y - a.target(s)
	if below > pilotDeadband && b.Velocity >= 0 {
		a.hold = int(math.Min(math.Max(below/pilotPerFrame, 1), float64(s.cfg.Bird.MaxChargeTime)))
		in.Set(core.ActionChargeStart)
	}
	return in
}

// target is the y the autopilot aims for: the middle of the next gap, or
// the middle of the canvas when no pipe is ahead.
func (a *Autopilot) target(s *Session) float64 {
	if p, ok := s.nextPipe(); ok {
		return float64(p.GapTop) + float64(s.pipes.Gap())/2
	}
	return float64(s.cfg.Canvas.Height) / 2
}
