package skybird

import (
	"math"

	"github.com/vovakirdan/skybird/internal/config"
	"github.com/vovakirdan/skybird/internal/core"
)

// Bird is the player-controlled actor. It only moves vertically.
// A flap is charged while input is held and released as a graduated impulse.
type Bird struct {
	X          float64 // Fixed horizontal position (center)
	Y          float64 // Vertical position (center, grows downward)
	Velocity   float64 // Vertical velocity, negative is up
	ChargeTime int     // Frames spent charging, 0 when not charging

	Invincible  bool // Set by the session while the invincibility window is open
	Flashing    bool // Visual blink state, mirrors invincibility
	FlashFrames int  // Countdown within the current blink cycle

	cfg config.BirdConfig
}

// NewBird creates a bird at its reset position.
func NewBird(cfg config.BirdConfig) *Bird {
	b := &Bird{cfg: cfg}
	b.Reset()
	return b
}

// Reset restores the start-of-run state.
func (b *Bird) Reset() {
	b.X = b.cfg.X
	b.Y = b.cfg.StartY
	b.Velocity = 0
	b.ChargeTime = 0
	b.Invincible = false
	b.StopFlash()
}

// Radius returns the collision radius.
func (b *Bird) Radius() float64 {
	return b.cfg.Radius
}

// Circle returns the bird's collision shape.
func (b *Bird) Circle() core.Circle {
	return core.Circle{X: b.X, Y: b.Y, R: b.cfg.Radius}
}

// Charging reports whether a flap is being charged.
func (b *Bird) Charging() bool {
	return b.ChargeTime > 0
}

// StartCharge begins charging. No-op while already charging.
func (b *Bird) StartCharge() {
	if b.ChargeTime == 0 {
		b.ChargeTime = 1
	}
}

// ContinueCharge adds one frame of charge, saturating at the maximum.
func (b *Bird) ContinueCharge() {
	if b.ChargeTime > 0 && b.ChargeTime < b.cfg.MaxChargeTime {
		b.ChargeTime++
	}
}

// ChargeRatio returns the charge level in [0, 1].
func (b *Bird) ChargeRatio() float64 {
	if b.cfg.MaxChargeTime <= 0 {
		return 0
	}
	return math.Min(float64(b.ChargeTime)/float64(b.cfg.MaxChargeTime), 1)
}

// Impulse returns the velocity a release at the given charge time produces.
func (b *Bird) Impulse(chargeTime int) float64 {
	ratio := math.Min(float64(chargeTime)/float64(b.cfg.MaxChargeTime), 1)
	return b.cfg.MinLift + (b.cfg.MaxLift-b.cfg.MinLift)*ratio
}

// Release converts the accumulated charge into an upward impulse.
// Releasing without a charge does nothing and returns false.
func (b *Bird) Release() bool {
	if b.ChargeTime == 0 {
		return false
	}
	b.Velocity = b.Impulse(b.ChargeTime)
	b.ChargeTime = 0
	return true
}

// Integrate advances the bird by one frame.
// The ceiling clamps the bird and kills its velocity; it is never lethal.
func (b *Bird) Integrate() {
	if b.Flashing {
		b.FlashFrames--
		if b.FlashFrames <= 0 {
			if b.Invincible {
				b.FlashFrames = b.cfg.FlashFrames
			} else {
				b.Flashing = false
			}
		}
	}

	b.ContinueCharge()
	b.Velocity += b.cfg.Gravity
	b.Velocity *= b.cfg.Damping
	b.Y += b.Velocity

	if b.Y < 0 {
		b.Y = 0
		b.Velocity = 0
	}
}

// StartFlash begins blinking.
func (b *Bird) StartFlash() {
	b.Flashing = true
	b.FlashFrames = b.cfg.FlashFrames
}

// StopFlash ends blinking immediately.
func (b *Bird) StopFlash() {
	b.Flashing = false
	b.FlashFrames = 0
}

// Visible reports whether the bird is drawn this frame.
// While flashing it is hidden on every other frame.
func (b *Bird) Visible() bool {
	return !b.Flashing || b.FlashFrames%2 == 1
}
