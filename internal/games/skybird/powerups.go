package skybird

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/skybird/internal/config"
	"github.com/vovakirdan/skybird/internal/core"
)

// PowerUpType selects the effect of a power-up.
type PowerUpType int

const (
	PowerUpInvincible PowerUpType = iota // Opens the invincibility window
	PowerUpMagnet                        // Magnetizes every live coin
)

// String returns the name of the power-up type.
func (t PowerUpType) String() string {
	switch t {
	case PowerUpInvincible:
		return "invincible"
	case PowerUpMagnet:
		return "magnet"
	default:
		return "?"
	}
}

// PowerUp is a spinning pickup with a one-shot effect.
type PowerUp struct {
	X, Y     float64 // Center
	Size     float64
	Type     PowerUpType
	Rotation float64 // Radians, drives the spin animation

	speed float64
	spin  float64
}

// newPowerUpPool builds the power-up pool from config.
func newPowerUpPool(cfg config.SkybirdConfig) *Pool[*PowerUp] {
	pc := cfg.PowerUps
	span := float64(cfg.Canvas.Height) - 2*pc.Margin
	return NewPool(pc.Enabled, pc.SpawnChance, pc.MaxLive, func(rng *rand.Rand) *PowerUp {
		p := &PowerUp{
			X:     float64(cfg.Canvas.Width),
			Y:     rng.Float64()*span + pc.Margin,
			Size:  pc.Size,
			Type:  PowerUpMagnet,
			speed: pc.Speed,
			spin:  pc.Spin,
		}
		if rng.Float64() < 0.5 {
			p.Type = PowerUpInvincible
		}
		return p
	})
}

func (p *PowerUp) Kind() Kind { return KindPowerUp }

func (p *PowerUp) Body() core.Circle {
	return core.Circle{X: p.X, Y: p.Y, R: core.EffectiveRadius(0, p.Size, p.Size)}
}

func (p *PowerUp) Advance(w World) bool {
	p.X -= p.speed
	p.Rotation += p.spin
	return false
}

func (p *PowerUp) Collect(w World) bool {
	w.activatePowerUp(p.Type)
	return true
}

func (p *PowerUp) Offscreen() bool {
	return p.X < -p.Size
}

var (
	invincibleFrames = []rune{'✦', '✧', '✦', '+'}
	magnetFrames     = []rune{'∪', '⊂', '∩', '⊃'}
)

func (p *PowerUp) Draw(dst *core.Screen, v Viewport) {
	frames, color := magnetFrames, core.ColorBrightRed
	if p.Type == PowerUpInvincible {
		frames, color = invincibleFrames, core.ColorBrightYellow
	}
	dst.SetColored(v.Col(p.X), v.Row(p.Y), frames[spinPhase(p.Rotation, len(frames))], color)
}

// spinPhase maps a rotation angle onto one of n animation frames.
func spinPhase(rotation float64, n int) int {
	turn := math.Mod(rotation, 2*math.Pi) / (2 * math.Pi)
	if turn < 0 {
		turn++
	}
	return int(turn*float64(n)) % n
}
