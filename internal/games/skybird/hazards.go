package skybird

import (
	"math/rand"

	"github.com/vovakirdan/skybird/internal/config"
	"github.com/vovakirdan/skybird/internal/core"
)

// HazardType selects how a hazard looks. Both kinds are lethal on contact.
type HazardType int

const (
	HazardSpike HazardType = iota
	HazardComet
)

// String returns the name of the hazard type.
func (t HazardType) String() string {
	if t == HazardComet {
		return "comet"
	}
	return "spike"
}

// Hazard is a free-flying obstacle with its own speed.
// Contact is never consumed: the session decides whether it is fatal.
type Hazard struct {
	X, Y  float64 // Center
	Size  float64
	Type  HazardType
	Speed float64
}

// newHazardPool builds the hazard pool from config.
func newHazardPool(cfg config.SkybirdConfig) *Pool[*Hazard] {
	hc := cfg.Hazards
	span := float64(cfg.Canvas.Height) - 2*hc.Margin
	return NewPool(hc.Enabled, hc.SpawnChance, hc.MaxLive, func(rng *rand.Rand) *Hazard {
		h := &Hazard{
			X:    float64(cfg.Canvas.Width),
			Y:    rng.Float64()*span + hc.Margin,
			Size: hc.Size,
			Type: HazardComet,
		}
		if rng.Float64() < 0.5 {
			h.Type = HazardSpike
		}
		h.Speed = rng.Float64()*(hc.MaxSpeed-hc.MinSpeed) + hc.MinSpeed
		return h
	})
}

func (h *Hazard) Kind() Kind { return KindHazard }

func (h *Hazard) Body() core.Circle {
	return core.Circle{X: h.X, Y: h.Y, R: core.EffectiveRadius(0, h.Size, h.Size)}
}

func (h *Hazard) Advance(w World) bool {
	h.X -= h.Speed
	return false
}

func (h *Hazard) Collect(w World) bool {
	return false
}

func (h *Hazard) Offscreen() bool {
	return h.X < -2*h.Size
}

const cometTail = 3

func (h *Hazard) Draw(dst *core.Screen, v Viewport) {
	col, row := v.Col(h.X), v.Row(h.Y)
	if h.Type == HazardSpike {
		dst.SetColored(col, row, '◄', core.ColorGray)
		dst.SetColored(col+1, row, '▌', core.ColorGray)
		return
	}
	dst.SetColored(col, row, '◉', core.ColorOrange)
	for i := 1; i <= cometTail; i++ {
		dst.SetColored(col+i, row, '~', core.ColorYellow)
	}
}
