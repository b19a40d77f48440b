package skybird

import (
	"math/rand"

	"github.com/vovakirdan/skybird/internal/config"
	"github.com/vovakirdan/skybird/internal/core"
)

// Coin is a bonus pickup worth Value points.
// A magnetized coin stops drifting and homes in on the bird.
type Coin struct {
	X, Y       float64 // Center
	Radius     float64
	Value      int
	Magnetized bool
	Rotation   float64

	speed  float64
	spin   float64
	pull   float64
	absorb float64
}

// newCoinPool builds the coin pool from config.
func newCoinPool(cfg config.SkybirdConfig) *Pool[*Coin] {
	cc := cfg.Coins
	span := float64(cfg.Canvas.Height) - 2*cc.Margin
	values := cc.MaxValue - cc.MinValue + 1
	return NewPool(cc.Enabled, cc.SpawnChance, cc.MaxLive, func(rng *rand.Rand) *Coin {
		return &Coin{
			X:      float64(cfg.Canvas.Width),
			Y:      rng.Float64()*span + cc.Margin,
			Radius: cc.Radius,
			Value:  int(rng.Float64()*float64(values)) + cc.MinValue,
			speed:  cc.Speed,
			spin:   cc.Spin,
			pull:   cc.MagnetPull,
			absorb: cc.AbsorbRadius,
		}
	})
}

func (c *Coin) Kind() Kind { return KindCoin }

func (c *Coin) Body() core.Circle {
	return core.Circle{X: c.X, Y: c.Y, R: c.Radius}
}

// Advance drifts left, or when magnetized closes a fixed fraction of the
// distance to the bird. A magnetized coin inside the absorption radius is
// collected here without needing a full overlap.
func (c *Coin) Advance(w World) bool {
	c.Rotation += c.spin

	if !c.Magnetized {
		c.X -= c.speed
		return false
	}

	bird := w.birdCircle()
	dx := bird.X - c.X
	dy := bird.Y - c.Y
	if core.Dist(c.X, c.Y, bird.X, bird.Y) < c.absorb {
		w.collectCoin(c.Value)
		return true
	}
	c.X += dx * c.pull
	c.Y += dy * c.pull
	return false
}

func (c *Coin) Collect(w World) bool {
	w.collectCoin(c.Value)
	return true
}

func (c *Coin) Offscreen() bool {
	return c.X < -2*c.Radius
}

var coinFrames = []rune{'●', '◐', '│', '◑'}

func (c *Coin) Draw(dst *core.Screen, v Viewport) {
	color := core.ColorYellow
	if c.Magnetized {
		color = core.ColorBrightYellow
	}
	dst.SetColored(v.Col(c.X), v.Row(c.Y), coinFrames[spinPhase(c.Rotation, len(coinFrames))], color)
}
