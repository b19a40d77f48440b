package skybird

import (
	"math/rand"

	"github.com/vovakirdan/skybird/internal/config"
	"github.com/vovakirdan/skybird/internal/core"
)

// Pipe is a pair of vertical segments with a passable gap between them.
type Pipe struct {
	X      float64 // Left edge, decreasing every frame
	GapTop int     // Y where the gap starts (bottom of the top segment)
	Passed bool    // Whether the bird has already scored this pipe
}

// PipeLane spawns, scrolls and retires pipes in creation order.
type PipeLane struct {
	pipes   []Pipe
	cfg     config.PipesConfig
	canvasW int
	canvasH int
}

// NewPipeLane creates an empty lane for the given canvas.
func NewPipeLane(cfg config.SkybirdConfig) *PipeLane {
	return &PipeLane{
		pipes:   make([]Pipe, 0, 8),
		cfg:     cfg.Pipes,
		canvasW: cfg.Canvas.Width,
		canvasH: cfg.Canvas.Height,
	}
}

// Reset removes every pipe.
func (l *PipeLane) Reset() {
	l.pipes = l.pipes[:0]
}

// Pipes returns the live pipes, oldest first.
// The slice is only valid until the next lane update.
func (l *PipeLane) Pipes() []Pipe {
	return l.pipes
}

// Len returns the number of live pipes.
func (l *PipeLane) Len() int {
	return len(l.pipes)
}

// Width returns the pipe width.
func (l *PipeLane) Width() int {
	return l.cfg.Width
}

// Gap returns the gap height.
func (l *PipeLane) Gap() int {
	return l.cfg.Gap
}

// TrySpawn appends a pipe at the right edge when frame is a multiple of the
// spawn period. The gap top is uniform over [min_height, height-min_height-gap].
func (l *PipeLane) TrySpawn(frame int, rng *rand.Rand) bool {
	if l.cfg.SpawnPeriod <= 0 || frame%l.cfg.SpawnPeriod != 0 {
		return false
	}

	minTop := l.cfg.MinHeight
	maxTop := l.canvasH - l.cfg.MinHeight - l.cfg.Gap
	gapTop := minTop
	if maxTop > minTop {
		gapTop = rng.Intn(maxTop-minTop+1) + minTop
	}

	l.pipes = append(l.pipes, Pipe{
		X:      float64(l.canvasW),
		GapTop: gapTop,
	})
	return true
}

// Advance scrolls every pipe left and returns how many pipes the bird passed
// this frame. A pipe counts once, when its trailing edge crosses birdX.
func (l *PipeLane) Advance(birdX float64) int {
	passed := 0
	w := float64(l.cfg.Width)
	for i := range l.pipes {
		p := &l.pipes[i]
		p.X -= l.cfg.Speed
		if !p.Passed && p.X+w < birdX {
			p.Passed = true
			passed++
		}
	}
	return passed
}

// RetireOffscreen drops pipes from the head while they are fully off the left
// edge and returns how many were removed.
func (l *PipeLane) RetireOffscreen() int {
	n := 0
	w := float64(l.cfg.Width)
	for n < len(l.pipes) && l.pipes[n].X < -w {
		n++
	}
	if n > 0 {
		l.pipes = append(l.pipes[:0], l.pipes[n:]...)
	}
	return n
}

// Collides reports whether the circle hits any pipe segment.
// The test is axis-aligned: horizontal overlap and outside the gap.
func (l *PipeLane) Collides(c core.Circle) bool {
	for _, p := range l.pipes {
		if l.hits(p, c) {
			return true
		}
	}
	return false
}

func (l *PipeLane) hits(p Pipe, c core.Circle) bool {
	if c.Right() <= p.X || c.Left() >= p.X+float64(l.cfg.Width) {
		return false
	}
	return c.Top() < float64(p.GapTop) || c.Bottom() > float64(p.GapTop+l.cfg.Gap)
}
