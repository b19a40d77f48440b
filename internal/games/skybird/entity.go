package skybird

import (
	"math/rand"

	"github.com/vovakirdan/skybird/internal/core"
)

// Kind tags a transient entity.
type Kind int

const (
	KindPowerUp Kind = iota
	KindCoin
	KindHazard
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPowerUp:
		return "powerup"
	case KindCoin:
		return "coin"
	case KindHazard:
		return "hazard"
	default:
		return "unknown"
	}
}

// World is the part of a session an entity can see and affect.
// Only Session implements it.
type World interface {
	birdCircle() core.Circle
	collectCoin(value int)
	activatePowerUp(t PowerUpType)
}

// Entity is a short-lived object scrolling through the playfield.
type Entity interface {
	Kind() Kind

	// Body returns the collision circle in canvas coordinates.
	Body() core.Circle

	// Advance moves the entity one frame. It returns true when the entity
	// consumed itself during the move (a magnetized coin reaching the bird).
	Advance(w World) bool

	// Collect applies the on-contact effect and returns true when the
	// entity is consumed by the contact.
	Collect(w World) bool

	// Offscreen reports whether the entity has left through the left edge.
	Offscreen() bool

	// Draw renders the entity through the viewport.
	Draw(dst *core.Screen, v Viewport)
}

// Pool owns the live entities of one kind and enforces its population cap.
type Pool[E Entity] struct {
	items   []E
	enabled bool
	chance  float64
	maxLive int
	spawn   func(rng *rand.Rand) E
}

// NewPool creates a pool. A disabled pool never spawns and never draws
// from the RNG.
func NewPool[E Entity](enabled bool, chance float64, maxLive int, spawn func(rng *rand.Rand) E) *Pool[E] {
	return &Pool[E]{
		items:   make([]E, 0, max(maxLive, 0)),
		enabled: enabled,
		chance:  chance,
		maxLive: maxLive,
		spawn:   spawn,
	}
}

// Items returns the live entities in spawn order.
func (p *Pool[E]) Items() []E {
	return p.items
}

// Len returns the number of live entities.
func (p *Pool[E]) Len() int {
	return len(p.items)
}

// Reset removes every entity.
func (p *Pool[E]) Reset() {
	clear(p.items)
	p.items = p.items[:0]
}

// Add inserts an entity regardless of the cap.
func (p *Pool[E]) Add(e E) {
	p.items = append(p.items, e)
}

// TrySpawn makes one Bernoulli draw and spawns when it succeeds and the
// pool is below its cap. The draw happens even at the cap so the RNG stream
// does not depend on population.
func (p *Pool[E]) TrySpawn(rng *rand.Rand) bool {
	if !p.enabled {
		return false
	}
	if rng.Float64() >= p.chance || len(p.items) >= p.maxLive {
		return false
	}
	p.items = append(p.items, p.spawn(rng))
	return true
}

// Update advances every entity back to front, resolves contact with the
// bird and retires entities that left the screen.
func (p *Pool[E]) Update(w World) {
	for i := len(p.items) - 1; i >= 0; i-- {
		e := p.items[i]

		if e.Advance(w) {
			p.remove(i)
			continue
		}

		if e.Body().Overlaps(w.birdCircle()) && e.Collect(w) {
			p.remove(i)
			continue
		}

		if e.Offscreen() {
			p.remove(i)
		}
	}
}

// Touching reports whether any live entity overlaps the circle.
func (p *Pool[E]) Touching(c core.Circle) bool {
	for _, e := range p.items {
		if e.Body().Overlaps(c) {
			return true
		}
	}
	return false
}

func (p *Pool[E]) remove(i int) {
	var zero E
	copy(p.items[i:], p.items[i+1:])
	p.items[len(p.items)-1] = zero
	p.items = p.items[:len(p.items)-1]
}
