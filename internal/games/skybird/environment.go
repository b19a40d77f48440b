package skybird

import "github.com/vovakirdan/skybird/internal/config"

// Environment holds the scrolling background and the day/night cycle.
type Environment struct {
	Offset float64 // Parallax offset in canvas units, wraps at the canvas width
	Night  bool

	cfg   config.WorldConfig
	width float64
}

// NewEnvironment creates a daytime environment.
func NewEnvironment(cfg config.SkybirdConfig) *Environment {
	return &Environment{
		cfg:   cfg.World,
		width: float64(cfg.Canvas.Width),
	}
}

// Reset returns to daytime with no scroll.
func (e *Environment) Reset() {
	e.Offset = 0
	e.Night = false
}

// ToggleNight flips day and night every night_period frames.
// Returns true when the cycle flipped on this frame.
func (e *Environment) ToggleNight(frame int) bool {
	if !e.cfg.DayNight || e.cfg.NightPeriod <= 0 || frame%e.cfg.NightPeriod != 0 {
		return false
	}
	e.Night = !e.Night
	return true
}

// Scroll advances the parallax offset.
func (e *Environment) Scroll() {
	e.Offset += e.cfg.ParallaxSpeed
	if e.Offset > e.width {
		e.Offset = 0
	}
}
