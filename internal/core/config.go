package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score (final score once GameOver is set)
	Started  bool // Whether a run has been started at least once
	Running  bool // Whether the simulation wants another tick
	GameOver bool // Whether the last run has ended
	Paused   bool // Whether the game is paused
}

// Event is something notable that happened during a tick.
// The platform uses events for sound cues and logging.
type Event int

const (
	EventNone     Event = iota
	EventStart          // A run started
	EventFlap           // Player released a charged flap
	EventPass           // An obstacle was passed
	EventCoin           // A coin was collected
	EventPowerUp        // A power-up was collected
	EventCrash          // The run ended on a collision
	EventDayNight       // The day/night cycle flipped
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventFlap:
		return "flap"
	case EventPass:
		return "pass"
	case EventCoin:
		return "coin"
	case EventPowerUp:
		return "powerup"
	case EventCrash:
		return "crash"
	case EventDayNight:
		return "daynight"
	default:
		return "none"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
