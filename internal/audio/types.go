// Package audio plays short synthesized sound cues through whatever
// command-line audio player the system provides.
package audio

import (
	"errors"

	"github.com/vovakirdan/skybird/internal/core"
)

// Cue identifies a sound effect.
type Cue int

const (
	CueFlap    Cue = iota // Charged flap released
	CuePass               // Pipe passed
	CueCoin               // Coin collected
	CuePowerUp            // Power-up collected
	CueCrash              // Run ended
	cueCount
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueFlap:
		return "flap"
	case CuePass:
		return "pass"
	case CueCoin:
		return "coin"
	case CuePowerUp:
		return "powerup"
	case CueCrash:
		return "crash"
	default:
		return "unknown"
	}
}

// CueForEvent maps a simulation event onto a cue.
// Events without a sound return false.
func CueForEvent(e core.Event) (Cue, bool) {
	switch e {
	case core.EventFlap:
		return CueFlap, true
	case core.EventPass:
		return CuePass, true
	case core.EventCoin:
		return CueCoin, true
	case core.EventPowerUp:
		return CuePowerUp, true
	case core.EventCrash:
		return CueCrash, true
	default:
		return 0, false
	}
}

// SampleRate is the output rate every backend is configured for.
const SampleRate = 44100

// bytesPerFrame is one stereo s16le sample pair.
const bytesPerFrame = 4

// BackendConfig describes a command-line audio player.
type BackendConfig struct {
	Name string
	Path string
	Args []string
}

// ErrNoAudioBackend is returned when no supported player is installed.
var ErrNoAudioBackend = errors.New("audio: no compatible audio backend found")
