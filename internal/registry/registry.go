// Package registry maps mode IDs to game factories.
// Game packages register their modes from init, so hosts (the CLI, the menu,
// the SSH server, the headless simulator) never import a game directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/skybird/internal/core"
)

// Game is what every host drives. Implementations hold pure simulation
// state and never touch the terminal, the clock or the score store.
type Game interface {
	// ID is the mode key used on the command line and in the score store.
	ID() string

	// Title is the display name shown in menus.
	Title() string

	// Reset builds a fresh idle run sized and seeded from cfg.
	Reset(cfg core.RuntimeConfig)

	// Step applies one frame of latched input and advances at most one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into dst.
	Render(dst *core.Screen)

	// State reports the score and lifecycle flags a host polls.
	State() core.GameState
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new, unreset game instance.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu    sync.RWMutex
	modes = make(map[string]entry)
)

// Register adds a mode. It panics on an empty or duplicate ID, which can
// only come from a programming error in an init function.
func Register(id string, f Factory) {
	if id == "" {
		panic("registry: empty mode id")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, dup := modes[id]; dup {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}
	modes[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered mode sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(modes))
	for id, e := range modes {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Create returns a new game for the mode id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := modes[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := modes[id]
	return ok
}
