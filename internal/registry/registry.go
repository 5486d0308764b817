// Package registry is the catalog of playable modes. Each mode registers
// itself in an init() function, so the platform and CLI can list and build
// modes without importing them directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/bryomx12/farmstand/internal/core"
)

// Game is the interface every playable mode implements. Modes contain pure
// logic with no external dependencies (especially no Bubble Tea); the
// platform handles input mapping, timing, rendering, and persistence.
type Game interface {
	// ID returns a unique identifier for this mode (e.g., "classic").
	// Used for CLI commands and run storage.
	ID() string

	// Title returns a human-readable name for menus and headers.
	Title() string

	// Reset initializes or resets the mode. Called once at start and again
	// when restarting after a run ends. The RuntimeConfig provides screen
	// dimensions and the RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick. Input is abstracted
	// to platform-level actions. The result carries the updated run state
	// plus any events raised during the tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current run state (money, day, game over, paused).
	State() core.GameState
}

// Info contains metadata about a registered mode.
type Info struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a mode.
type Factory func() Game

type entry struct {
	title   string
	factory Factory
}

var (
	mu    sync.RWMutex
	modes = make(map[string]entry)
)

// Register adds a mode to the catalog, keyed by id. It is meant to be
// called from an init() function and panics on duplicate IDs.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, taken := modes[id]; taken {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}

	// A throwaway instance supplies the title for listings
	modes[id] = entry{title: f().Title(), factory: f}
}

// List returns all registered modes, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(modes))
	for id, e := range modes {
		result = append(result, Info{ID: id, Title: e.title})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// IDs returns the sorted identifiers of all registered modes.
func IDs() []string {
	infos := List()
	out := make([]string, len(infos))
	for i, info := range infos {
		out[i] = info.ID
	}
	return out
}

// Create instantiates a mode by ID. Unknown IDs are an error.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := modes[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := modes[id]
	return ok
}
