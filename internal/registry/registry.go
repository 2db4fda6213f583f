// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the console
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/lcd-arcade/internal/config"
	"github.com/vovakirdan/lcd-arcade/internal/core"
)

// Game is the interface every console game implements.
// Games contain pure logic; the scheduler owns timing, input sampling and
// the display.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "flappy").
	ID() string

	// Title returns the menu label (e.g., "Flappy Bird").
	Title() string

	// Reset initializes the game state for a new session.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one frame using input sampled at the
	// start of the frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state. The display is cleared first.
	Render(dst core.Display)

	// State returns the current score and whether the session is over.
	State() core.GameState

	// FrameInterval returns how long the next frame should last.
	FrameInterval() time.Duration
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
	Slot  int // Menu position and high-score storage slot
}

// Factory creates a new instance of a game from the console configuration.
type Factory func(cfg config.Config) Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry under the given slot.
// Typically called from a game's init() function.
// Panics if the ID or the slot is already taken.
func Register(slot int, id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	for _, info := range infos {
		if info.Slot == slot {
			panic(fmt.Sprintf("registry: slot %d already taken by %q", slot, info.ID))
		}
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f(config.Default())
	infos[id] = GameInfo{ID: id, Title: g.Title(), Slot: slot}
}

// List returns information about all registered games, ordered by slot.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Slot < result[j].Slot
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string, cfg config.Config) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(cfg), nil
}

// Lookup returns the metadata for a registered game.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := infos[id]
	return info, ok
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
