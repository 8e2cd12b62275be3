// Package registry provides a global registry of play modes.
// Modes register themselves in init() functions, allowing the CLI and the
// menu to discover them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-tetris/internal/session"
)

// Mode decides who moves the pieces in a session.
// The platform handles input mapping, rendering and the session lifetime;
// a mode only supplies the clock that drives play.
type Mode interface {
	// ID returns a unique identifier for this mode (e.g., "normal", "auto").
	// Used for CLI arguments.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Interactive reports whether gameplay keys reach the session. Pause,
	// restart and quit always do.
	Interactive() bool

	// Drive runs the mode's loop against s until ctx is done.
	Drive(ctx context.Context, s *session.Session)
}

// ModeInfo contains metadata about a registered mode.
type ModeInfo struct {
	ID          string
	Title       string
	Interactive bool
}

// Factory is a function that creates a new instance of a mode.
type Factory func() Mode

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]ModeInfo)
	mu        sync.RWMutex
)

// Register adds a mode factory to the registry.
// Typically called from a mode's init() function.
// Panics if a mode with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}

	factories[id] = f

	// Get metadata by creating a temporary instance
	m := f()
	infos[id] = ModeInfo{ID: id, Title: m.Title(), Interactive: m.Interactive()}
}

// List returns information about all registered modes, sorted by ID.
func List() []ModeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ModeInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new mode by its ID.
// Returns an error if the mode ID is not registered.
func Create(id string) (Mode, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}

	return f(), nil
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
