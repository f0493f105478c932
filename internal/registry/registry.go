// Package registry provides a global registry of combatant factories.
// Kinds register themselves in init() functions, allowing the front-ends
// to build players by name from configuration without hardcoded imports.
package registry

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/vovakirdan/seabattle/internal/battle"
)

// ErrNoSource is returned when an interactive kind is created without input.
var ErrNoSource = errors.New("registry: combatant needs a target source")

// Deps are the collaborators a factory may use.
type Deps struct {
	Name     string              // display name
	Rand     *rand.Rand          // for automated kinds
	Source   battle.TargetSource // for interactive kinds
	OnReject func(battle.Coord, error)
}

// Factory creates a combatant.
type Factory func(Deps) (battle.Combatant, error)

// Info describes a registered kind.
type Info struct {
	Kind        string
	Title       string
	Interactive bool // needs a TargetSource
}

type entry struct {
	info    Info
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a combatant kind.
// Panics if the kind is already registered.
func Register(info Info, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[info.Kind]; exists {
		panic(fmt.Sprintf("registry: combatant %q already registered", info.Kind))
	}
	entries[info.Kind] = entry{info: info, factory: f}
}

// List returns all registered kinds, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Kind < result[j].Kind
	})
	return result
}

// Create builds a combatant of the given kind.
func Create(kind string, deps Deps) (battle.Combatant, error) {
	mu.RLock()
	e, ok := entries[kind]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown combatant %q", kind)
	}
	if e.info.Interactive && deps.Source == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoSource, kind)
	}
	return e.factory(deps)
}

// Exists checks if a kind is registered.
func Exists(kind string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[kind]
	return ok
}

// IsInteractive reports whether kind reads targets from a person.
func IsInteractive(kind string) bool {
	mu.RLock()
	defer mu.RUnlock()

	return entries[kind].info.Interactive
}
