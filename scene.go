package isoviz

import (
	"fmt"
	"sort"
	"sync"
)

// Scene is one self-contained animation. Construct declares the scene's
// objects and timeline; it must be deterministic, seeding any randomness
// it uses, so re-renders are reproducible.
type Scene interface {
	Name() string
	Construct(tl *Timeline)
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Scene{}
)

// Register makes a scene available to the batch renderer under its name.
// Scene packages call Register from init; registering two scenes with the
// same name panics, since it silently hides one of them otherwise.
func Register(s Scene) {
	registryMu.Lock()
	defer registryMu.Unlock()
	name := s.Name()
	if name == "" {
		panic("isoviz: Register called with empty scene name")
	}
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("isoviz: scene %q registered twice", name))
	}
	registry[name] = s
}

// Lookup returns the registered scene with the given name.
func Lookup(name string) (Scene, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	s, ok := registry[name]
	return s, ok
}

// Scenes returns all registered scenes sorted by name.
func Scenes() []Scene {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]Scene, 0, len(registry))
	for _, s := range registry {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Build constructs the scene's timeline.
func Build(s Scene) *Timeline {
	tl := NewTimeline()
	s.Construct(tl)
	return tl
}
