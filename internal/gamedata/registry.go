package gamedata

import (
	"errors"
	"math/rand"
)

// Registry holds walker definitions and picks them by spawn weight.
type Registry struct {
	walkers     []WalkerDef
	totalWeight int
}

// NewRegistry creates a registry from loaded walker definitions.
func NewRegistry(walkers []WalkerDef) *Registry {
	totalWeight := 0
	for _, w := range walkers {
		totalWeight += w.SpawnWeight
	}
	return &Registry{
		walkers:     walkers,
		totalWeight: totalWeight,
	}
}

// LoadRegistry creates a registry from the embedded walkers.yaml.
func LoadRegistry() (*Registry, error) {
	walkers, err := LoadWalkers()
	if err != nil {
		return nil, err
	}
	if len(walkers) == 0 {
		return nil, errors.New("no walkers loaded from walkers.yaml")
	}
	return NewRegistry(walkers), nil
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// SpawnRandom picks a definition with probability proportional to its
// spawn weight. It returns nil when no definition has positive weight.
func (r *Registry) SpawnRandom(rng *rand.Rand) *WalkerDef {
	if r.totalWeight <= 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)
	for i := range r.walkers {
		roll -= r.walkers[i].SpawnWeight
		if roll < 0 {
			return &r.walkers[i]
		}
	}
	return &r.walkers[len(r.walkers)-1]
}

// GetByID returns the definition with the given ID, or nil.
func (r *Registry) GetByID(id string) *WalkerDef {
	for i := range r.walkers {
		if r.walkers[i].ID == id {
			return &r.walkers[i]
		}
	}
	return nil
}

// All returns every definition.
func (r *Registry) All() []WalkerDef {
	return r.walkers
}

// Count returns the number of definitions.
func (r *Registry) Count() int {
	return len(r.walkers)
}
