// Package registry maps puzzle keys to solver implementations.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/asloane/aoc2024/pkg/puzzle"
)

// Registry holds the mapping from puzzle key to solver. It is built once at
// process start and read-only afterwards; the runner and the benchmark
// harness share the same frozen instance.
type Registry struct {
	mu      sync.RWMutex
	solvers map[puzzle.Key]puzzle.Func
}

// New builds a registry from the given solution table.
// A duplicate or invalid key in the table is a construction error.
func New(solutions ...puzzle.Solution) (*Registry, error) {
	r := &Registry{
		solvers: make(map[puzzle.Key]puzzle.Func),
	}
	for _, s := range solutions {
		if s.PartOne != nil {
			if err := r.Register(puzzle.Key{Day: s.Day, Part: puzzle.PartOne}, s.PartOne); err != nil {
				return nil, err
			}
		}
		if s.PartTwo != nil {
			if err := r.Register(puzzle.Key{Day: s.Day, Part: puzzle.PartTwo}, s.PartTwo); err != nil {
				return nil, err
			}
		}
	}
	return r, nil
}

// Register adds a solver to the registry.
// Registering a second solver under the same key fails rather than
// overwriting the first.
func (r *Registry) Register(key puzzle.Key, fn puzzle.Func) error {
	if !key.Day.Valid() || !key.Part.Valid() {
		return fmt.Errorf("invalid puzzle key %s", key)
	}
	if fn == nil {
		return fmt.Errorf("nil solver for %s", key)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.solvers[key]; exists {
		return fmt.Errorf("duplicate solver for %s", key)
	}
	r.solvers[key] = fn
	return nil
}

// Lookup resolves a key to its solver. There are no partial matches: a key
// either has exactly one solver or fails with UnknownPuzzleError.
func (r *Registry) Lookup(key puzzle.Key) (puzzle.Func, error) {
	r.mu.RLock()
	fn, ok := r.solvers[key]
	r.mu.RUnlock()

	if !ok {
		return nil, &puzzle.UnknownPuzzleError{Key: key}
	}
	return fn, nil
}

// Keys returns the registered keys ordered by day, then part.
func (r *Registry) Keys() []puzzle.Key {
	r.mu.RLock()
	keys := make([]puzzle.Key, 0, len(r.solvers))
	for k := range r.solvers {
		keys = append(keys, k)
	}
	r.mu.RUnlock()

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Day != keys[j].Day {
			return keys[i].Day < keys[j].Day
		}
		return keys[i].Part < keys[j].Part
	})
	return keys
}
