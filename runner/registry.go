package runner

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/katalvlaran/pathkit/puzzle"
)

var (
	// ErrDuplicateDay indicates Register was called twice for one day.
	ErrDuplicateDay = errors.New("runner: day already registered")
	// ErrUnknownDay indicates Lookup for a day that was never registered.
	ErrUnknownDay = errors.New("runner: unknown day")
	// ErrPanic wraps a value recovered from a panicking part.
	ErrPanic = errors.New("runner: part panicked")
)

// Solver answers both parts of one day's puzzle.
type Solver interface {
	Part1(in puzzle.Input) (any, error)
	Part2(in puzzle.Input) (any, error)
}

// Registry maps day names to solvers. The zero value is not usable; call
// NewRegistry.
type Registry struct {
	solvers map[string]Solver
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{solvers: make(map[string]Solver)}
}

// Register adds s under day.
func (r *Registry) Register(day string, s Solver) error {
	if _, ok := r.solvers[day]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateDay, day)
	}
	r.solvers[day] = s
	return nil
}

// Lookup returns the solver registered under day.
func (r *Registry) Lookup(day string) (Solver, error) {
	s, ok := r.solvers[day]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownDay, day, r.Days())
	}
	return s, nil
}

// Days returns every registered day in sorted order.
func (r *Registry) Days() []string {
	return slices.Sorted(maps.Keys(r.solvers))
}
