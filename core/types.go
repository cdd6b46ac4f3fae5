package core

import (
	"errors"
	"iter"

	"golang.org/x/exp/constraints"
)

// Sentinel errors shared by all search engines.
var (
	// ErrUnsolvable indicates the frontier was exhausted without reaching the goal.
	ErrUnsolvable = errors.New("core: no path found")

	// ErrExpansionLimit indicates the search stopped after MaxExpansions expansions.
	ErrExpansionLimit = errors.New("core: expansion limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("core: invalid option supplied")
)

// Cost is the set of numeric types usable as edge and path costs.
// They must be addable and totally ordered.
type Cost interface {
	constraints.Integer | constraints.Float
}

// Neighbors enumerates the states reachable in one step from current.
//
// graph is the search context: the caller's own graph for bfs and dijkstra,
// the live Predecessors map for astar. Implementations must not mutate it.
type Neighbors[S comparable, G any] func(current S, graph G) iter.Seq[S]

// CostFunc returns the non-negative cost of the edge from → to.
type CostFunc[S comparable, G any, C Cost] func(graph G, to, from S) C

// Heuristic estimates the remaining cost from current to goal.
// It must never overestimate for A* to stay optimal; this is not checked.
type Heuristic[S comparable, C Cost] func(current, goal S) C

// Result is the outcome of a successful search.
//   - Path: states from start to goal, both inclusive.
//   - Cost: total cost of Path.
//   - Expanded: number of states whose neighbors were enumerated.
type Result[S comparable, C Cost] struct {
	Path     []S
	Cost     C
	Expanded int
}

// Len returns the number of edges on the path.
func (r Result[S, C]) Len() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}
