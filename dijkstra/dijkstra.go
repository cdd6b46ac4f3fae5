package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/pathkit/core"
	"github.com/katalvlaran/pathkit/internal/frontier"
)

// runner holds the mutable state for a single priority-ordered search.
type runner[S comparable, G any, C core.Cost] struct {
	goal  S
	graph G // caller's graph, handed to next and cost untouched
	next  core.Neighbors[S, G]
	cost  core.CostFunc[S, G, C]
	opts  core.Options

	// pq is a min-heap of paths keyed by accumulated cost.
	pq *frontier.Priority[*frontier.Node[S, C], C]
	// best is the cheapest known cost per state.
	best map[S]C
	// visited marks states whose cost is final.
	visited  map[S]bool
	expanded int
}

// Search computes the cheapest path from start to goal.
//
// next enumerates the neighbors of a state, cost prices the edge from → to.
// Both receive graph unchanged. Edge costs must be non-negative.
//
// Returns:
//
//   - core.Result with the path (start and goal inclusive) and its cost.
//   - core.ErrUnsolvable (wrapped) if the frontier empties first.
//   - ErrNegativeCost if cost returns a negative value.
//   - core.ErrOptionViolation, core.ErrExpansionLimit or a context error
//     from the shared options.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Search[S comparable, G any, C core.Cost](
	start, goal S,
	graph G,
	next core.Neighbors[S, G],
	cost core.CostFunc[S, G, C],
	opts ...core.Option,
) (core.Result[S, C], error) {
	o, err := core.Apply(opts...)
	if err != nil {
		return core.Result[S, C]{}, err
	}

	r := &runner[S, G, C]{
		goal:    goal,
		graph:   graph,
		next:    next,
		cost:    cost,
		opts:    o,
		pq:      frontier.NewPriority[*frontier.Node[S, C], C](),
		best:    map[S]C{start: 0},
		visited: make(map[S]bool),
	}
	r.pq.Push(frontier.Root[S, C](start), 0)
	o.Logger.Debug("dijkstra: search started", "start", start, "goal", goal)

	return r.process()
}

// SearchAdjacency runs Search over a plain adjacency map.
func SearchAdjacency[S comparable, C core.Cost](
	start, goal S,
	adj core.Adjacency[S],
	cost core.CostFunc[S, core.Adjacency[S], C],
	opts ...core.Option,
) (core.Result[S, C], error) {
	return Search(start, goal, adj, core.MappingNeighbors[S](), cost, opts...)
}

// process is the main loop: pop the cheapest path, stop at the goal,
// otherwise relax the outgoing edges of its state.
func (r *runner[S, G, C]) process() (core.Result[S, C], error) {
	for r.pq.Len() > 0 {
		cur, _, _ := r.pq.Pop()
		if cur.State == r.goal {
			r.opts.Logger.Debug("dijkstra: goal reached", "cost", cur.Cost, "expanded", r.expanded)
			return core.Result[S, C]{Path: cur.Path(), Cost: cur.Cost, Expanded: r.expanded}, nil
		}
		// Skip stale heap entries.
		if r.visited[cur.State] {
			continue
		}
		r.visited[cur.State] = true

		r.expanded++
		if err := r.opts.Step(r.expanded); err != nil {
			return core.Result[S, C]{Expanded: r.expanded}, err
		}
		if err := r.relax(cur); err != nil {
			return core.Result[S, C]{Expanded: r.expanded}, err
		}
	}

	r.opts.Logger.Debug("dijkstra: frontier exhausted", "expanded", r.expanded)
	return core.Result[S, C]{Expanded: r.expanded}, fmt.Errorf("dijkstra: %w after %d expansions", core.ErrUnsolvable, r.expanded)
}

// relax pushes every neighbor of cur that is reached more cheaply than before.
func (r *runner[S, G, C]) relax(cur *frontier.Node[S, C]) error {
	for nbr := range r.next(cur.State, r.graph) {
		w, err := edgeCost(r.cost, r.graph, nbr, cur.State)
		if err != nil {
			return err
		}
		newCost := cur.Cost + w
		// Strictly better only; equal costs keep the earlier path.
		if known, ok := r.best[nbr]; ok && newCost >= known {
			continue
		}
		r.best[nbr] = newCost
		r.pq.Push(cur.Extend(nbr, newCost), newCost)
	}
	return nil
}
