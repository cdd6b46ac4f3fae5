package astar

import (
	"fmt"

	"github.com/katalvlaran/pathkit/core"
	"github.com/katalvlaran/pathkit/internal/frontier"
)

// item is a heap entry: a state and the g it was pushed with.
type item[S comparable, C core.Cost] struct {
	state S
	g     C
}

// runner carries the per-call search state.
type runner[S comparable, C core.Cost] struct {
	start, goal S
	h           core.Heuristic[S, C]
	cost        core.CostFunc[S, core.Predecessors[S], C]
	next        core.Neighbors[S, core.Predecessors[S]]
	opts        core.Options

	pq *frontier.Priority[item[S, C], C]
	// best is g per state; a missing key means "not reached yet".
	best  map[S]C
	paths core.Predecessors[S]

	expanded int
}

// Search runs A* from start to goal.
//
// h estimates the remaining cost, cost prices the edge from → to, next
// enumerates neighbors. cost and next are handed the predecessor map built
// so far.
//
// Returns:
//
//   - core.Result with the path (start and goal inclusive) and g(goal).
//   - core.ErrUnsolvable (wrapped) when every reachable state is exhausted.
//   - core.ErrOptionViolation, core.ErrExpansionLimit or a context error
//     from the shared options.
func Search[S comparable, C core.Cost](
	start, goal S,
	h core.Heuristic[S, C],
	cost core.CostFunc[S, core.Predecessors[S], C],
	next core.Neighbors[S, core.Predecessors[S]],
	opts ...core.Option,
) (core.Result[S, C], error) {
	o, err := core.Apply(opts...)
	if err != nil {
		return core.Result[S, C]{}, err
	}

	r := &runner[S, C]{
		start: start,
		goal:  goal,
		h:     h,
		cost:  cost,
		next:  next,
		opts:  o,
		pq:    frontier.NewPriority[item[S, C], C](),
		best:  map[S]C{start: 0},
		paths: make(core.Predecessors[S]),
	}
	r.pq.Push(item[S, C]{state: start}, h(start, goal))
	o.Logger.Debug("astar: search started", "start", start, "goal", goal)

	return r.process()
}

// process pops the most promising state until goal is popped or the frontier
// runs dry.
func (r *runner[S, C]) process() (core.Result[S, C], error) {
	for r.pq.Len() > 0 {
		cur, _, _ := r.pq.Pop()
		if cur.state == r.goal {
			g := r.best[r.goal]
			r.opts.Logger.Debug("astar: goal reached", "cost", g, "expanded", r.expanded)
			return core.Result[S, C]{
				Path:     r.paths.Path(r.start, r.goal),
				Cost:     g,
				Expanded: r.expanded,
			}, nil
		}
		if cur.g > r.best[cur.state] {
			continue // stale
		}

		r.expanded++
		if err := r.opts.Step(r.expanded); err != nil {
			return core.Result[S, C]{Expanded: r.expanded}, err
		}
		r.relax(cur)
	}

	r.opts.Logger.Debug("astar: frontier exhausted", "expanded", r.expanded)
	return core.Result[S, C]{Expanded: r.expanded}, fmt.Errorf("astar: %w after %d expansions", core.ErrUnsolvable, r.expanded)
}

// relax offers every neighbor of cur a cheaper route through cur.
func (r *runner[S, C]) relax(cur item[S, C]) {
	for nbr := range r.next(cur.state, r.paths) {
		g := cur.g + r.cost(r.paths, nbr, cur.state)
		if known, ok := r.best[nbr]; ok && g >= known {
			continue
		}
		r.paths[nbr] = cur.state
		r.best[nbr] = g
		r.pq.Push(item[S, C]{state: nbr, g: g}, g+r.h(nbr, r.goal))
	}
}
