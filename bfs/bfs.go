package bfs

import (
	"fmt"

	"github.com/katalvlaran/pathkit/core"
	"github.com/katalvlaran/pathkit/internal/frontier"
)

// walker encapsulates the mutable state of one search.
type walker[S comparable, G any] struct {
	goal     S
	graph    G
	next     core.Neighbors[S, G]
	opts     core.Options
	queue    *frontier.FIFO[*frontier.Node[S, int]]
	visited  map[S]bool
	expanded int
}

// Search runs breadth-first search from start until goal is dequeued.
// next enumerates neighbors of a state; graph is handed to it untouched.
//
// Returns core.ErrUnsolvable (wrapped) when goal is unreachable,
// core.ErrOptionViolation for bad options, core.ErrExpansionLimit or the
// context error when a configured bound stops the search.
func Search[S comparable, G any](start, goal S, graph G, next core.Neighbors[S, G], opts ...core.Option) (core.Result[S, int], error) {
	o, err := core.Apply(opts...)
	if err != nil {
		return core.Result[S, int]{}, err
	}

	w := &walker[S, G]{
		goal:    goal,
		graph:   graph,
		next:    next,
		opts:    o,
		queue:   frontier.NewFIFO[*frontier.Node[S, int]](),
		visited: make(map[S]bool),
	}
	w.queue.Push(frontier.Root[S, int](start))
	o.Logger.Debug("bfs: search started", "start", start, "goal", goal)

	return w.loop()
}

// SearchAdjacency runs Search over a plain adjacency map.
func SearchAdjacency[S comparable](start, goal S, adj core.Adjacency[S], opts ...core.Option) (core.Result[S, int], error) {
	return Search(start, goal, adj, core.MappingNeighbors[S](), opts...)
}

// loop processes the queue until the goal is found, the queue empties or a
// bound stops it.
func (w *walker[S, G]) loop() (core.Result[S, int], error) {
	for w.queue.Len() > 0 {
		cur, _ := w.queue.Pop()
		if cur.State == w.goal {
			w.opts.Logger.Debug("bfs: goal reached", "cost", cur.Depth, "expanded", w.expanded)
			return core.Result[S, int]{Path: cur.Path(), Cost: cur.Depth, Expanded: w.expanded}, nil
		}
		if w.visited[cur.State] {
			continue
		}
		w.visited[cur.State] = true

		w.expanded++
		if err := w.opts.Step(w.expanded); err != nil {
			return core.Result[S, int]{Expanded: w.expanded}, err
		}
		for nbr := range w.next(cur.State, w.graph) {
			w.queue.Push(cur.Extend(nbr, cur.Depth+1))
		}
	}

	w.opts.Logger.Debug("bfs: frontier exhausted", "expanded", w.expanded)
	return core.Result[S, int]{Expanded: w.expanded}, fmt.Errorf("bfs: %w after %d expansions", core.ErrUnsolvable, w.expanded)
}
