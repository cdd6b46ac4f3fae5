package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/pathkit/core"
	"github.com/katalvlaran/pathkit/internal/frontier"
)

// SearchFIFO explores paths in discovery order while accumulating cost.
//
// It returns the first path that dequeues at goal, which is the cheapest
// only when every edge costs the same. For arbitrary non-negative weights
// use Search. Signature, errors and options match Search.
//
// Complexity: O(V + E) time and space.
func SearchFIFO[S comparable, G any, C core.Cost](
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

	queue := frontier.NewFIFO[*frontier.Node[S, C]]()
	queue.Push(frontier.Root[S, C](start))
	visited := make(map[S]bool)
	expanded := 0
	o.Logger.Debug("dijkstra: fifo search started", "start", start, "goal", goal)

	for queue.Len() > 0 {
		cur, _ := queue.Pop()
		if cur.State == goal {
			o.Logger.Debug("dijkstra: goal reached", "cost", cur.Cost, "expanded", expanded)
			return core.Result[S, C]{Path: cur.Path(), Cost: cur.Cost, Expanded: expanded}, nil
		}
		if visited[cur.State] {
			continue
		}
		visited[cur.State] = true

		expanded++
		if err := o.Step(expanded); err != nil {
			return core.Result[S, C]{Expanded: expanded}, err
		}
		for nbr := range next(cur.State, graph) {
			w, err := edgeCost(cost, graph, nbr, cur.State)
			if err != nil {
				return core.Result[S, C]{Expanded: expanded}, err
			}
			queue.Push(cur.Extend(nbr, cur.Cost+w))
		}
	}

	o.Logger.Debug("dijkstra: frontier exhausted", "expanded", expanded)
	return core.Result[S, C]{Expanded: expanded}, fmt.Errorf("dijkstra: %w after %d expansions", core.ErrUnsolvable, expanded)
}

// SearchAdjacencyFIFO runs SearchFIFO over a plain adjacency map.
func SearchAdjacencyFIFO[S comparable, C core.Cost](
	start, goal S,
	adj core.Adjacency[S],
	cost core.CostFunc[S, core.Adjacency[S], C],
	opts ...core.Option,
) (core.Result[S, C], error) {
	return SearchFIFO(start, goal, adj, core.MappingNeighbors[S](), cost, opts...)
}
