// Package bfs finds the shortest path by edge count between two states of a
// caller-described graph.
//
// What
//
//   - The frontier is a FIFO queue of search paths (not bare states), so the
//     winning path is available the moment the goal is dequeued; no separate
//     reconstruction pass is needed.
//   - A dequeued path whose state equals the goal is returned at once with
//     cost = len(path) - 1.
//   - A dequeued path whose state was already expanded is dropped (lazy
//     deletion). Skipping on dequeue rather than on enqueue keeps neighbor
//     functions free of any visited bookkeeping.
//   - When the queue empties the reachable graph has been fully explored and
//     the search fails with core.ErrUnsolvable.
//
// Why
//
//	BFS expands states in non-decreasing depth order, so the first path to
//	reach the goal has the fewest edges. Every edge counts as 1.
//
// Determinism
//
//	Neighbors are enqueued in the order the Neighbors function yields them,
//	so a deterministic neighbor function gives an identical path on every run.
//
// Complexity (V = reachable states, E = edges among them)
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) queued path nodes; paths share prefixes.
//
// Usage
//
//	adj := core.Adjacency[string]{"A": {"B", "C"}, "C": {"D"}}
//	res, err := bfs.SearchAdjacency("A", "D", adj)
//	if errors.Is(err, core.ErrUnsolvable) {
//	    // no route
//	}
//	fmt.Println(res.Path, res.Cost) // [A C D] 2
//
// Options are the shared core options (WithContext, WithMaxExpansions,
// WithLogger, WithOnExpand).
package bfs
