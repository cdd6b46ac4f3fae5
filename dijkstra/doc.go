// Package dijkstra finds the cheapest path between two states of a
// caller-described graph with non-negative edge costs.
//
// Two exploration orders are provided. They are different algorithms and
// are deliberately kept apart:
//
//   - Search: the frontier is a min-heap of search paths keyed by
//     accumulated cost. The first time a state is popped its cost is
//     minimal, because every edge is non-negative and the heap always yields
//     the globally cheapest pending path. The path returned when the goal is
//     popped is therefore optimal. Use this one.
//
//   - SearchFIFO: the frontier is a plain queue in discovery order. It
//     accumulates costs exactly like Search but returns the first path that
//     reaches the goal by depth, so it is only correct when all edges cost the
//     same (the unit-cost case, where it behaves like BFS with a cost
//     accumulator). Do not rely on it for weighted graphs.
//
// Shared behavior:
//
//   - A popped path whose state was already expanded is dropped (lazy deletion).
//   - An exhausted frontier fails with core.ErrUnsolvable.
//   - A negative edge cost fails fast with ErrNegativeCost.
//   - Search only pushes a path that is strictly cheaper than the best known
//     cost for its state (lazy decrease-key); stale heap entries are skipped
//     when popped.
//   - Equal-cost paths pop in insertion order, so results are reproducible
//     for a deterministic neighbor function.
//
// Complexity:
//
//   - Time:  O((V + E) log V) for Search, O(V + E) for SearchFIFO.
//   - Space: O(V + E); each heap entry is one path node sharing its prefix.
//
// Example usage:
//
//	costs := map[[2]string]int{{"A", "B"}: 1, {"B", "C"}: 1, {"A", "C"}: 3}
//	res, err := dijkstra.SearchAdjacency("A", "C", adj,
//	    func(_ core.Adjacency[string], to, from string) int { return costs[[2]string{from, to}] })
//	// res.Path == [A B C], res.Cost == 2
package dijkstra
