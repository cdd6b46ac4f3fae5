// Package pathkit is a small generic toolkit for shortest-path search over
// caller-described state spaces, aimed at grid and map puzzles.
//
// What is pathkit?
//
//	Three interchangeable engines over any comparable state type:
//		• bfs      – fewest edges
//		• dijkstra – cheapest path for non-negative costs (plus a FIFO unit-cost variant)
//		• astar    – cheapest path guided by a heuristic
//
//	The caller supplies neighbor enumeration, edge cost and (for A*) a
//	heuristic. No graph is ever stored by the library.
//
// Layout:
//
//	core/     - shared contracts: Cost, Neighbors, CostFunc, Heuristic, Result,
//	            Adjacency, Predecessors, sentinel errors, functional options
//	grid/     - Coord, Direction, Moore neighborhoods, rectangular rune Grid
//	bfs/      - breadth-first search
//	dijkstra/ - Dijkstra, priority-ordered and FIFO
//	astar/    - A* with predecessor-map reconstruction
//	maze/     - text mazes wired to all three engines
//	puzzle/   - puzzle input loader
//	runner/   - day registry and two-part runner
//	cmd/aoc   - command line front end
//
// Quick example:
//
//	adj := core.Adjacency[string]{"A": {"B", "C"}, "C": {"D"}}
//	res, err := bfs.SearchAdjacency("A", "D", adj)
//	// res.Path == [A C D], res.Cost == 2
//
// Every search runs on the calling goroutine and owns all of its state, so
// concurrent searches need no coordination.
//
//	go get github.com/katalvlaran/pathkit
package pathkit
