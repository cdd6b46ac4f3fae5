// Package astar finds the cheapest path between two states using A* search
// guided by a caller-supplied heuristic.
//
// What
//
//   - The frontier holds states keyed by f = g + h, where g is the best known
//     cost from start and h the heuristic estimate to goal.
//   - A neighbor is relaxed only when start → current → neighbor is strictly
//     cheaper than its best known cost. Relaxing records the predecessor,
//     updates g and pushes the neighbor with its new f.
//   - Heap entries whose g has since been improved are stale and skipped on
//     pop (lazy decrease-key).
//   - When goal is popped the path is rebuilt from the predecessor map and
//     returned together with g(goal).
//   - An exhausted frontier fails with core.ErrUnsolvable.
//
// Predecessor map
//
//	Neighbors and CostFunc receive the live core.Predecessors map as their
//	context argument, so move rules may depend on how a state was reached
//	(e.g. "no more than three steps in a straight line"). They must treat it
//	as read-only.
//
// Heuristic
//
//	The result is optimal when h never overestimates the remaining cost
//	(admissible). This is not checked. With h ≡ 0 the search degrades to
//	Dijkstra.
//
// Complexity (V = reachable states, E = edges among them)
//
//   - Time:   O((V + E) log V) for a consistent heuristic.
//   - Memory: O(V) for best costs and predecessors, O(E) heap entries.
//
// A* does not terminate on an infinite state space when the goal is
// unreachable. Bound such searches with core.WithMaxExpansions or a
// cancellable context.
package astar
