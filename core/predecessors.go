package core

import "slices"

// Predecessors maps each reached state to the state it was most cheaply
// reached from. Every state has at most one predecessor, so the map forms a
// tree rooted at the search start.
type Predecessors[S comparable] map[S]S

// Path walks predecessors back from goal and returns the states in
// start → goal order. The walk stops at start or at the first state with no
// recorded predecessor, whichever comes first.
//
// Complexity: O(len(path))
func (p Predecessors[S]) Path(start, goal S) []S {
	path := []S{goal}
	current := goal
	for current != start {
		prev, ok := p[current]
		if !ok {
			break
		}
		path = append(path, prev)
		current = prev
	}
	slices.Reverse(path)

	return path
}
