package frontier

import "github.com/katalvlaran/pathkit/core"

// Node is one step of a search path. Nodes share their prefix, so extending
// a path is O(1) and only the winning path is ever materialized.
type Node[S comparable, C core.Cost] struct {
	State S
	Cost  C   // accumulated cost from the root
	Depth int // number of edges from the root
	prev  *Node[S, C]
}

// Root starts a path at state with zero cost.
func Root[S comparable, C core.Cost](state S) *Node[S, C] {
	return &Node[S, C]{State: state}
}

// Extend returns a new path ending in state with total cost cost.
func (n *Node[S, C]) Extend(state S, cost C) *Node[S, C] {
	return &Node[S, C]{State: state, Cost: cost, Depth: n.Depth + 1, prev: n}
}

// Path returns the states from the root to n, inclusive.
func (n *Node[S, C]) Path() []S {
	path := make([]S, n.Depth+1)
	for cur := n; cur != nil; cur = cur.prev {
		path[cur.Depth] = cur.State
	}
	return path
}
