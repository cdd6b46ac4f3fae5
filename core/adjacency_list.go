package core

import (
	"iter"
	"slices"
)

// Adjacency is a directed graph stored as state → successors.
// Successors are yielded in slice order, which keeps searches deterministic.
type Adjacency[S comparable] map[S][]S

// AddEdge appends to as a successor of from. Duplicates are ignored.
//
// Complexity: O(deg(from))
func (a Adjacency[S]) AddEdge(from, to S) {
	if slices.Contains(a[from], to) {
		return
	}
	a[from] = append(a[from], to)
}

// AddUndirected links x and y in both directions.
func (a Adjacency[S]) AddUndirected(x, y S) {
	a.AddEdge(x, y)
	a.AddEdge(y, x)
}

// Next yields the successors of current in graph. A state with no entry
// yields nothing. The receiver is ignored so that Next can be used as a
// method value or through MappingNeighbors.
func (Adjacency[S]) Next(current S, graph Adjacency[S]) iter.Seq[S] {
	return func(yield func(S) bool) {
		for _, next := range graph[current] {
			if !yield(next) {
				return
			}
		}
	}
}

// MappingNeighbors returns the default Neighbors for an Adjacency graph.
func MappingNeighbors[S comparable]() Neighbors[S, Adjacency[S]] {
	return Adjacency[S](nil).Next
}
