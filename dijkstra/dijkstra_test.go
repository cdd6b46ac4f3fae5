package dijkstra_test

import (
	"context"
	"errors"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathkit/core"
	"github.com/katalvlaran/pathkit/dijkstra"
	"github.com/katalvlaran/pathkit/grid"
)

// costMap prices edges from a (from, to) lookup table.
func costMap[C core.Cost](m map[[2]string]C) core.CostFunc[string, core.Adjacency[string], C] {
	return func(_ core.Adjacency[string], to, from string) C {
		return m[[2]string{from, to}]
	}
}

func unitCost(core.Adjacency[string], string, string) int { return 1 }

// ------------------------------------------------------------------------
// 1. Priority-ordered Search
// ------------------------------------------------------------------------

// TestDijkstra_FasterPath prefers two cheap edges over one expensive edge.
func TestDijkstra_FasterPath(t *testing.T) {
	adj := core.Adjacency[string]{
		"A": {"B", "C"},
		"B": {"C"},
	}
	cost := costMap(map[[2]string]float64{
		{"A", "B"}: 1,
		{"B", "C"}: 1,
		{"A", "C"}: 3,
	})

	res, err := dijkstra.SearchAdjacency("A", "C", adj, cost)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Path)
	assert.Equal(t, 2.0, res.Cost)
}

// TestDijkstra_NoSolution exhausts the reachable graph.
func TestDijkstra_NoSolution(t *testing.T) {
	adj := core.Adjacency[string]{
		"A": {"B", "E"},
		"C": {"D"},
		"E": {"A", "B"},
	}

	_, err := dijkstra.SearchAdjacency("A", "D", adj, unitCost)
	require.ErrorIs(t, err, core.ErrUnsolvable)
}

// TestDijkstra_StartIsGoal returns a zero-cost single-state path.
func TestDijkstra_StartIsGoal(t *testing.T) {
	res, err := dijkstra.SearchAdjacency("A", "A", core.Adjacency[string]{}, unitCost)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Path)
	assert.Equal(t, 0, res.Cost)
}

// TestDijkstra_DirectedDetour breaks a cost tie between A→B→D and A→C→B→D.
func TestDijkstra_DirectedDetour(t *testing.T) {
	// A→B(2), A→C(1), C→B(1), B→D(3), C→D(5)
	adj := core.Adjacency[string]{}
	costs := map[[2]string]int{}
	for _, e := range []struct {
		from, to string
		w        int
	}{
		{"A", "B", 2}, {"A", "C", 1}, {"C", "B", 1}, {"B", "D", 3}, {"C", "D", 5},
	} {
		adj.AddEdge(e.from, e.to)
		costs[[2]string{e.from, e.to}] = e.w
	}

	res, err := dijkstra.SearchAdjacency("A", "D", adj, costMap(costs))
	require.NoError(t, err)
	assert.Equal(t, 5, res.Cost)
	// both A→B→D and A→C→B→D cost 5; the earlier-discovered one wins
	assert.Equal(t, []string{"A", "B", "D"}, res.Path)
}

// TestDijkstra_ZeroCostEdges handles free edges without looping.
func TestDijkstra_ZeroCostEdges(t *testing.T) {
	adj := core.Adjacency[string]{}
	adj.AddUndirected("A", "B")
	adj.AddUndirected("B", "C")
	free := func(core.Adjacency[string], string, string) int { return 0 }

	res, err := dijkstra.SearchAdjacency("A", "C", adj, free)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Cost)
	assert.Equal(t, []string{"A", "B", "C"}, res.Path)
}

// TestDijkstra_NegativeCost fails fast with ErrNegativeCost.
func TestDijkstra_NegativeCost(t *testing.T) {
	adj := core.Adjacency[string]{"A": {"B"}}
	neg := func(core.Adjacency[string], string, string) int { return -5 }

	_, err := dijkstra.SearchAdjacency("A", "B", adj, neg)
	require.ErrorIs(t, err, dijkstra.ErrNegativeCost)
	assert.Contains(t, err.Error(), "A→B")

	_, err = dijkstra.SearchAdjacencyFIFO("A", "B", adj, neg)
	require.ErrorIs(t, err, dijkstra.ErrNegativeCost)
}

// TestDijkstra_WeightedGrid crosses a grid where one column is expensive.
func TestDijkstra_WeightedGrid(t *testing.T) {
	g, err := grid.NewGrid([]string{
		"1191",
		"1191",
		"1111",
	})
	require.NoError(t, err)
	next := func(c grid.Coord, g *grid.Grid) iter.Seq[grid.Coord] {
		return func(yield func(grid.Coord) bool) {
			for _, n := range c.Orthogonal() {
				if g.InBounds(n) && !yield(n) {
					return
				}
			}
		}
	}
	enter := func(g *grid.Grid, to, _ grid.Coord) int { return int(g.At(to) - '0') }

	goal := grid.Coord{Row: 0, Col: 3}
	res, err := dijkstra.Search(grid.Coord{}, goal, g, next, enter)
	require.NoError(t, err)
	// around the expensive column: 7 steps of cost 1
	assert.Equal(t, 7, res.Cost)
	assert.Equal(t, 7, res.Len())
	assert.Equal(t, grid.Coord{}, res.Path[0])
	assert.Equal(t, goal, res.Path[len(res.Path)-1])
	for _, c := range res.Path {
		assert.NotEqual(t, '9', g.At(c), "path crosses %v", c)
	}
}

// TestDijkstra_Idempotent repeats a search with many equal-cost routes.
func TestDijkstra_Idempotent(t *testing.T) {
	adj := core.Adjacency[int]{}
	for i := 0; i < 30; i++ {
		adj.AddEdge(i, i+1)
		adj.AddEdge(i, i+2)
		adj.AddEdge(i, (i*5)%32)
	}
	cost := func(_ core.Adjacency[int], to, from int) int { return (to + from) % 3 }

	first, err := dijkstra.SearchAdjacency(0, 31, adj, cost)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := dijkstra.SearchAdjacency(0, 31, adj, cost)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

// TestDijkstra_Options exercises the shared core options.
func TestDijkstra_Options(t *testing.T) {
	adj := core.Adjacency[string]{}
	// A→A'→B→B'→C→C'→D→D'→E
	for _, s := range []string{"A", "B", "C", "D"} {
		adj.AddEdge(s, s+"'")
		adj.AddEdge(s+"'", string(rune(s[0]+1)))
	}

	_, err := dijkstra.SearchAdjacency("A", "E", adj, unitCost, core.WithMaxExpansions(2))
	require.ErrorIs(t, err, core.ErrExpansionLimit)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dijkstra.SearchAdjacency("A", "E", adj, unitCost, core.WithContext(ctx))
	require.True(t, errors.Is(err, context.Canceled), "got %v", err)

	res, err := dijkstra.SearchAdjacency("A", "E", adj, unitCost)
	require.NoError(t, err)
	assert.Equal(t, 8, res.Cost)
}

// ------------------------------------------------------------------------
// 2. FIFO-ordered SearchFIFO
// ------------------------------------------------------------------------

// TestDijkstraFIFO_UnitCost matches BFS when every edge costs 1.
func TestDijkstraFIFO_UnitCost(t *testing.T) {
	adj := core.Adjacency[string]{
		"A": {"B", "C"},
		"C": {"D"},
	}

	res, err := dijkstra.SearchAdjacencyFIFO("A", "D", adj, unitCost)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "D"}, res.Path)
	assert.Equal(t, 2, res.Cost)

	_, err = dijkstra.SearchAdjacencyFIFO("D", "A", adj, unitCost)
	require.ErrorIs(t, err, core.ErrUnsolvable)
}

// TestDijkstraFIFO_WeightedIsNotOptimal documents why Search must be used for weights.
func TestDijkstraFIFO_WeightedIsNotOptimal(t *testing.T) {
	adj := core.Adjacency[string]{
		"A": {"B", "C"},
		"B": {"C"},
	}
	cost := costMap(map[[2]string]int{
		{"A", "B"}: 1,
		{"B", "C"}: 1,
		{"A", "C"}: 3,
	})

	fifo, err := dijkstra.SearchAdjacencyFIFO("A", "C", adj, cost)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, fifo.Path)
	assert.Equal(t, 3, fifo.Cost)

	best, err := dijkstra.SearchAdjacency("A", "C", adj, cost)
	require.NoError(t, err)
	assert.Less(t, best.Cost, fifo.Cost)
}
