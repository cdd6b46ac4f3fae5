package maze

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/pathkit/astar"
	"github.com/katalvlaran/pathkit/bfs"
	"github.com/katalvlaran/pathkit/core"
	"github.com/katalvlaran/pathkit/dijkstra"
	"github.com/katalvlaran/pathkit/grid"
)

// Algorithm names a search engine.
type Algorithm string

const (
	AStar        Algorithm = "astar"
	BFS          Algorithm = "bfs"
	Dijkstra     Algorithm = "dijkstra"
	DijkstraFIFO Algorithm = "dijkstra-fifo"
)

// Algorithms lists every supported Algorithm.
var Algorithms = []Algorithm{AStar, BFS, Dijkstra, DijkstraFIFO}

// ErrUnknownAlgorithm indicates a name that is not in Algorithms.
var ErrUnknownAlgorithm = errors.New("maze: unknown algorithm")

// ParseAlgorithm validates name.
func ParseAlgorithm(name string) (Algorithm, error) {
	a := Algorithm(name)
	if !slices.Contains(Algorithms, a) {
		return "", fmt.Errorf("%w %q (want one of %v)", ErrUnknownAlgorithm, name, Algorithms)
	}
	return a, nil
}

// Solve finds a shortest route from Start to Target with alg. Diagonal
// steps are allowed when diagonal is set. A walled-off target fails with
// the engine's core.ErrUnsolvable once its frontier is exhausted.
func (m *Maze) Solve(alg Algorithm, diagonal bool, opts ...core.Option) (core.Result[grid.Coord, int], error) {
	switch alg {
	case AStar:
		h := grid.Manhattan
		if diagonal {
			h = grid.Chebyshev
		}
		return astar.Search(m.Start, m.Target, h,
			StepCost[core.Predecessors[grid.Coord]],
			Moves[core.Predecessors[grid.Coord]](m, diagonal),
			opts...)
	case BFS:
		return bfs.Search(m.Start, m.Target, m, Moves[*Maze](m, diagonal), opts...)
	case Dijkstra:
		return dijkstra.Search(m.Start, m.Target, m, Moves[*Maze](m, diagonal), StepCost[*Maze], opts...)
	case DijkstraFIFO:
		return dijkstra.SearchFIFO(m.Start, m.Target, m, Moves[*Maze](m, diagonal), StepCost[*Maze], opts...)
	}
	return core.Result[grid.Coord, int]{}, fmt.Errorf("%w %q", ErrUnknownAlgorithm, alg)
}
