package maze

import (
	"strings"

	"github.com/katalvlaran/pathkit/puzzle"
)

// Solver answers a maze puzzle in two parts:
//
//	Part 1: cost of the cheapest orthogonal route, found with A*.
//	Part 2: step count when diagonal moves are allowed, found with BFS.
type Solver struct{}

func (Solver) Part1(in puzzle.Input) (any, error) {
	return solve(in, AStar, false)
}

func (Solver) Part2(in puzzle.Input) (any, error) {
	return solve(in, BFS, true)
}

func solve(in puzzle.Input, alg Algorithm, diagonal bool) (any, error) {
	m, err := Parse(strings.Join(in.Lines, "\n"))
	if err != nil {
		return nil, err
	}
	res, err := m.Solve(alg, diagonal)
	if err != nil {
		return nil, err
	}
	return res.Cost, nil
}
