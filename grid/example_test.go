package grid_test

import (
	"fmt"

	"github.com/katalvlaran/pathkit/grid"
)

// ExampleCoord_NeighborsLimited clips the Moore neighborhood of a corner cell.
func ExampleCoord_NeighborsLimited() {
	corner := grid.Coord{Row: 2, Col: 2}
	fmt.Println(grid.Coord{Row: 0, Col: 0}.NeighborsLimited(corner))
	fmt.Println(len(grid.Coord{Row: 1, Col: 1}.NeighborsLimited(corner)))
	// Output:
	// [(0,1) (1,0) (1,1)]
	// 8
}

// ExampleCoord_Add walks a short route of directions.
func ExampleCoord_Add() {
	pos := grid.Coord{Row: 2, Col: 2}
	for _, d := range []grid.Direction{grid.North, grid.North, grid.East, grid.South} {
		pos = pos.Add(d)
	}
	fmt.Println(pos)
	// Output:
	// (1,3)
}
