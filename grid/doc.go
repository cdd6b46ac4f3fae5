// Package grid provides the 2-D integer coordinate and direction types used
// to build neighbor functions for grid puzzles, plus a rectangular rune Grid.
//
// What:
//
//   - Coord{Row, Col}: vector arithmetic (Add, Sub, Neg) and neighborhoods.
//   - Direction: North, South, East, West as unit vectors
//     (north = row-1, south = row+1, west = col-1, east = col+1).
//   - Neighbors: the 8 surrounding coords (Moore neighborhood), no bounds.
//   - NeighborsLimited(corner): the same 8, clipped to [(0,0), corner].
//   - Grid: a validated rectangular block of runes with lookup helpers and
//     connected-region analysis under Conn4 or Conn8.
//
// Coord and Direction are plain values; every method is a pure function of
// its receiver and arguments.
//
// Errors:
//
//   - ErrInvalidOperand: Shift/Unshift received a value that is neither a
//     Coord nor a Direction (subtraction accepts only Coord).
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidDirection: ParseDirection got an unknown rune.
//
// Complexity: all Coord operations are O(1); Grid construction and region
// analysis are O(W×H).
package grid
