package grid

import "errors"

var (
	// ErrInvalidOperand indicates arithmetic with a value that is not a Coord or Direction.
	ErrInvalidOperand = errors.New("grid: coords can only be combined with coords and directions")
	// ErrInvalidDirection indicates a rune that does not name a direction.
	ErrInvalidDirection = errors.New("grid: invalid direction")
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)
