package grid

import (
	"fmt"
	"iter"
)

// Coord is a (row, column) pair. Rows grow downward, columns to the right.
type Coord struct {
	Row, Col int
}

// Vector is anything that can offset a Coord: another Coord or a Direction.
type Vector interface {
	Delta() Coord
}

// mooreOffsets are the 8 neighbor offsets, row-major from the top-left.
var mooreOffsets = [8]Coord{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// String formats c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Delta lets a Coord act as a Vector.
func (c Coord) Delta() Coord { return c }

// Add offsets c by v: vector sum for a Coord, one unit step for a Direction.
func (c Coord) Add(v Vector) Coord {
	d := v.Delta()
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Sub returns c - o.
func (c Coord) Sub(o Coord) Coord {
	return Coord{Row: c.Row - o.Row, Col: c.Col - o.Col}
}

// Neg flips both signs.
func (c Coord) Neg() Coord {
	return Coord{Row: -c.Row, Col: -c.Col}
}

// Shift is Add for dynamically typed operands, such as values decoded from
// puzzle text. Only Coord and Direction are accepted; anything else yields
// ErrInvalidOperand.
func (c Coord) Shift(v any) (Coord, error) {
	switch o := v.(type) {
	case Coord:
		return c.Add(o), nil
	case Direction:
		if !o.Valid() {
			return Coord{}, fmt.Errorf("%w: unknown %v", ErrInvalidOperand, o)
		}
		return c.Add(o), nil
	}
	return Coord{}, fmt.Errorf("%w: cannot add %T", ErrInvalidOperand, v)
}

// Unshift is Sub for dynamically typed operands. Only a Coord may be
// subtracted; anything else yields ErrInvalidOperand.
func (c Coord) Unshift(v any) (Coord, error) {
	o, ok := v.(Coord)
	if !ok {
		return Coord{}, fmt.Errorf("%w: cannot subtract %T", ErrInvalidOperand, v)
	}
	return c.Sub(o), nil
}

// Neighbors returns the 8 surrounding coords. No bounds are applied, so the
// result always has exactly 8 elements and never contains c.
func (c Coord) Neighbors() []Coord {
	out := make([]Coord, 0, len(mooreOffsets))
	for _, d := range mooreOffsets {
		out = append(out, c.Add(d))
	}
	return out
}

// NeighborsLimited returns the Moore neighbors of c that fall inside the
// closed rectangle [(0,0), corner]. An interior point has 8, a point on an
// edge 5, a corner point 3.
//
// corner is not validated; a negative corner gives an unspecified (but
// harmless) result.
func (c Coord) NeighborsLimited(corner Coord) []Coord {
	out := make([]Coord, 0, len(mooreOffsets))
	for _, n := range c.Neighbors() {
		if n.Row < 0 || n.Col < 0 {
			continue
		}
		if n.Row > corner.Row || n.Col > corner.Col {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Orthogonal returns the 4 edge-sharing neighbors in N, S, W, E order.
func (c Coord) Orthogonal() []Coord {
	return []Coord{c.Add(North), c.Add(South), c.Add(West), c.Add(East)}
}

// Steps yields each Direction with the coord one step that way.
func (c Coord) Steps() iter.Seq2[Direction, Coord] {
	return func(yield func(Direction, Coord) bool) {
		for _, d := range Directions {
			if !yield(d, c.Add(d)) {
				return
			}
		}
	}
}

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|.
func Manhattan(a, b Coord) int {
	d := a.Sub(b)
	return abs(d.Row) + abs(d.Col)
}

// Chebyshev returns max(|a.Row-b.Row|, |a.Col-b.Col|), the step count
// between a and b when diagonal moves are allowed.
func Chebyshev(a, b Coord) int {
	d := a.Sub(b)
	return max(abs(d.Row), abs(d.Col))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
