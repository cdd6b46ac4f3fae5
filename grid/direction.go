package grid

import "fmt"

// Direction is a symbolic unit vector on the grid. It is not a state.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists every Direction in declaration order.
var Directions = [4]Direction{North, South, East, West}

// String returns "N", "S", "E" or "W".
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case South:
		return "S"
	case East:
		return "E"
	case West:
		return "W"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Valid reports whether d is one of North, South, East, West.
func (d Direction) Valid() bool {
	return d >= North && d <= West
}

// Delta returns the unit offset for d. Unknown values yield the zero Coord.
func (d Direction) Delta() Coord {
	switch d {
	case North:
		return Coord{Row: -1}
	case South:
		return Coord{Row: 1}
	case East:
		return Coord{Col: 1}
	case West:
		return Coord{Col: -1}
	}
	return Coord{}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return d
}

// TurnLeft rotates d a quarter turn counter-clockwise.
func (d Direction) TurnLeft() Direction {
	switch d {
	case North:
		return West
	case West:
		return South
	case South:
		return East
	case East:
		return North
	}
	return d
}

// TurnRight rotates d a quarter turn clockwise.
func (d Direction) TurnRight() Direction {
	return d.TurnLeft().Opposite()
}

// ParseDirection accepts N, S, E, W (either case) and the arrows ^ v > <.
func ParseDirection(r rune) (Direction, error) {
	switch r {
	case 'N', 'n', '^':
		return North, nil
	case 'S', 's', 'v':
		return South, nil
	case 'E', 'e', '>':
		return East, nil
	case 'W', 'w', '<':
		return West, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, r)
}
