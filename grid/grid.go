package grid

import (
	"strings"
	"unicode/utf8"
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, S, W, E.
	Conn4 Connectivity = iota
	// Conn8 uses the full Moore neighborhood.
	Conn8
)

// Grid is a rectangular block of runes addressed by Coord.
// cells[row][col] holds the rune at Coord{row, col}.
type Grid struct {
	cells [][]rune
	width int
}

// NewGrid builds a Grid from non-empty lines of equal rune length.
// It copies the input. Returns ErrEmptyGrid if there are no rows or the
// first row is empty, ErrNonRectangular if any row length differs.
//
// Complexity: O(W×H) time and memory.
func NewGrid(lines []string) (*Grid, error) {
	if len(lines) == 0 || lines[0] == "" {
		return nil, ErrEmptyGrid
	}
	w := utf8.RuneCountInString(lines[0])
	cells := make([][]rune, len(lines))
	for row, line := range lines {
		r := []rune(line)
		if len(r) != w {
			return nil, ErrNonRectangular
		}
		cells[row] = r
	}

	return &Grid{cells: cells, width: w}, nil
}

// Height returns the number of rows.
func (g *Grid) Height() int { return len(g.cells) }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Corner returns the bottom-right coord, suitable for NeighborsLimited.
func (g *Grid) Corner() Coord {
	return Coord{Row: g.Height() - 1, Col: g.width - 1}
}

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Height() && c.Col >= 0 && c.Col < g.width
}

// At returns the rune at c, or 0 when c is out of bounds.
func (g *Grid) At(c Coord) rune {
	if !g.InBounds(c) {
		return 0
	}
	return g.cells[c.Row][c.Col]
}

// Set replaces the rune at c. Out-of-bounds coords are ignored.
func (g *Grid) Set(c Coord, r rune) {
	if g.InBounds(c) {
		g.cells[c.Row][c.Col] = r
	}
}

// Find returns the first coord holding r in row-major order.
func (g *Grid) Find(r rune) (Coord, bool) {
	for row, line := range g.cells {
		for col, v := range line {
			if v == r {
				return Coord{Row: row, Col: col}, true
			}
		}
	}
	return Coord{}, false
}

// All returns every coord holding r in row-major order.
func (g *Grid) All(r rune) []Coord {
	var out []Coord
	for row, line := range g.cells {
		for col, v := range line {
			if v == r {
				out = append(out, Coord{Row: row, Col: col})
			}
		}
	}
	return out
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	cells := make([][]rune, len(g.cells))
	for i, line := range g.cells {
		cells[i] = append([]rune(nil), line...)
	}
	return &Grid{cells: cells, width: g.width}
}

// Lines returns the grid as one string per row.
func (g *Grid) Lines() []string {
	out := make([]string, len(g.cells))
	for i, line := range g.cells {
		out[i] = string(line)
	}
	return out
}

// String joins Lines with newlines.
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

// adjacent returns the in-bounds neighbors of c under conn.
func (g *Grid) adjacent(c Coord, conn Connectivity) []Coord {
	if conn == Conn8 {
		return c.NeighborsLimited(g.Corner())
	}
	out := make([]Coord, 0, 4)
	for _, n := range c.Orthogonal() {
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}
