package maze

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/pathkit/core"
	"github.com/katalvlaran/pathkit/grid"
)

// Tiles.
const (
	TileStart  = 'S'
	TileTarget = 'T'
	TileWall   = 'x'
	TileFloor  = '.'
)

var (
	// ErrInvalidTile indicates a rune that is not a maze tile.
	ErrInvalidTile = errors.New("maze: invalid tile")
	// ErrMissingEndpoint indicates a maze without exactly one S and one T.
	ErrMissingEndpoint = errors.New("maze: needs exactly one start and one target")
	// ErrNoRoute indicates ExpectedPath found no marked route next to the start.
	ErrNoRoute = errors.New("maze: no route marker next to start")
	// ErrBrokenRoute indicates a marked route that does not lead to the target.
	ErrBrokenRoute = errors.New("maze: route markers do not reach the target")
)

// Maze is a parsed rectangular maze.
type Maze struct {
	Start, Target grid.Coord
	tiles         *grid.Grid
}

// Parse reads a maze from text. Trailing newlines and carriage returns are
// ignored; rows must have equal length.
func Parse(text string) (*Maze, error) {
	text = strings.TrimRight(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	g, err := grid.NewGrid(strings.Split(text, "\n"))
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}

	m := &Maze{tiles: g}
	var starts, targets int
	for row, line := range g.Lines() {
		for col, r := range []rune(line) {
			c := grid.Coord{Row: row, Col: col}
			switch {
			case r == TileStart:
				m.Start = c
				starts++
			case r == TileTarget:
				m.Target = c
				targets++
			case r == TileWall, r == TileFloor, isArrow(r):
			default:
				return nil, fmt.Errorf("%w %q at %v", ErrInvalidTile, r, c)
			}
		}
	}
	if starts != 1 || targets != 1 {
		return nil, fmt.Errorf("%w: found %d S and %d T", ErrMissingEndpoint, starts, targets)
	}

	return m, nil
}

// Grid returns a copy of the underlying tiles.
func (m *Maze) Grid() *grid.Grid { return m.tiles.Clone() }

// Open reports whether c is inside the maze and not a wall.
func (m *Maze) Open(c grid.Coord) bool {
	return m.tiles.InBounds(c) && m.tiles.At(c) != TileWall
}

// Moves returns a neighbor function over m for any search context G.
// Without diagonal the order is N, S, W, E; with it, the Moore neighborhood
// in row-major order.
func Moves[G any](m *Maze, diagonal bool) core.Neighbors[grid.Coord, G] {
	return func(c grid.Coord, _ G) iter.Seq[grid.Coord] {
		var cand []grid.Coord
		if diagonal {
			cand = c.NeighborsLimited(m.tiles.Corner())
		} else {
			cand = c.Orthogonal()
		}
		return func(yield func(grid.Coord) bool) {
			for _, n := range cand {
				if m.Open(n) && !yield(n) {
					return
				}
			}
		}
	}
}

// StepCost prices every move at 1.
func StepCost[G any](G, grid.Coord, grid.Coord) int { return 1 }

// Reachable reports whether Target lies in the same open region as Start.
func (m *Maze) Reachable(diagonal bool) bool {
	conn := grid.Conn4
	if diagonal {
		conn = grid.Conn8
	}
	return m.tiles.Connected(m.Start, m.Target, func(r rune) bool { return r != TileWall }, conn)
}

// ExpectedPath follows the arrow markers from Start to Target. The first
// marker (or T) found east, north, south or west of S, in that order,
// starts the route.
func (m *Maze) ExpectedPath() ([]grid.Coord, error) {
	var cur grid.Coord
	found := false
	for _, d := range []grid.Direction{grid.East, grid.North, grid.South, grid.West} {
		cur = m.Start.Add(d)
		if r := m.tiles.At(cur); r == TileTarget || isArrow(r) {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrNoRoute
	}

	path := []grid.Coord{m.Start, cur}
	limit := m.tiles.Height() * m.tiles.Width()
	for cur != m.Target {
		r := m.tiles.At(cur)
		if !isArrow(r) || len(path) > limit {
			return nil, fmt.Errorf("%w: stopped at %v", ErrBrokenRoute, cur)
		}
		d, _ := grid.ParseDirection(r)
		cur = cur.Add(d)
		path = append(path, cur)
	}
	return path, nil
}

// Render draws path over the maze. Intermediate cells show the direction
// taken out of them (an arrow, or * for a diagonal step); paint, when not
// nil, decorates each drawn path cell.
func (m *Maze) Render(path []grid.Coord, paint func(string) string) string {
	if paint == nil {
		paint = func(s string) string { return s }
	}
	marks := make(map[grid.Coord]rune, len(path))
	for i := 1; i+1 < len(path); i++ {
		marks[path[i]] = arrow(path[i+1].Sub(path[i]))
	}

	var b strings.Builder
	for row, line := range m.tiles.Lines() {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col, r := range []rune(line) {
			if mark, ok := marks[grid.Coord{Row: row, Col: col}]; ok {
				b.WriteString(paint(string(mark)))
				continue
			}
			if isArrow(r) {
				r = TileFloor
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isArrow(r rune) bool {
	return r == '^' || r == 'v' || r == '<' || r == '>'
}

// arrow returns the marker for a unit step.
func arrow(step grid.Coord) rune {
	for _, d := range grid.Directions {
		if d.Delta() == step {
			return []rune("^v><")[d]
		}
	}
	return '*'
}
