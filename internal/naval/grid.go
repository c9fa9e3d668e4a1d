// Package naval provides the board model for ship placement and area-of-effect
// compositing. It performs no I/O and has no external dependencies.
package naval

import "fmt"

const (
	// Size is the width and height of every board.
	Size = 10

	// ShipSize is the number of cells a ship occupies.
	ShipSize = 3
)

// Cell is the state code stored in a grid position.
type Cell uint8

// State codes. Values are part of the external contract with renderers.
const (
	Water            Cell = 0
	Hit              Cell = 1
	Miss             Cell = 2
	Ship             Cell = 3
	ConeEffect       Cell = 4
	CrossEffect      Cell = 5
	OctahedronEffect Cell = 6
)

// Valid reports whether c is one of the defined state codes.
func (c Cell) Valid() bool {
	return c <= OctahedronEffect
}

// IsEffect reports whether c is one of the area-effect markers.
func (c Cell) IsEffect() bool {
	return c == ConeEffect || c == CrossEffect || c == OctahedronEffect
}

// String returns a human-readable name for the state.
func (c Cell) String() string {
	switch c {
	case Water:
		return "Water"
	case Hit:
		return "Hit"
	case Miss:
		return "Miss"
	case Ship:
		return "Ship"
	case ConeEffect:
		return "Cone"
	case CrossEffect:
		return "Cross"
	case OctahedronEffect:
		return "Octahedron"
	default:
		return fmt.Sprintf("Cell(%d)", uint8(c))
	}
}

// Coord addresses a grid position by row and column.
type Coord struct {
	Row int
	Col int
}

// At is a convenience constructor for Coord.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Manhattan returns the Manhattan distance to another coordinate.
func (c Coord) Manhattan(other Coord) int {
	return abs(c.Row-other.Row) + abs(c.Col-other.Col)
}

// Grid is a fixed Size x Size board indexed [row][col].
// It is a value type: assigning a Grid copies every cell.
type Grid [Size][Size]Cell

// NewGrid returns a grid filled with water.
func NewGrid() Grid {
	return Grid{}
}

// InBounds reports whether (row, col) lies on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// Get returns the cell at c. Out-of-bounds coordinates read as water.
func (g *Grid) Get(c Coord) Cell {
	if !InBounds(c.Row, c.Col) {
		return Water
	}
	return g[c.Row][c.Col]
}

// Set writes a cell at c. Out-of-bounds coordinates are ignored.
func (g *Grid) Set(c Coord, v Cell) {
	if !InBounds(c.Row, c.Col) {
		return
	}
	g[c.Row][c.Col] = v
}

// Clear resets every cell to water.
func (g *Grid) Clear() {
	*g = Grid{}
}

// Count returns the number of cells holding v.
func (g *Grid) Count(v Cell) int {
	n := 0
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if g[i][j] == v {
				n++
			}
		}
	}
	return n
}

// Coords returns the coordinates of every cell holding v, row-major.
func (g *Grid) Coords(v Cell) []Coord {
	coords := make([]Coord, 0)
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if g[i][j] == v {
				coords = append(coords, At(i, j))
			}
		}
	}
	return coords
}

// Tally counts cells by state. States with no cells are omitted.
func Tally(g Grid) map[Cell]int {
	counts := make(map[Cell]int)
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			counts[g[i][j]]++
		}
	}
	return counts
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
