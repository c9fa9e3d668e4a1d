package naval

import "strings"

// Orientation is the direction a ship extends from its origin cell.
type Orientation uint8

const (
	Horizontal   Orientation = iota // left to right along a row
	Vertical                        // top to bottom along a column
	DiagonalMain                    // down and to the right
	DiagonalAnti                    // down and to the left
)

// orientationDeltas is the single source of per-step addressing.
var orientationDeltas = [...][2]int{
	Horizontal:   {0, 1},
	Vertical:     {1, 0},
	DiagonalMain: {1, 1},
	DiagonalAnti: {1, -1},
}

// Delta returns the (row, col) offset for one step along o.
// ok is false when o is not a defined orientation.
func (o Orientation) Delta() (dr, dc int, ok bool) {
	if int(o) >= len(orientationDeltas) {
		return 0, 0, false
	}
	d := orientationDeltas[o]
	return d[0], d[1], true
}

// Valid reports whether o is a defined orientation.
func (o Orientation) Valid() bool {
	_, _, ok := o.Delta()
	return ok
}

// String returns the lowercase name used in scenario files.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case DiagonalMain:
		return "diagonal_main"
	case DiagonalAnti:
		return "diagonal_anti"
	default:
		return "unknown"
	}
}

// ParseOrientation parses an orientation name, ignoring case.
// Short forms h, v, dm and da are accepted.
func ParseOrientation(s string) (Orientation, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "h":
		return Horizontal, true
	case "vertical", "v":
		return Vertical, true
	case "diagonal_main", "diagonal-main", "dm":
		return DiagonalMain, true
	case "diagonal_anti", "diagonal-anti", "da":
		return DiagonalAnti, true
	default:
		return 0, false
	}
}

// Direction is the cardinal direction a cone opens toward.
// North is toward row 0, West toward column 0.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// Valid reports whether d is a defined direction.
func (d Direction) Valid() bool {
	return d <= West
}

// String returns the lowercase name used in scenario files.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// ParseDirection parses a direction name, ignoring case.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n", "up":
		return North, true
	case "south", "s", "down":
		return South, true
	case "east", "e", "right":
		return East, true
	case "west", "w", "left":
		return West, true
	default:
		return 0, false
	}
}
