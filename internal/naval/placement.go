package naval

import (
	"errors"
	"fmt"
)

// Placement failures. Place wraps these with the offending coordinates;
// match them with errors.Is.
var (
	ErrOutOfBounds        = errors.New("naval: ship does not fit on the board")
	ErrOverlap            = errors.New("naval: ship overlaps another ship")
	ErrInvalidOrientation = errors.New("naval: invalid orientation")
)

// ShipCells is the footprint pattern stamped by Place, one state per cell.
type ShipCells [ShipSize]Cell

// NewShip returns a ship whose every segment is Ship.
func NewShip() ShipCells {
	return ShipCells{Ship, Ship, Ship}
}

// Footprint returns the size cells a ship occupies starting at (row, col)
// and stepping along o. Cells are returned even when they fall off the
// board; ok is false only for an undefined orientation.
//
// Validate, HasOverlap and Place all address cells through this function.
func Footprint(row, col, size int, o Orientation) (cells []Coord, ok bool) {
	dr, dc, ok := o.Delta()
	if !ok {
		return nil, false
	}
	cells = make([]Coord, 0, size)
	for i := 0; i < size; i++ {
		cells = append(cells, At(row+i*dr, col+i*dc))
	}
	return cells, true
}

// Validate reports whether a ship of the given size fits on the board when
// placed at (row, col) along o. It does not look at grid contents.
func Validate(row, col, size int, o Orientation) bool {
	if !InBounds(row, col) || size < 1 {
		return false
	}
	cells, ok := Footprint(row, col, size, o)
	if !ok {
		return false
	}
	// Steps are monotonic on both axes, so a terminal cell on the board
	// means every intermediate cell is too.
	end := cells[len(cells)-1]
	return InBounds(end.Row, end.Col)
}

// HasOverlap reports whether any footprint cell is already occupied.
// An undefined orientation or a cell off the board counts as overlap so
// callers refuse the placement.
func HasOverlap(g *Grid, row, col, size int, o Orientation) bool {
	cells, ok := Footprint(row, col, size, o)
	if !ok {
		return true
	}
	for _, c := range cells {
		if !InBounds(c.Row, c.Col) || g[c.Row][c.Col] != Water {
			return true
		}
	}
	return false
}

// Place stamps ship onto g starting at (row, col) along o.
// The grid is modified only when nil is returned.
func Place(g *Grid, ship ShipCells, row, col int, o Orientation) error {
	if !o.Valid() {
		return fmt.Errorf("place at %v: %w (%d)", At(row, col), ErrInvalidOrientation, uint8(o))
	}
	if !Validate(row, col, len(ship), o) {
		return fmt.Errorf("place %s at %v: %w", o, At(row, col), ErrOutOfBounds)
	}
	if HasOverlap(g, row, col, len(ship), o) {
		return fmt.Errorf("place %s at %v: %w", o, At(row, col), ErrOverlap)
	}

	cells, _ := Footprint(row, col, len(ship), o)
	for i, c := range cells {
		g[c.Row][c.Col] = ship[i]
	}
	return nil
}

// PlaceOK is Place reduced to a success flag.
func PlaceOK(g *Grid, ship ShipCells, row, col int, o Orientation) bool {
	return Place(g, ship, row, col, o) == nil
}
