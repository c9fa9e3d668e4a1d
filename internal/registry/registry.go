// Package registry provides a global registry of area-effect shapes.
// Shapes register themselves in init() functions, allowing scenarios and
// the CLI to look them up by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-naval/internal/naval"
)

// Params positions a single stamp of a shape.
type Params struct {
	Origin    naval.Coord
	Range     int
	Direction naval.Direction // Only read by directional shapes
}

// Shape is an area-effect generator that can be referenced by name.
type Shape interface {
	// ID returns the unique name used in scenario files (e.g., "cone").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Marker returns the cell state this shape stamps.
	Marker() naval.Cell

	// Directional reports whether Stamp reads Params.Direction.
	Directional() bool

	// Stamp marks every qualifying cell of the effect grid.
	// Cells outside the shape are left untouched.
	Stamp(g *naval.Grid, p Params)
}

// ShapeInfo contains metadata about a registered shape.
type ShapeInfo struct {
	ID          string
	Title       string
	Marker      naval.Cell
	Directional bool
}

var (
	shapes = make(map[string]Shape)
	mu     sync.RWMutex
)

// Register adds a shape to the registry.
// Panics if a shape with the same ID is already registered.
func Register(s Shape) {
	mu.Lock()
	defer mu.Unlock()

	id := s.ID()
	if _, exists := shapes[id]; exists {
		panic(fmt.Sprintf("registry: shape %q already registered", id))
	}
	shapes[id] = s
}

// List returns information about all registered shapes, sorted by ID.
func List() []ShapeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ShapeInfo, 0, len(shapes))
	for _, s := range shapes {
		result = append(result, ShapeInfo{
			ID:          s.ID(),
			Title:       s.Title(),
			Marker:      s.Marker(),
			Directional: s.Directional(),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the shape registered under id.
func Lookup(id string) (Shape, error) {
	mu.RLock()
	defer mu.RUnlock()

	s, ok := shapes[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown shape %q", id)
	}
	return s, nil
}

// Exists checks if a shape with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := shapes[id]
	return ok
}
