// Package shapes registers the built-in area-effect generators from
// package naval with the shape registry. Import it for side effects.
package shapes

import (
	"github.com/vovakirdan/tui-naval/internal/naval"
	"github.com/vovakirdan/tui-naval/internal/registry"
)

// Built-in shape IDs.
const (
	IDCone        = "cone"
	IDCross       = "cross"
	IDCrossLegacy = "cross_legacy"
	IDOctahedron  = "octahedron"
)

func init() {
	registry.Register(Cone{})
	registry.Register(Cross{})
	registry.Register(CrossLegacy{})
	registry.Register(Octahedron{})
}

// Cone is a widening wedge opening in one cardinal direction.
type Cone struct{}

func (Cone) ID() string { return IDCone }
func (Cone) Title() string { return "Cone" }
func (Cone) Marker() naval.Cell { return naval.ConeEffect }
func (Cone) Directional() bool { return true }

func (Cone) Stamp(g *naval.Grid, p registry.Params) {
	naval.Cone(g, p.Origin, p.Range, p.Direction)
}

// Cross covers the origin's row and column out to the range.
type Cross struct{}

func (Cross) ID() string { return IDCross }
func (Cross) Title() string { return "Cross" }
func (Cross) Marker() naval.Cell { return naval.CrossEffect }
func (Cross) Directional() bool { return false }

func (Cross) Stamp(g *naval.Grid, p registry.Params) {
	naval.Cross(g, p.Origin, p.Range)
}

// CrossLegacy is the cross with swapped band coordinates, kept so old
// demonstrations render identically.
type CrossLegacy struct{}

func (CrossLegacy) ID() string { return IDCrossLegacy }
func (CrossLegacy) Title() string { return "Cross (legacy)" }
func (CrossLegacy) Marker() naval.Cell { return naval.CrossEffect }
func (CrossLegacy) Directional() bool { return false }

func (CrossLegacy) Stamp(g *naval.Grid, p registry.Params) {
	naval.CrossLegacy(g, p.Origin, p.Range)
}

// Octahedron is the Manhattan diamond around the origin.
type Octahedron struct{}

func (Octahedron) ID() string { return IDOctahedron }
func (Octahedron) Title() string { return "Octahedron" }
func (Octahedron) Marker() naval.Cell { return naval.OctahedronEffect }
func (Octahedron) Directional() bool { return false }

func (Octahedron) Stamp(g *naval.Grid, p registry.Params) {
	naval.Octahedron(g, p.Origin, p.Range)
}
