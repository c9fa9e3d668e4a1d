package shapes

import (
	"testing"

	"github.com/vovakirdan/tui-naval/internal/naval"
	"github.com/vovakirdan/tui-naval/internal/registry"
)

func TestBuiltinsRegistered(t *testing.T) {
	tests := []struct {
		id          string
		marker      naval.Cell
		directional bool
	}{
		{IDCone, naval.ConeEffect, true},
		{IDCross, naval.CrossEffect, false},
		{IDCrossLegacy, naval.CrossEffect, false},
		{IDOctahedron, naval.OctahedronEffect, false},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			s, err := registry.Lookup(tc.id)
			if err != nil {
				t.Fatalf("Lookup(%q) failed: %v", tc.id, err)
			}
			if s.Marker() != tc.marker {
				t.Errorf("Marker() = %s, expected %s", s.Marker(), tc.marker)
			}
			if s.Directional() != tc.directional {
				t.Errorf("Directional() = %v, expected %v", s.Directional(), tc.directional)
			}

			// Every shape marks its own origin when it lies on the diagonal.
			g := naval.NewGrid()
			s.Stamp(&g, registry.Params{Origin: naval.At(4, 4), Range: 2, Direction: naval.East})
			if g.Get(naval.At(4, 4)) != tc.marker {
				t.Errorf("origin = %s, expected %s", g.Get(naval.At(4, 4)), tc.marker)
			}
		})
	}
}

func TestStampMatchesGenerator(t *testing.T) {
	origin := naval.At(6, 2)
	p := registry.Params{Origin: origin, Range: 3, Direction: naval.North}

	viaRegistry := naval.NewGrid()
	Cone{}.Stamp(&viaRegistry, p)

	direct := naval.NewGrid()
	naval.Cone(&direct, origin, 3, naval.North)

	if viaRegistry != direct {
		t.Error("registered cone differs from naval.Cone")
	}
}
