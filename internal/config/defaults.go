package config

import (
	_ "embed"
)

//go:embed defaults/scenario.yaml
var defaultScenarioYAML []byte

// DefaultScenario returns the built-in demonstration: the two ships of the
// classic layout plus two diagonal ships, then one step per shape.
func DefaultScenario() Scenario {
	return Scenario{
		Name:      "classic",
		CrossMode: CrossNatural,
		Ships: []ShipConfig{
			{Row: 2, Col: 1, Orientation: "horizontal"},
			{Row: 5, Col: 7, Orientation: "vertical"},
			{Row: 7, Col: 0, Orientation: "diagonal_main"},
			{Row: 0, Col: 9, Orientation: "diagonal_anti"},
		},
		Steps: []StepConfig{
			{
				Title:  "Cone facing north",
				Layers: []LayerConfig{{Shape: "cone", Row: 5, Col: 3, Range: 3, Direction: "north"}},
			},
			{
				Title:  "Cross",
				Layers: []LayerConfig{{Shape: "cross", Row: 7, Col: 7, Range: 2}},
			},
			{
				Title:  "Octahedron",
				Layers: []LayerConfig{{Shape: "octahedron", Row: 8, Col: 2, Range: 2}},
			},
			{
				Title: "Combined barrage",
				Layers: []LayerConfig{
					{Shape: "octahedron", Row: 2, Col: 7, Range: 2},
					{Shape: "cone", Row: 4, Col: 0, Range: 4, Direction: "east"},
					{Shape: "cross", Row: 9, Col: 4, Range: 3},
				},
			},
		},
	}
}

// DefaultYAML returns the embedded default scenario file.
func DefaultYAML() []byte {
	return defaultScenarioYAML
}
