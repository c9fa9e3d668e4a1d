// Package config provides YAML-based scenario loading for the naval board
// demonstrations: which ships to place and which area effects to stamp.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-naval/internal/naval"
)

// CrossMode selects which cross generator the plain "cross" shape uses.
type CrossMode string

const (
	CrossNatural CrossMode = "natural"
	CrossLegacy  CrossMode = "legacy"
)

// Scenario describes a full demonstration run.
type Scenario struct {
	Name      string       `yaml:"name"`
	CrossMode CrossMode    `yaml:"cross_mode,omitempty"` // Defaults to natural
	Ships     []ShipConfig `yaml:"ships"`
	Steps     []StepConfig `yaml:"steps"`
}

// ShipConfig places one ship of naval.ShipSize cells.
type ShipConfig struct {
	Row         int    `yaml:"row"`
	Col         int    `yaml:"col"`
	Orientation string `yaml:"orientation"` // horizontal, vertical, diagonal_main, diagonal_anti
}

// StepConfig is one display cycle: a fresh effect grid stamped with every
// layer in order, then composited against the ship board.
type StepConfig struct {
	Title  string        `yaml:"title"`
	Layers []LayerConfig `yaml:"layers"`
}

// LayerConfig stamps a single shape into the step's effect grid.
type LayerConfig struct {
	Shape     string `yaml:"shape"`
	Row       int    `yaml:"row"`
	Col       int    `yaml:"col"`
	Range     int    `yaml:"range"`
	Direction string `yaml:"direction,omitempty"` // Cone only
}

// ParsedOrientation returns the ship orientation.
func (s ShipConfig) ParsedOrientation() (naval.Orientation, error) {
	o, ok := naval.ParseOrientation(s.Orientation)
	if !ok {
		return 0, fmt.Errorf("unknown orientation %q", s.Orientation)
	}
	return o, nil
}

// Origin returns the layer's origin cell.
func (l LayerConfig) Origin() naval.Coord {
	return naval.At(l.Row, l.Col)
}

// ParsedDirection returns the cone direction. An empty direction is north.
func (l LayerConfig) ParsedDirection() (naval.Direction, error) {
	if strings.TrimSpace(l.Direction) == "" {
		return naval.North, nil
	}
	d, ok := naval.ParseDirection(l.Direction)
	if !ok {
		return 0, fmt.Errorf("unknown direction %q", l.Direction)
	}
	return d, nil
}

// ShapeID returns the registry ID for a layer, applying the scenario's
// cross mode to the plain "cross" shape.
func (s Scenario) ShapeID(l LayerConfig) string {
	id := strings.ToLower(strings.TrimSpace(l.Shape))
	if id == "cross" && s.CrossMode == CrossLegacy {
		return "cross_legacy"
	}
	return id
}

// Validate checks the scenario for values that cannot be interpreted.
// Shape names are resolved later against the registry; here they only
// need to be present. All problems are reported together.
func (s Scenario) Validate() error {
	var errs []error

	switch s.CrossMode {
	case "", CrossNatural, CrossLegacy:
	default:
		errs = append(errs, fmt.Errorf("cross_mode: unknown mode %q", s.CrossMode))
	}

	for i, ship := range s.Ships {
		if _, err := ship.ParsedOrientation(); err != nil {
			errs = append(errs, fmt.Errorf("ships[%d]: %w", i, err))
		}
	}

	for i, step := range s.Steps {
		if len(step.Layers) == 0 {
			errs = append(errs, fmt.Errorf("steps[%d]: no layers", i))
		}
		for j, layer := range step.Layers {
			if strings.TrimSpace(layer.Shape) == "" {
				errs = append(errs, fmt.Errorf("steps[%d].layers[%d]: missing shape", i, j))
			}
			if layer.Range < 0 {
				errs = append(errs, fmt.Errorf("steps[%d].layers[%d]: negative range %d", i, j, layer.Range))
			}
			if _, err := layer.ParsedDirection(); err != nil {
				errs = append(errs, fmt.Errorf("steps[%d].layers[%d]: %w", i, j, err))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid scenario %q: %w", s.Name, errors.Join(errs...))
	}
	return nil
}
