// Package scenario sequences a demonstration: it places the configured
// ships on a board, then runs each effect step as an independent
// stamp-composite cycle and collects the resulting frames.
package scenario

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-naval/internal/config"
	"github.com/vovakirdan/tui-naval/internal/naval"
	"github.com/vovakirdan/tui-naval/internal/registry"
)

// ErrPlacement is returned by a strict run when a ship cannot be placed.
var ErrPlacement = errors.New("scenario: ship placement failed")

// Placement records the outcome of placing one configured ship.
type Placement struct {
	Row         int
	Col         int
	Orientation naval.Orientation
	Err         error // nil when the ship was placed
}

// Layer is a resolved effect stamp.
type Layer struct {
	Shape  registry.Shape
	Params registry.Params
}

// Frame is the outcome of a single effect step.
type Frame struct {
	Step   int    // 1-indexed
	Title  string
	Layers []Layer
	Effect naval.Grid // Effect grid after every layer was stamped
	Result naval.Grid // Composite of the ship board and Effect
	Hits   int        // Ship cells hit in this step
}

// Run is a completed demonstration.
type Run struct {
	Name       string
	Board      naval.Grid // Ship board after placement
	Placements []Placement
	Frames     []Frame
}

// ShipsPlaced returns how many ships made it onto the board.
func (r *Run) ShipsPlaced() int {
	n := 0
	for _, p := range r.Placements {
		if p.Err == nil {
			n++
		}
	}
	return n
}

// TotalHits returns the hits summed over every frame.
func (r *Run) TotalHits() int {
	n := 0
	for _, f := range r.Frames {
		n += f.Hits
	}
	return n
}

// Runner executes scenarios.
type Runner struct {
	logger *log.Logger

	// Strict aborts the run on the first placement failure, as the
	// classic demonstration did. Otherwise the ship is skipped.
	Strict bool
}

// NewRunner creates a runner that logs to logger.
// A nil logger discards all output.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{logger: logger, Strict: true}
}

// Run places every ship and then builds one frame per step.
// Steps are resolved against the shape registry before anything runs.
func (r *Runner) Run(sc config.Scenario) (*Run, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	steps, err := resolveSteps(sc)
	if err != nil {
		return nil, err
	}

	run := &Run{
		Name:  sc.Name,
		Board: naval.NewGrid(),
	}
	r.logger.Info("board initialized", "scenario", sc.Name, "size", naval.Size)

	for i, ship := range sc.Ships {
		o, _ := ship.ParsedOrientation() // validated above
		p := Placement{Row: ship.Row, Col: ship.Col, Orientation: o}
		p.Err = naval.Place(&run.Board, naval.NewShip(), ship.Row, ship.Col, o)
		run.Placements = append(run.Placements, p)

		if p.Err != nil {
			r.logPlacementFailure(i+1, p)
			if r.Strict {
				return run, fmt.Errorf("%w: ship %d: %w", ErrPlacement, i+1, p.Err)
			}
			continue
		}
		r.logger.Info("ship placed",
			"ship", i+1,
			"orientation", o,
			"row", ship.Row,
			"col", ship.Col,
		)
	}

	for i, step := range steps {
		frame := Apply(run.Board, step.layers)
		frame.Step = i + 1
		frame.Title = step.title
		run.Frames = append(run.Frames, frame)

		r.logger.Debug("step applied",
			"step", frame.Step,
			"title", frame.Title,
			"layers", len(frame.Layers),
			"hits", frame.Hits,
		)
	}

	r.logger.Info("scenario complete",
		"ships", run.ShipsPlaced(),
		"steps", len(run.Frames),
		"hits", run.TotalHits(),
	)
	return run, nil
}

func (r *Runner) logPlacementFailure(ship int, p Placement) {
	kv := []any{"ship", ship, "orientation", p.Orientation, "row", p.Row, "col", p.Col}
	switch {
	case errors.Is(p.Err, naval.ErrOutOfBounds), errors.Is(p.Err, naval.ErrInvalidOrientation):
		r.logger.Warn("invalid coordinates for ship", kv...)
	case errors.Is(p.Err, naval.ErrOverlap):
		r.logger.Warn("ship overlaps another ship", kv...)
	default:
		r.logger.Error("ship placement failed", append(kv, "error", p.Err)...)
	}
}

// Apply stamps layers in order onto a fresh effect grid and composites it
// against board. The board is not modified.
func Apply(board naval.Grid, layers []Layer) Frame {
	effect := naval.NewGrid()
	for _, l := range layers {
		l.Shape.Stamp(&effect, l.Params)
	}
	result := naval.Composite(board, effect)

	return Frame{
		Layers: layers,
		Effect: effect,
		Result: result,
		Hits:   result.Count(naval.Hit) - board.Count(naval.Hit),
	}
}

type resolvedStep struct {
	title  string
	layers []Layer
}

func resolveSteps(sc config.Scenario) ([]resolvedStep, error) {
	steps := make([]resolvedStep, 0, len(sc.Steps))
	for i, step := range sc.Steps {
		rs := resolvedStep{title: step.Title}
		if rs.title == "" {
			rs.title = fmt.Sprintf("Step %d", i+1)
		}
		for j, lc := range step.Layers {
			shape, err := registry.Lookup(sc.ShapeID(lc))
			if err != nil {
				return nil, fmt.Errorf("scenario: steps[%d].layers[%d]: %w", i, j, err)
			}
			dir, _ := lc.ParsedDirection() // validated by the caller
			rs.layers = append(rs.layers, Layer{
				Shape: shape,
				Params: registry.Params{
					Origin:    lc.Origin(),
					Range:     lc.Range,
					Direction: dir,
				},
			})
		}
		steps = append(steps, rs)
	}
	return steps, nil
}
