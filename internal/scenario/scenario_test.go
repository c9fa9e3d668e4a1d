package scenario

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-naval/internal/config"
	"github.com/vovakirdan/tui-naval/internal/naval"
	"github.com/vovakirdan/tui-naval/internal/registry"
	_ "github.com/vovakirdan/tui-naval/internal/shapes"
)

func TestRunDefaultScenario(t *testing.T) {
	run, err := NewRunner(nil).Run(config.DefaultScenario())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if run.ShipsPlaced() != 4 {
		t.Errorf("ShipsPlaced() = %d, expected 4", run.ShipsPlaced())
	}
	if n := run.Board.Count(naval.Ship); n != 4*naval.ShipSize {
		t.Errorf("board has %d ship cells, expected %d", n, 4*naval.ShipSize)
	}

	expectedHits := []int{3, 3, 2, 5}
	if len(run.Frames) != len(expectedHits) {
		t.Fatalf("expected %d frames, got %d", len(expectedHits), len(run.Frames))
	}
	for i, f := range run.Frames {
		if f.Step != i+1 {
			t.Errorf("frame %d has Step %d", i, f.Step)
		}
		if f.Hits != expectedHits[i] {
			t.Errorf("frame %d (%s): Hits = %d, expected %d", f.Step, f.Title, f.Hits, expectedHits[i])
		}
	}
	if run.TotalHits() != 13 {
		t.Errorf("TotalHits() = %d, expected 13", run.TotalHits())
	}
}

func TestStepsAreIndependent(t *testing.T) {
	run, err := NewRunner(nil).Run(config.DefaultScenario())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	// The first step hits the horizontal ship; the second must not see it.
	if run.Frames[1].Result.Get(naval.At(2, 1)) != naval.Ship {
		t.Error("hits from an earlier step leaked into a later frame")
	}
	if run.Frames[1].Effect.Count(naval.ConeEffect) != 0 {
		t.Error("effect grid was not cleared between steps")
	}
	if run.Board.Count(naval.Hit) != 0 {
		t.Error("running steps modified the ship board")
	}
}

func TestApplyLayersLastWriteWins(t *testing.T) {
	cross, _ := registry.Lookup("cross")
	octa, _ := registry.Lookup("octahedron")

	board := naval.NewGrid()
	frame := Apply(board, []Layer{
		{Shape: octa, Params: registry.Params{Origin: naval.At(5, 5), Range: 1}},
		{Shape: cross, Params: registry.Params{Origin: naval.At(5, 5), Range: 1}},
	})

	// The cross covers the whole range-1 diamond, so nothing octahedral survives.
	if n := frame.Effect.Count(naval.OctahedronEffect); n != 0 {
		t.Errorf("%d octahedron cells survived the cross, expected 0", n)
	}
	if n := frame.Result.Count(naval.CrossEffect); n != 5 {
		t.Errorf("result has %d cross cells, expected 5", n)
	}
}

func TestRunStrictPlacementFailure(t *testing.T) {
	var buf bytes.Buffer
	runner := NewRunner(log.New(&buf))

	sc := config.Scenario{
		Name: "collide",
		Ships: []config.ShipConfig{
			{Row: 2, Col: 1, Orientation: "horizontal"},
			{Row: 1, Col: 2, Orientation: "vertical"},
			{Row: 9, Col: 9, Orientation: "horizontal"},
		},
	}

	run, err := runner.Run(sc)
	if !errors.Is(err, ErrPlacement) {
		t.Fatalf("expected ErrPlacement, got %v", err)
	}
	if !errors.Is(err, naval.ErrOverlap) {
		t.Errorf("expected wrapped ErrOverlap, got %v", err)
	}
	if len(run.Placements) != 2 {
		t.Errorf("strict run should stop after the failing ship, got %d placements", len(run.Placements))
	}
	if !strings.Contains(buf.String(), "ship overlaps another ship") {
		t.Errorf("expected overlap warning in log, got:\n%s", buf.String())
	}
}

func TestRunLenientPlacementFailure(t *testing.T) {
	var buf bytes.Buffer
	runner := NewRunner(log.New(&buf))
	runner.Strict = false

	sc := config.Scenario{
		Name: "lenient",
		Ships: []config.ShipConfig{
			{Row: 0, Col: 8, Orientation: "horizontal"},
			{Row: 4, Col: 4, Orientation: "diagonal_anti"},
		},
		Steps: []config.StepConfig{
			{Layers: []config.LayerConfig{{Shape: "octahedron", Row: 5, Col: 3, Range: 0}}},
		},
	}

	run, err := runner.Run(sc)
	if err != nil {
		t.Fatalf("lenient Run() failed: %v", err)
	}
	if run.ShipsPlaced() != 1 {
		t.Errorf("ShipsPlaced() = %d, expected 1", run.ShipsPlaced())
	}
	if !errors.Is(run.Placements[0].Err, naval.ErrOutOfBounds) {
		t.Errorf("first placement error = %v, expected ErrOutOfBounds", run.Placements[0].Err)
	}
	if !strings.Contains(buf.String(), "invalid coordinates for ship") {
		t.Errorf("expected invalid coordinates warning in log, got:\n%s", buf.String())
	}
	if run.Frames[0].Title != "Step 1" {
		t.Errorf("untitled step = %q, expected Step 1", run.Frames[0].Title)
	}
	if run.Frames[0].Hits != 1 {
		t.Errorf("Hits = %d, expected 1 on (5,3)", run.Frames[0].Hits)
	}
}

func TestRunUnknownShape(t *testing.T) {
	sc := config.Scenario{
		Name: "mystery",
		Steps: []config.StepConfig{
			{Layers: []config.LayerConfig{{Shape: "spiral", Row: 1, Col: 1, Range: 1}}},
		},
	}
	if _, err := NewRunner(nil).Run(sc); err == nil {
		t.Error("Run() with an unregistered shape should fail")
	}
}

func TestRunLegacyCrossMode(t *testing.T) {
	sc := config.Scenario{
		Name:      "legacy",
		CrossMode: config.CrossLegacy,
		Steps: []config.StepConfig{
			{Layers: []config.LayerConfig{{Shape: "cross", Row: 2, Col: 6, Range: 1}}},
		},
	}
	run, err := NewRunner(nil).Run(sc)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if id := run.Frames[0].Layers[0].Shape.ID(); id != "cross_legacy" {
		t.Errorf("layer shape = %q, expected cross_legacy", id)
	}
	if run.Frames[0].Result.Get(naval.At(2, 6)) != naval.Water {
		t.Error("legacy cross off the diagonal should leave its origin untouched")
	}
}
