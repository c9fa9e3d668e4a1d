package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-naval/internal/naval"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	parsed, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(parsed, DefaultScenario()) {
		t.Errorf("embedded scenario differs from DefaultScenario():\n%+v\n%+v", parsed, DefaultScenario())
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	sc, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if sc.Name != "classic" {
		t.Errorf("Name = %q, expected classic", sc.Name)
	}
	if len(sc.Ships) != 4 {
		t.Errorf("expected 4 ships, got %d", len(sc.Ships))
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".naval", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	doc := "name: mine\nships:\n  - {row: 0, col: 0, orientation: v}\n"
	if err := os.WriteFile(filepath.Join(dir, ScenarioFile), []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	sc, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if sc.Name != "mine" {
		t.Errorf("Name = %q, expected mine", sc.Name)
	}
	if sc.CrossMode != CrossNatural {
		t.Errorf("CrossMode = %q, expected natural default", sc.CrossMode)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	doc := `
name: custom
cross_mode: legacy
ships:
  - {row: 1, col: 1, orientation: diagonal_main}
steps:
  - title: one
    layers:
      - {shape: cross, row: 4, col: 4, range: 2}
      - {shape: cone, row: 1, col: 1, range: 1, direction: South}
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	sc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if sc.CrossMode != CrossLegacy {
		t.Errorf("CrossMode = %q, expected legacy", sc.CrossMode)
	}

	o, err := sc.Ships[0].ParsedOrientation()
	if err != nil || o != naval.DiagonalMain {
		t.Errorf("ParsedOrientation() = %v, %v; expected diagonal_main", o, err)
	}

	layers := sc.Steps[0].Layers
	if id := sc.ShapeID(layers[0]); id != "cross_legacy" {
		t.Errorf("ShapeID(cross) = %q under legacy mode, expected cross_legacy", id)
	}
	if d, err := layers[1].ParsedDirection(); err != nil || d != naval.South {
		t.Errorf("ParsedDirection() = %v, %v; expected south", d, err)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("ships: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}
}

func TestValidate(t *testing.T) {
	sc := Scenario{
		Name:      "bad",
		CrossMode: "sideways",
		Ships:     []ShipConfig{{Row: 0, Col: 0, Orientation: "spiral"}},
		Steps: []StepConfig{
			{Title: "empty"},
			{Title: "broken", Layers: []LayerConfig{{Shape: "", Range: -1, Direction: "up-ish"}}},
		},
	}

	err := sc.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}

	msg := err.Error()
	for _, want := range []string{
		"cross_mode",
		"ships[0]",
		"steps[0]: no layers",
		"missing shape",
		"negative range",
		`unknown direction "up-ish"`,
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q should mention %q", msg, want)
		}
	}

	if err := DefaultScenario().Validate(); err != nil {
		t.Errorf("default scenario should validate: %v", err)
	}
}

func TestShapeIDNatural(t *testing.T) {
	sc := Scenario{CrossMode: CrossNatural}
	if id := sc.ShapeID(LayerConfig{Shape: " Cross "}); id != "cross" {
		t.Errorf("ShapeID() = %q, expected cross", id)
	}
	if id := sc.ShapeID(LayerConfig{Shape: "OCTAHEDRON"}); id != "octahedron" {
		t.Errorf("ShapeID() = %q, expected octahedron", id)
	}
}
