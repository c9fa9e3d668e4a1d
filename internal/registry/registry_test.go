package registry

import (
	"testing"

	"github.com/vovakirdan/tui-naval/internal/naval"
)

type dotShape struct{ id string }

func (d dotShape) ID() string { return d.id }
func (d dotShape) Title() string { return "Dot " + d.id }
func (d dotShape) Marker() naval.Cell { return naval.ConeEffect }
func (d dotShape) Directional() bool { return false }
func (d dotShape) Stamp(g *naval.Grid, p Params) { g.Set(p.Origin, naval.ConeEffect) }

func TestRegisterLookup(t *testing.T) {
	Register(dotShape{id: "test_dot_b"})
	Register(dotShape{id: "test_dot_a"})

	if !Exists("test_dot_a") {
		t.Fatal("registered shape should exist")
	}
	if Exists("test_missing") {
		t.Error("unregistered shape should not exist")
	}

	s, err := Lookup("test_dot_b")
	if err != nil {
		t.Fatalf("Lookup() failed: %v", err)
	}
	g := naval.NewGrid()
	s.Stamp(&g, Params{Origin: naval.At(1, 2), Range: 0})
	if g.Get(naval.At(1, 2)) != naval.ConeEffect {
		t.Error("looked-up shape did not stamp")
	}

	if _, err := Lookup("test_missing"); err == nil {
		t.Error("Lookup() of unknown shape should fail")
	}
}

func TestListSorted(t *testing.T) {
	Register(dotShape{id: "test_list_z"})
	Register(dotShape{id: "test_list_m"})

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(dotShape{id: "test_dup"})

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register(dotShape{id: "test_dup"})
}
