package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-naval/internal/config"
	"github.com/vovakirdan/tui-naval/internal/render"
	"github.com/vovakirdan/tui-naval/internal/scenario"
	_ "github.com/vovakirdan/tui-naval/internal/shapes"
)

func defaultRun(t *testing.T) *scenario.Run {
	t.Helper()
	run, err := scenario.NewRunner(nil).Run(config.DefaultScenario())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	return run
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m ViewerModel, msg tea.Msg) (ViewerModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	vm, ok := next.(ViewerModel)
	if !ok {
		t.Fatalf("Update returned %T, expected ViewerModel", next)
	}
	return vm, cmd
}

func TestViewerStepping(t *testing.T) {
	run := defaultRun(t)
	m := NewViewerModel(run, render.Options{}, 0)

	if m.Page() != 0 {
		t.Fatalf("initial page = %d, expected 0", m.Page())
	}

	steps := []struct {
		msg  tea.Msg
		want int
	}{
		{tea.KeyMsg{Type: tea.KeyEnter}, 1},
		{tea.KeyMsg{Type: tea.KeySpace}, 2},
		{tea.KeyMsg{Type: tea.KeyRight}, 3},
		{tea.KeyMsg{Type: tea.KeyLeft}, 2},
		{runes("g"), 0},
		{tea.KeyMsg{Type: tea.KeyLeft}, 0},
		{runes("G"), len(run.Frames)},
	}
	for i, s := range steps {
		m, _ = press(t, m, s.msg)
		if m.Page() != s.want {
			t.Fatalf("step %d: page = %d, expected %d", i, m.Page(), s.want)
		}
	}
}

func TestViewerFinishesPastLastFrame(t *testing.T) {
	run := defaultRun(t)
	m := NewViewerModel(run, render.Options{}, 0)

	var cmd tea.Cmd
	for i, n := 0, len(run.Frames); i < n; i++ {
		m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		if cmd != nil {
			t.Fatal("viewer quit before the last frame")
		}
	}
	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Finished() || cmd == nil {
		t.Error("expected viewer to finish after the last frame")
	}
	if m.View() != "" {
		t.Error("finished viewer should render nothing")
	}
}

func TestViewerQuit(t *testing.T) {
	m := NewViewerModel(defaultRun(t), render.Options{}, 0)

	m, cmd := press(t, m, runes("q"))
	if !m.IsQuitting() || cmd == nil {
		t.Error("expected q to quit")
	}
}

func TestViewerView(t *testing.T) {
	run := defaultRun(t)
	m := NewViewerModel(run, render.Options{}, 0)

	view := m.View()
	if !strings.Contains(view, "initial board") {
		t.Errorf("page 0 should show the initial board:\n%s", view)
	}
	if !strings.Contains(view, "ship 1 at (2,1) horizontal: placed") {
		t.Errorf("page 0 should list placements:\n%s", view)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	view = m.View()
	if !strings.Contains(view, "step 1/4 Cone facing north") {
		t.Errorf("page 1 should show the first step title:\n%s", view)
	}
	if !strings.Contains(view, "Hits this step: 3") {
		t.Errorf("page 1 should report hits:\n%s", view)
	}
	if !strings.Contains(view, "Legend:") {
		t.Errorf("expected legend:\n%s", view)
	}
}

func TestViewerAutoplay(t *testing.T) {
	run := defaultRun(t)
	m := NewViewerModel(run, render.Options{}, time.Millisecond)

	if m.Init() == nil {
		t.Fatal("autoplay viewer should start ticking")
	}
	for i := 1; i <= len(run.Frames); i++ {
		var cmd tea.Cmd
		m, cmd = press(t, m, TickMsg(time.Now()))
		if m.Page() != i {
			t.Fatalf("after tick %d: page = %d", i, m.Page())
		}
		if cmd == nil {
			t.Fatalf("tick %d should schedule another", i)
		}
	}

	m, cmd := press(t, m, TickMsg(time.Now()))
	if m.Page() != len(run.Frames) || cmd != nil {
		t.Error("autoplay should stop on the last frame")
	}
}

func TestViewerManualIgnoresTicks(t *testing.T) {
	m := NewViewerModel(defaultRun(t), render.Options{}, 0)

	if m.Init() != nil {
		t.Error("manual viewer should not tick")
	}
	m, _ = press(t, m, TickMsg(time.Now()))
	if m.Page() != 0 {
		t.Errorf("page = %d, expected 0", m.Page())
	}
}
