package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-naval/internal/render"
	"github.com/vovakirdan/tui-naval/internal/scenario"
)

// ViewerModel is the Bubble Tea model that pages through a run.
// Page 0 is the ship board; page i shows frame i.
type ViewerModel struct {
	run      *scenario.Run
	page     int
	opts     render.Options
	keys     ViewerKeyMap
	help     help.Model
	interval time.Duration // Autoplay delay, zero for manual stepping
	width    int
	quitting bool
	finished bool // Advanced past the last frame
}

// NewViewerModel creates a viewer for run.
// A positive interval advances one page per tick.
func NewViewerModel(run *scenario.Run, opts render.Options, interval time.Duration) ViewerModel {
	h := help.New()
	h.ShowAll = false

	return ViewerModel{
		run:      run,
		opts:     opts,
		keys:     DefaultViewerKeyMap(),
		help:     h,
		interval: interval,
	}
}

// Init starts autoplay when enabled.
func (m ViewerModel) Init() tea.Cmd {
	if m.interval > 0 {
		return tickCmd(m.interval)
	}
	return nil
}

// Update handles messages.
func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if m.interval <= 0 || m.page >= m.lastPage() {
			return m, nil
		}
		m.page++
		return m, tickCmd(m.interval)
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m ViewerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		if m.page >= m.lastPage() {
			m.finished = true
			return m, tea.Quit
		}
		m.page++

	case key.Matches(msg, m.keys.Prev):
		if m.page > 0 {
			m.page--
		}

	case key.Matches(msg, m.keys.First):
		m.page = 0

	case key.Matches(msg, m.keys.Last):
		m.page = m.lastPage()

	case key.Matches(msg, m.keys.Codes):
		m.opts.Codes = !m.opts.Codes

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m ViewerModel) lastPage() int {
	return len(m.run.Frames)
}

// View renders the current page.
func (m ViewerModel) View() string {
	if m.quitting || m.finished {
		return ""
	}

	var b strings.Builder

	name := m.run.Name
	if name == "" {
		name = "scenario"
	}

	if m.page == 0 {
		b.WriteString(render.Title(fmt.Sprintf("%s: initial board", name), m.opts.Color))
		b.WriteString("\n\n")
		b.WriteString(renderPlacement(m.run, m.opts))
	} else {
		f := m.run.Frames[m.page-1]
		b.WriteString(render.Title(fmt.Sprintf("%s: step %d/%d %s", name, f.Step, len(m.run.Frames), f.Title), m.opts.Color))
		b.WriteString("\n\n")
		b.WriteString(renderFrame(f, m.opts))
	}

	b.WriteString(render.Legend(m.opts))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Page returns the index of the page on screen.
func (m ViewerModel) Page() int {
	return m.page
}

// IsQuitting returns true if the user quit before the last frame.
func (m ViewerModel) IsQuitting() bool {
	return m.quitting
}

// Finished returns true if the user stepped past the last frame.
func (m ViewerModel) Finished() bool {
	return m.finished
}

// RunViewer starts the viewer on the local terminal.
func RunViewer(run *scenario.Run, opts render.Options, interval time.Duration) error {
	p := tea.NewProgram(
		NewViewerModel(run, opts, interval),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
