package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-naval/internal/storage"
)

// History layout constants
const (
	maxRuns        = 100 // Max runs to load
	tableMinHeight = 5
)

// HistoryModel is the Bubble Tea model for browsing recorded runs.
type HistoryModel struct {
	store    *storage.Store
	runs     []storage.RunRecord
	frames   []storage.FrameRecord // Frames of the opened run
	opened   bool
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	err      error
	quitting bool
}

// NewHistoryModel creates a history browser over store.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		store:  store,
		keys:   DefaultHistoryKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadRuns()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Scenario", Width: 16},
		{Title: "Ships", Width: 6},
		{Title: "Steps", Width: 6},
		{Title: "Hits", Width: 6},
		{Title: "Date", Width: 14},
	}

	height := m.height - 8 // Leave room for header, help, and margins
	if height < tableMinHeight {
		height = tableMinHeight
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns loads the most recent runs from the store.
func (m *HistoryModel) loadRuns() {
	m.runs = nil
	if m.store != nil {
		runs, err := m.store.RecentRuns(maxRuns)
		if err != nil {
			m.err = err
		} else {
			m.runs = runs
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded runs.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			r.Scenario,
			fmt.Sprintf("%d", r.Ships),
			fmt.Sprintf("%d", r.Steps),
			fmt.Sprintf("%d", r.Hits),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// openSelected loads the frames of the highlighted run.
func (m *HistoryModel) openSelected() {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.runs) || m.store == nil {
		return
	}
	frames, err := m.store.Frames(m.runs[i].RunID)
	if err != nil {
		m.err = err
		return
	}
	m.frames = frames
	m.opened = true
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			if m.opened {
				m.opened = false
				m.frames = nil
				return m, nil
			}
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Open):
			if !m.opened {
				m.openSelected()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	if m.opened {
		return m, nil
	}
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history browser.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	if m.opened {
		r := m.runs[m.table.Cursor()]
		b.WriteString(titleStyle.Render(fmt.Sprintf("RUN %d - %s", r.ID, r.Scenario)))
		b.WriteString("\n\n")
		b.WriteString(m.renderFrames())
	} else {
		b.WriteString(titleStyle.Render("RUN HISTORY"))
		b.WriteString("\n\n")
		b.WriteString(paneStyle.Render(m.renderTableContent()))
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("error: %v", m.err))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderFrames lays out the stored boards of the opened run.
func (m HistoryModel) renderFrames() string {
	if len(m.frames) == 0 {
		return "No frames recorded for this run.\n"
	}
	panes := make([]string, 0, len(m.frames))
	for _, f := range m.frames {
		label := labelStyle.Render(fmt.Sprintf("%d. %s (hits: %d)", f.Step, f.Title, f.Hits))
		panes = append(panes, paneStyle.Render(label+"\n"+strings.TrimRight(f.Board, "\n")))
	}

	// Two boards per row.
	var rows []string
	for i := 0; i < len(panes); i += 2 {
		end := min(i+2, len(panes))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, panes[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}

// renderTableContent renders the table or empty message.
func (m HistoryModel) renderTableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nUse 'naval run --save' to record one!")
	}
	return m.table.View()
}

// Opened returns true while a run's frames are on screen.
func (m HistoryModel) Opened() bool {
	return m.opened
}

// IsQuitting returns true if the user left the browser.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// RunHistory runs the history browser.
func RunHistory(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(store, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
