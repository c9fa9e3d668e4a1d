package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-naval/internal/naval"
	"github.com/vovakirdan/tui-naval/internal/render"
	"github.com/vovakirdan/tui-naval/internal/scenario"
)

var (
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// boardPane renders a labelled, bordered board.
func boardPane(label string, g naval.Grid, opts render.Options) string {
	opts.Legend = false
	body := labelStyle.Render(label) + "\n" + strings.TrimRight(render.Board(g, opts), "\n")
	return paneStyle.Render(body)
}

// renderPlacement renders the ship board with the outcome of each placement.
func renderPlacement(run *scenario.Run, opts render.Options) string {
	var b strings.Builder
	b.WriteString(boardPane("Ships", run.Board, opts))
	b.WriteString("\n")
	for i, p := range run.Placements {
		status := "placed"
		if p.Err != nil {
			status = "rejected: " + p.Err.Error()
		}
		fmt.Fprintf(&b, "ship %d at (%d,%d) %s: %s\n", i+1, p.Row, p.Col, p.Orientation, status)
	}
	return b.String()
}

// renderFrame lays the effect grid and the composite side by side.
func renderFrame(f scenario.Frame, opts render.Options) string {
	effect := boardPane("Effect", f.Effect, opts)
	result := boardPane("Result", f.Result, opts)

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, effect, "  ", result))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Hits this step: %d    %s\n", f.Hits, render.Summary(f.Result))
	return b.String()
}
