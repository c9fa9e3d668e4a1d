// Package tui provides the Bubble Tea front ends for naval demonstrations:
// a step-through frame viewer, a run history browser and an SSH server
// that hands each session its own viewer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to advance the viewer during autoplay.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
