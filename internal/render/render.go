// Package render turns naval grids into text for terminals and logs.
// Plain output uses only ASCII glyphs; colored output wraps the same
// glyphs in lipgloss styles so both have identical layout.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-naval/internal/naval"
)

// Options controls board rendering.
type Options struct {
	Color  bool // Wrap glyphs in lipgloss styles
	Codes  bool // Show numeric state codes instead of glyphs
	Legend bool // Append the legend line
}

// glyphs maps each state to its display rune.
var glyphs = map[naval.Cell]rune{
	naval.Water:            '~',
	naval.Hit:              'X',
	naval.Miss:             'o',
	naval.Ship:             'S',
	naval.ConeEffect:       '^',
	naval.CrossEffect:      '+',
	naval.OctahedronEffect: '*',
}

// cellStyles maps each state to a lipgloss style.
var cellStyles = map[naval.Cell]lipgloss.Style{
	naval.Water:            lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	naval.Hit:              lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	naval.Miss:             lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	naval.Ship:             lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	naval.ConeEffect:       lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	naval.CrossEffect:      lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	naval.OctahedronEffect: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// legendOrder fixes the legend sequence.
var legendOrder = []naval.Cell{
	naval.Water, naval.Ship, naval.Hit, naval.Miss,
	naval.ConeEffect, naval.CrossEffect, naval.OctahedronEffect,
}

// Glyph returns the display rune for a cell state.
func Glyph(c naval.Cell) rune {
	if r, ok := glyphs[c]; ok {
		return r
	}
	return '?'
}

// Board renders g with a column header and row numbers.
func Board(g naval.Grid, opts Options) string {
	var sb strings.Builder
	sb.Grow(naval.Size * naval.Size * 4)

	// Column header
	header := "   "
	for j := 0; j < naval.Size; j++ {
		header += fmt.Sprintf("%2d ", j)
	}
	sb.WriteString(paint(opts.Color, headerStyle, strings.TrimRight(header, " ")))
	sb.WriteRune('\n')

	for i := 0; i < naval.Size; i++ {
		sb.WriteString(paint(opts.Color, headerStyle, fmt.Sprintf("%2d ", i)))
		for j := 0; j < naval.Size; j++ {
			if j > 0 {
				sb.WriteRune(' ')
			}
			sb.WriteString(cell(g[i][j], opts))
		}
		sb.WriteRune('\n')
	}

	if opts.Legend {
		sb.WriteRune('\n')
		sb.WriteString(Legend(opts))
		sb.WriteRune('\n')
	}
	return sb.String()
}

// cell renders one cell, two columns wide.
func cell(c naval.Cell, opts Options) string {
	text := " " + string(Glyph(c))
	if opts.Codes {
		text = fmt.Sprintf("%2d", uint8(c))
	}
	style, ok := cellStyles[c]
	if !ok {
		return text
	}
	return paint(opts.Color, style, text)
}

// Legend returns a single line describing every state.
func Legend(opts Options) string {
	parts := make([]string, 0, len(legendOrder))
	for _, c := range legendOrder {
		key := string(Glyph(c))
		if opts.Codes {
			key = fmt.Sprintf("%d", uint8(c))
		}
		parts = append(parts, fmt.Sprintf("%s = %s", paint(opts.Color, cellStyles[c], key), c))
	}
	return "Legend: " + strings.Join(parts, ", ")
}

// Summary describes the state counts of g, omitting water.
func Summary(g naval.Grid) string {
	counts := naval.Tally(g)
	parts := make([]string, 0, len(legendOrder))
	for _, c := range legendOrder {
		if c == naval.Water || counts[c] == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %d", c, counts[c]))
	}
	if len(parts) == 0 {
		return "open water"
	}
	return strings.Join(parts, "  ")
}

// Title renders a heading line.
func Title(text string, color bool) string {
	return paint(color, titleStyle, "=== "+text+" ===")
}

func paint(color bool, style lipgloss.Style, text string) string {
	if !color {
		return text
	}
	return style.Render(text)
}
