package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-naval/internal/registry"
	"github.com/vovakirdan/tui-naval/internal/render"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "List available effect shapes",
	Long:  `Shows every effect shape that scenario steps can reference.`,
	Run:   runShapes,
}

func runShapes(_ *cobra.Command, _ []string) {
	shapes := registry.List()

	if len(shapes) == 0 {
		fmt.Println("No shapes available.")
		return
	}

	fmt.Println("Available shapes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range shapes {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	fmt.Printf("  %-*s  %-6s  %-9s  %s\n", maxIDLen, "ID", "Glyph", "Direction", "Title")
	fmt.Printf("  %-*s  %-6s  %-9s  %s\n", maxIDLen, "--", "-----", "---------", "-----")

	for _, s := range shapes {
		dir := "no"
		if s.Directional {
			dir = "yes"
		}
		fmt.Printf("  %-*s  %-6c  %-9s  %s\n", maxIDLen, s.ID, render.Glyph(s.Marker), dir, s.Title)
	}

	fmt.Println()
	fmt.Println("Reference a shape by ID in a scenario step, e.g. {shape: cone, row: 5, col: 3, range: 3, direction: north}.")
}
