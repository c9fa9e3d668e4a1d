package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-naval/internal/platform/tui"
	"github.com/vovakirdan/tui-naval/internal/render"
)

var flagAutoplay time.Duration

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Step through the scenario interactively",
	Long: `Open a full-screen viewer that shows one step at a time.

Controls:
  Enter/Space/Right  - Next step (past the last step exits)
  Left               - Previous step
  g/G                - First/last step
  c                  - Toggle numeric cell codes
  Q/Esc/Ctrl+C       - Quit

Examples:
  naval view
  naval view --autoplay 2s`,
	Run: runView,
}

func init() {
	viewCmd.Flags().DurationVar(&flagAutoplay, "autoplay", 0, "Advance automatically at this interval (0 = manual)")
	viewCmd.Flags().BoolVar(&flagPlain, "plain", false, "Disable color")
	viewCmd.Flags().BoolVar(&flagSave, "save", false, "Record the run in the history database")
}

func runView(_ *cobra.Command, _ []string) {
	sc := loadScenario()
	run := playScenario(sc, newLogger())

	if flagSave {
		if _, err := saveRun(run); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving run: %v\n", err)
		}
	}

	opts := render.Options{Color: !flagPlain}
	if err := tui.RunViewer(run, opts, flagAutoplay); err != nil {
		fmt.Fprintf(os.Stderr, "Error running viewer: %v\n", err)
		os.Exit(1)
	}
}
