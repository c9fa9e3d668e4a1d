package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-naval/internal/platform/tui"
	"github.com/vovakirdan/tui-naval/internal/render"
	"github.com/vovakirdan/tui-naval/internal/scenario"
	"github.com/vovakirdan/tui-naval/internal/storage"
)

var (
	flagPlain   bool
	flagCodes   bool
	flagEffects bool
	flagSave    bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Print every step of the scenario",
	Long: `Place the scenario's ships and print the board after each effect step.

Each step starts from the ship board: effects never accumulate between steps.
Color is used only when stdout is a terminal.

Examples:
  naval run
  naval run --plain --codes
  naval run --effects
  naval run --config ./my-scenario.yaml --save`,
	Run: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&flagPlain, "plain", false, "Disable color")
	runCmd.Flags().BoolVar(&flagCodes, "codes", false, "Print numeric cell codes instead of glyphs")
	runCmd.Flags().BoolVar(&flagEffects, "effects", false, "Also print each step's effect grid")
	runCmd.Flags().BoolVar(&flagSave, "save", false, "Record the run in the history database")
}

// renderOptions picks color based on the flags and the terminal.
func renderOptions() render.Options {
	return render.Options{
		Color: !flagPlain && term.IsTerminal(int(os.Stdout.Fd())),
		Codes: flagCodes,
	}
}

func runRun(_ *cobra.Command, _ []string) {
	sc := loadScenario()
	run := playScenario(sc, newLogger())
	opts := renderOptions()

	printRun(run, opts)

	if !flagSave {
		return
	}

	id, err := saveRun(run)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving run: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved run %s\n", id)
}

// saveRun records run in the history database.
func saveRun(run *scenario.Run) (string, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return "", err
	}
	defer store.Close()

	return tui.SaveRun(store, run)
}

func printRun(run *scenario.Run, opts render.Options) {
	fmt.Println(render.Title(run.Name+": initial board", opts.Color))
	fmt.Print(render.Board(run.Board, opts))
	for i, p := range run.Placements {
		if p.Err != nil {
			fmt.Printf("ship %d skipped: %v\n", i+1, p.Err)
		}
	}
	fmt.Println()

	for _, f := range run.Frames {
		fmt.Println(render.Title(fmt.Sprintf("Step %d/%d: %s", f.Step, len(run.Frames), f.Title), opts.Color))
		if flagEffects {
			fmt.Println("Effect:")
			fmt.Print(render.Board(f.Effect, opts))
			fmt.Println("Result:")
		}
		fmt.Print(render.Board(f.Result, opts))
		fmt.Printf("Hits: %d    %s\n\n", f.Hits, render.Summary(f.Result))
	}

	fmt.Println(render.Legend(opts))
	fmt.Printf("Ships placed: %d/%d    Total hits: %d\n", run.ShipsPlaced(), len(run.Placements), run.TotalHits())
}
