package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-naval/internal/platform/tui"
	"github.com/vovakirdan/tui-naval/internal/storage"
)

var (
	flagLimit  int
	flagBrowse bool
	flagClear  bool
)

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "Show recorded runs",
	Long: `List the most recent runs recorded with --save or by the SSH server.
Given a run ID, print the boards recorded for that run.

Examples:
  naval history
  naval history --limit 20
  naval history --browse
  naval history 6f1c9a4e-...`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to list")
	historyCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse runs in an interactive table")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runHistory(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("History cleared.")

	case len(args) == 1:
		printFrames(store, args[0])

	case flagBrowse:
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running history browser: %v\n", err)
			os.Exit(1)
		}

	default:
		printRuns(store)
	}
}

func printRuns(store *storage.Store) {
	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Use 'naval run --save' to record one!")
		return
	}

	fmt.Printf("  %-36s  %-12s  %-5s  %-5s  %-4s  %s\n", "Run ID", "Scenario", "Ships", "Steps", "Hits", "Date")
	fmt.Printf("  %-36s  %-12s  %-5s  %-5s  %-4s  %s\n", "------", "--------", "-----", "-----", "----", "----")

	for _, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-36s  %-12s  %-5d  %-5d  %-4d  %s\n", r.RunID, r.Scenario, r.Ships, r.Steps, r.Hits, dateStr)
	}
}

func printFrames(store *storage.Store, runID string) {
	frames, err := store.Frames(runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving frames: %v\n", err)
		os.Exit(1)
	}
	if len(frames) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no frames recorded for run %q\n", runID)
		fmt.Fprintln(os.Stderr, "Run 'naval history' to see recorded runs.")
		os.Exit(1)
	}

	for _, f := range frames {
		fmt.Printf("=== Step %d: %s (hits: %d) ===\n", f.Step, f.Title, f.Hits)
		fmt.Println(f.Board)
	}
}
