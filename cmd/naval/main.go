// naval is a terminal demonstration of a naval combat board: ships are
// placed on a 10x10 grid and area effects are stamped onto it step by step.
//
// Usage:
//
//	naval run                - Print every step of the scenario
//	naval view               - Step through the scenario interactively
//	naval shapes             - List available effect shapes
//	naval scenario           - Print the built-in scenario YAML
//	naval history [run-id]   - Show recorded runs
//	naval serve              - Serve the viewer over SSH
//
// Global flags:
//
//	--config <path>  - Scenario YAML (default: ~/.naval/configs/scenario.yaml, then built-in)
//	--db <path>      - History database path (default: ~/.naval/history.db)
//	--lenient        - Skip ships that cannot be placed instead of aborting
//	--verbose        - Log every placement and step
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-naval/internal/config"
	"github.com/vovakirdan/tui-naval/internal/scenario"
	// Import shapes to register them
	_ "github.com/vovakirdan/tui-naval/internal/shapes"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagLenient bool
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "naval",
	Short: "Naval board effects in your terminal",
	Long: `Naval places ships on a 10x10 board and stamps area effects
(cone, cross, octahedron) onto it, showing which ships get hit.

Available commands:
  run       - Print every step of the scenario
  view      - Step through the scenario interactively
  shapes    - List available effect shapes
  scenario  - Print the built-in scenario YAML
  history   - Show recorded runs
  serve     - Serve the viewer over SSH

Examples:
  naval run
  naval run --config ./my-scenario.yaml --save
  naval view --autoplay 2s
  naval history
  naval serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to scenario YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.naval/history.db", "Path to history database")
	rootCmd.PersistentFlags().BoolVar(&flagLenient, "lenient", false, "Skip ships that cannot be placed")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Verbose logging")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(scenarioCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger returns the stderr logger shared by every command.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "naval",
		Level:           log.WarnLevel,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadScenario loads the scenario or exits.
func loadScenario() config.Scenario {
	sc, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scenario: %v\n", err)
		os.Exit(1)
	}
	return sc
}

// playScenario runs sc or exits on failure.
func playScenario(sc config.Scenario, logger *log.Logger) *scenario.Run {
	runner := scenario.NewRunner(logger)
	runner.Strict = !flagLenient

	run, err := runner.Run(sc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return run
}
