package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-naval/internal/config"
)

var flagResolved bool

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Print the built-in scenario YAML",
	Long: `Print the built-in scenario as YAML, ready to be copied to
~/.naval/configs/scenario.yaml and edited.

With --resolved, print the scenario that would actually be used after
the config search (custom path, user config, ./configs, built-in).

Examples:
  naval scenario > ~/.naval/configs/scenario.yaml
  naval scenario --resolved --config ./my-scenario.yaml`,
	Run: runScenario,
}

func init() {
	scenarioCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the scenario after the config search")
}

func runScenario(_ *cobra.Command, _ []string) {
	if !flagResolved {
		//nolint:errcheck // Best-effort write to stdout
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	sc := loadScenario()
	data, err := yaml.Marshal(sc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding scenario: %v\n", err)
		os.Exit(1)
	}
	//nolint:errcheck // Best-effort write to stdout
	os.Stdout.Write(data)
}
