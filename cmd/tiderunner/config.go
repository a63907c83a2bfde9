package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tide-runner/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the runner configuration as YAML, after the search path and
any --difficulty preset have been applied. The output is a valid config
file.

Search order:
  --config <path>
  ~/.tiderunner/configs/runner.yaml
  ./configs/runner.yaml
  built-in defaults

Examples:
  tiderunner config
  tiderunner config --difficulty hard > ~/.tiderunner/configs/runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, _, err := loadRunnerConfig()
	if err != nil {
		fatal("%v", err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fatal("%v", err)
	}
	fmt.Print(string(data))
}
