// tiderunner is an endless runner for the terminal: surf the shoreline,
// jump rocks and waves, slide under jellyfish.
//
// Usage:
//
//	tiderunner play          - Play in this terminal
//	tiderunner serve         - Start SSH server for remote play
//	tiderunner scores        - Show the best runs
//	tiderunner config        - Print the effective configuration
//	tiderunner simulate      - Run the engine headless
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible runs
//	--db <path>         - Set database path (default: ~/.tiderunner/runs.db)
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tide-runner/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	// Runner tuning flags, shared by the commands that build an engine
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tiderunner",
	Short: "Tide Runner - an endless runner in your terminal",
	Long: `Tide Runner is a terminal endless runner. Your surfer rides the
shoreline while rocks, waves, seagulls and jellyfish come at you faster
and faster.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  scores    - View the best runs
  config    - Print the effective configuration
  simulate  - Run the engine headless

Examples:
  tiderunner play
  tiderunner play --difficulty hard
  tiderunner serve --ssh :2222
  tiderunner scores --interactive
  tiderunner simulate --ticks 36000 --autopilot --seed 7`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tiderunner/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	for _, cmd := range []*cobra.Command{playCmd, serveCmd, configCmd, simulateCmd} {
		addRunnerFlags(cmd)
	}

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(simulateCmd)
}

func addRunnerFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// loadRunnerConfig loads the configuration and applies --difficulty.
// Returns the applied preset name, empty if none.
func loadRunnerConfig() (config.RunnerConfig, string, error) {
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return config.RunnerConfig{}, "", err
	}

	if flagDifficulty == "" {
		return cfg, "", nil
	}
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return config.RunnerConfig{}, "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.RunnerConfig{}, "", err
	}
	return cfg, string(preset), nil
}

// newLogger builds a logger at --log-level writing to w.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          prefix,
	}), nil
}

// fatal prints an error and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
