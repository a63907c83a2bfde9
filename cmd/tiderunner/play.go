package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tide-runner/internal/core"
	"github.com/vovakirdan/tide-runner/internal/platform/tui"
	"github.com/vovakirdan/tide-runner/internal/storage"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start Tide Runner in this terminal.

Controls:
  Enter/Space  - Start a run
  Space/W/Up   - Jump
  S/Down       - Slide (hold)
  P            - Pause
  M/Esc        - Back to menu
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower start, slower ramp, sparser obstacles
  normal - Config as loaded
  hard   - Faster start, denser obstacles
  fixed  - No speed progression

Examples:
  tiderunner play
  tiderunner play --difficulty easy
  tiderunner play --config ./my-runner.yaml
  tiderunner play --log-file /tmp/tiderunner.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the game owns the terminal)")
}

func runPlay(_ *cobra.Command, _ []string) {
	runnerCfg, preset, err := loadRunnerConfig()
	if err != nil {
		fatal("%v", err)
	}

	// The alternate screen owns stdout, so logs go to a file or nowhere
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			fatal("cannot open log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "tiderunner")
	if err != nil {
		fatal("%v", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Config: runnerCfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:  store,
		Preset: preset,
		Player: "local",
		Logger: logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fatal("running game: %v", runErr)
	}
}
