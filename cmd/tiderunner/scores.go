package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tide-runner/internal/platform/tui"
	"github.com/vovakirdan/tide-runner/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagPlayer      string
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best stored runs.

Examples:
  tiderunner scores
  tiderunner scores --limit 25
  tiderunner scores --player alice
  tiderunner scores --interactive
  tiderunner scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a scrollable table")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show runs of this player, most recent first")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all stored runs")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening runs database: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fatal("%v", err)
		}
		fmt.Println("All runs deleted.")
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		player := flagPlayer
		if player == "" {
			player = "local"
		}
		if err := tui.RunScoreboard(store, player, flagLimit, width, height); err != nil {
			fatal("%v", err)
		}
		return
	}

	var runs []storage.RunRecord
	title := "High Scores"
	if flagPlayer != "" {
		runs, err = store.RunsByPlayer(flagPlayer, flagLimit)
		title = "Recent runs - " + flagPlayer
	} else {
		runs, err = store.TopRuns(flagLimit)
	}
	if err != nil {
		fatal("%v", err)
	}

	fmt.Println(lipgloss.NewStyle().Bold(true).Render(title))
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'tiderunner play' to set the first high score!")
		return
	}

	fmt.Println(runsTable(runs))

	stats, err := store.Stats()
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  |  Runs: %d  |  Average: %.1f\n", stats.HighScore, stats.Runs, stats.AvgScore)
	}
}

// runsTable renders runs as a bordered table.
func runsTable(runs []storage.RunRecord) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Rank", "Score", "Frames", "Player", "Preset", "Date")

	for i, r := range runs {
		preset := r.Preset
		if preset == "" {
			preset = "-"
		}
		date := "-"
		if !r.CreatedAt.IsZero() {
			date = r.CreatedAt.Local().Format("2006-01-02 15:04")
		}
		t.Row(
			fmt.Sprintf("#%d", i+1),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Frames),
			r.Player,
			preset,
			date,
		)
	}
	return t.String()
}
