package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tide-runner/internal/config"
	"github.com/vovakirdan/tide-runner/internal/core"
	"github.com/vovakirdan/tide-runner/internal/runner"
	"github.com/vovakirdan/tide-runner/internal/storage"
)

var (
	flagTicks     int
	flagAutopilot bool
	flagMaxRuns   int
	flagSave      bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the engine headless",
	Long: `Run the simulation without a terminal on a virtual clock and
report every finished run. A new run starts as soon as one ends.

Without --autopilot the surfer never moves, which measures how quickly
the obstacle stream kills a passive player.

Examples:
  tiderunner simulate --ticks 36000 --seed 7
  tiderunner simulate --autopilot --runs 10 --log-level debug
  tiderunner simulate --autopilot --difficulty hard --save`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 36000, "Number of ticks to simulate")
	simulateCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Let a simple bot jump and slide")
	simulateCmd.Flags().IntVar(&flagMaxRuns, "runs", 0, "Stop after this many finished runs (0 = no limit)")
	simulateCmd.Flags().BoolVar(&flagSave, "save", false, "Store finished runs in the database as player 'simulate'")
}

type simOptions struct {
	Ticks     int
	MaxRuns   int
	Seed      int64
	FPS       int
	Autopilot bool
	Preset    string
	Logger    *log.Logger
}

type simResult struct {
	Runs    []storage.RunRecord
	Killers map[runner.ObstacleType]int
	Best    int
	Ticks   int
}

// simulate drives an engine on a virtual clock.
func simulate(cfg config.RunnerConfig, opts simOptions) (simResult, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}

	engine, err := runner.New(cfg, runner.WithSeed(opts.Seed), runner.WithLogger(logger))
	if err != nil {
		return simResult{}, err
	}

	result := simResult{Killers: make(map[runner.ObstacleType]int)}
	step := time.Second / time.Duration(opts.FPS)
	now := time.Unix(0, 0).UTC()
	in := core.NewInputFrame()
	snap := engine.Snapshot()

	for result.Ticks < opts.Ticks {
		if engine.State() != runner.StatePlaying {
			if opts.MaxRuns > 0 && len(result.Runs) >= opts.MaxRuns {
				break
			}
			engine.RequestStart(now)
			snap = engine.Snapshot()
		}

		if opts.Autopilot {
			if a := autopilot(snap, cfg); a != core.ActionNone {
				in.Set(a)
			}
			engine.Apply(in, now)
			in.Clear()
		}

		res := engine.Tick(now)
		snap = res.Snapshot
		now = now.Add(step)
		result.Ticks++

		for _, ev := range res.Events {
			switch ev.Kind {
			case runner.EventCrashed:
				result.Runs = append(result.Runs, storage.RunRecord{
					Score:  ev.Score,
					Frames: ev.Frame,
					Preset: opts.Preset,
					Seed:   opts.Seed,
					Player: "simulate",
				})
				result.Killers[ev.Obstacle.Type]++
				logger.Info("run over", "run", snap.Run, "score", ev.Score, "frames", ev.Frame, "hit", ev.Obstacle.Type)
			case runner.EventNewHighScore:
				logger.Info("new high score", "score", ev.Score)
			case runner.EventSpeedUp:
				logger.Debug("speed up", "frame", ev.Frame, "speed", ev.Speed)
			case runner.EventSpawned:
				logger.Debug("spawned", "frame", ev.Frame, "type", ev.Obstacle.Type, "y", ev.Obstacle.Y)
			}
		}
	}

	result.Best = engine.HighScore()
	return result, nil
}

func runSimulate(_ *cobra.Command, _ []string) {
	logger, err := newLogger(os.Stderr, "simulate")
	if err != nil {
		fatal("%v", err)
	}

	cfg, preset, err := loadRunnerConfig()
	if err != nil {
		fatal("%v", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("simulating", "ticks", flagTicks, "seed", seed, "autopilot", flagAutopilot, "preset", preset)

	result, err := simulate(cfg, simOptions{
		Ticks:     flagTicks,
		MaxRuns:   flagMaxRuns,
		Seed:      seed,
		FPS:       flagFPS,
		Autopilot: flagAutopilot,
		Preset:    preset,
		Logger:    logger,
	})
	if err != nil {
		fatal("%v", err)
	}

	if flagSave && len(result.Runs) > 0 {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fatal("opening runs database: %v", err)
		}
		for _, r := range result.Runs {
			if _, err := store.SaveRun(r); err != nil {
				logger.Warn("could not save run", "error", err)
			}
		}
		store.Close()
	}

	fmt.Printf("Simulated %d ticks, %d finished runs, best score %d\n", result.Ticks, len(result.Runs), result.Best)
	if len(result.Runs) == 0 {
		return
	}

	top := append([]storage.RunRecord(nil), result.Runs...)
	sort.SliceStable(top, func(i, j int) bool { return top[i].Score > top[j].Score })
	if len(top) > 10 {
		top = top[:10]
	}
	fmt.Println()
	fmt.Println(runsTable(top))

	fmt.Println()
	fmt.Println("Crashes by obstacle:")
	for _, typ := range runner.ObstacleTypes() {
		fmt.Printf("  %-10s %d\n", typ, result.Killers[typ])
	}
}
