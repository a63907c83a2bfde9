package config

import (
	"fmt"
	"math"
	"time"
)

// DifficultyManager derives the scroll speed and spawn interval of a run.
// Scroll speed ramps with elapsed ticks; the spawn interval shrinks with score.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether scroll speed progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// BaseSpeed returns the scroll speed a run starts with.
func (d *DifficultyManager) BaseSpeed() float64 {
	return d.cfg.Speed.Base
}

// ScrollSpeed returns the scroll speed after the given number of ticks.
// It is a non-decreasing step function capped at the configured maximum.
func (d *DifficultyManager) ScrollSpeed(ticks int) float64 {
	s := d.cfg.Speed
	if !d.cfg.Enabled || ticks <= 0 || s.StepEvery <= 0 {
		return s.Base
	}
	steps := ticks / s.StepEvery
	return math.Min(s.Base+float64(steps)*s.Step, s.Max)
}

// SpawnIntervalMs returns the minimum gap between spawns, in milliseconds,
// for the given score: base - min(score*perPoint, maxReduction).
func (d *DifficultyManager) SpawnIntervalMs(score int) int {
	s := d.cfg.Spawn
	if score < 0 {
		score = 0
	}
	reduction := score * s.PerPointMs
	if reduction > s.MaxReductionMs || reduction < 0 {
		reduction = s.MaxReductionMs
	}
	interval := s.BaseIntervalMs - reduction
	if interval < 0 {
		panic(fmt.Sprintf("config: negative spawn interval %dms for score %d", interval, score))
	}
	return interval
}

// SpawnInterval is SpawnIntervalMs as a duration.
func (d *DifficultyManager) SpawnInterval(score int) time.Duration {
	return time.Duration(d.SpawnIntervalMs(score)) * time.Millisecond
}

// MinSpawnIntervalMs returns the floor the spawn interval converges to.
func (d *DifficultyManager) MinSpawnIntervalMs() int {
	return d.cfg.Spawn.BaseIntervalMs - d.cfg.Spawn.MaxReductionMs
}
