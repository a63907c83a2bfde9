package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.tiderunner/configs/runner.yaml -> ./configs/runner.yaml -> embedded default.
// Files are layered over the defaults, so a file only needs the keys it changes.
func LoadRunner(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "runner.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the default configuration and validates the result.
func Parse(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg RunnerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tiderunner", "configs", filename)
}

// Validate rejects configurations the simulation cannot run with.
func (c RunnerConfig) Validate() error {
	var errs []error
	check := func(ok bool, msg string) {
		if !ok {
			errs = append(errs, errors.New(msg))
		}
	}

	check(c.Field.Width > 0 && c.Field.Height > 0, "field dimensions must be positive")
	check(c.Field.GroundY > 0 && c.Field.GroundY <= c.Field.Height, "ground_y must lie inside the field")
	check(c.Field.ParallaxFactor >= 0, "parallax_factor must not be negative")
	check(c.Player.Width > 0 && c.Player.Height > 0, "player dimensions must be positive")
	check(c.Player.Height < c.Field.GroundY, "player must fit above the ground")
	check(c.Player.SlideHeight > 0 && c.Player.SlideHeight < c.Player.Height, "slide_height must be positive and below player height")
	check(c.Physics.Gravity > 0, "gravity must be positive")
	check(c.Physics.JumpImpulse < 0, "jump_impulse must be negative (upward)")
	check(c.Obstacles.SpawnX >= c.Field.Width, "spawn_x must be at or beyond the right edge")
	check(c.Obstacles.PruneMargin >= 0, "prune_margin must not be negative")
	check(c.Difficulty.Speed.Base > 0, "base speed must be positive")
	check(c.Difficulty.Speed.Step >= 0, "speed step must not be negative")
	check(c.Difficulty.Speed.StepEvery > 0, "speed step_every must be positive")
	check(c.Difficulty.Speed.Max >= c.Difficulty.Speed.Base, "max speed must be at least the base speed")
	check(c.Difficulty.Spawn.BaseIntervalMs > 0, "base spawn interval must be positive")
	check(c.Difficulty.Spawn.PerPointMs >= 0, "per_point_ms must not be negative")
	check(c.Difficulty.Spawn.MaxReductionMs >= 0 &&
		c.Difficulty.Spawn.MaxReductionMs <= c.Difficulty.Spawn.BaseIntervalMs,
		"max_reduction_ms must be between 0 and the base interval")
	check(c.Scoring.TicksPerPoint > 0, "ticks_per_point must be positive")
	check(c.Particles.DustLife >= 0 && c.Particles.JumpLife >= 0 && c.Particles.DeathLife >= 0,
		"particle lifetimes must not be negative")

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true

	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Speed.Base = 5
		cfg.Difficulty.Speed.StepEvery = 450
		cfg.Difficulty.Spawn.BaseIntervalMs = 1800
	case DifficultyHard:
		cfg.Difficulty.Speed.Base = 8
		cfg.Difficulty.Spawn.BaseIntervalMs = 1200
	}

	if cfg.Difficulty.Speed.Max < cfg.Difficulty.Speed.Base {
		cfg.Difficulty.Speed.Max = cfg.Difficulty.Speed.Base
	}
	if cfg.Difficulty.Spawn.MaxReductionMs > cfg.Difficulty.Spawn.BaseIntervalMs {
		cfg.Difficulty.Spawn.MaxReductionMs = cfg.Difficulty.Spawn.BaseIntervalMs
	}
}
