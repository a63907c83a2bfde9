package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Field: FieldConfig{
			Width:          800,
			Height:         400,
			GroundY:        320,
			ParallaxFactor: 0.5,
		},
		Player: PlayerConfig{
			X:           100,
			Width:       50,
			Height:      40,
			SlideHeight: 20,
		},
		Physics: PhysicsConfig{
			Gravity:     0.8,
			JumpImpulse: -15,
		},
		Obstacles: ObstacleConfig{
			SpawnX:      820,
			PruneMargin: 50,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Speed: SpeedConfig{
				Base:      6,
				Step:      0.5,
				StepEvery: 300,
				Max:       14,
			},
			Spawn: SpawnConfig{
				BaseIntervalMs: 1500,
				PerPointMs:     2,
				MaxReductionMs: 800,
			},
		},
		Scoring: ScoringConfig{
			TicksPerPoint: 10,
		},
		Particles: ParticleConfig{
			Gravity:    0.3,
			DustCount:  6,
			DustLife:   20,
			JumpCount:  8,
			JumpLife:   25,
			DeathCount: 24,
			DeathLife:  40,
		},
	}
}
