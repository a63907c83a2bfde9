// Package config provides YAML-based runner configuration loading and
// difficulty management.
package config

// RunnerConfig contains all tuning for the runner simulation.
// Distances are in world units (logical pixels), times in milliseconds,
// cadences in ticks.
type RunnerConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Player     PlayerConfig     `yaml:"player"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Particles  ParticleConfig   `yaml:"particles"`
}

// FieldConfig describes the play field.
type FieldConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	GroundY        float64 `yaml:"ground_y"`        // Y of the ground plane
	ParallaxFactor float64 `yaml:"parallax_factor"` // Scroll offset advance per unit of scroll speed
}

// PlayerConfig defines the player's hitbox.
type PlayerConfig struct {
	X           float64 `yaml:"x"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	SlideHeight float64 `yaml:"slide_height"`
}

// PhysicsConfig defines the vertical motion of the player.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"` // Negative = upward
}

// ObstacleConfig defines where obstacles enter and leave the field.
type ObstacleConfig struct {
	SpawnX      float64 `yaml:"spawn_x"`      // Entry X, just beyond the right edge
	PruneMargin float64 `yaml:"prune_margin"` // Distance past the left edge before removal
}

// DifficultyConfig defines scroll-speed ramping and spawn-interval shrinking.
type DifficultyConfig struct {
	Enabled bool        `yaml:"enabled"` // false keeps the scroll speed at its base value
	Speed   SpeedConfig `yaml:"speed"`
	Spawn   SpawnConfig `yaml:"spawn"`
}

// SpeedConfig is a step function of elapsed ticks.
type SpeedConfig struct {
	Base      float64 `yaml:"base"`
	Step      float64 `yaml:"step"`
	StepEvery int     `yaml:"step_every"` // ticks between steps
	Max       float64 `yaml:"max"`
}

// SpawnConfig shrinks the spawn interval linearly with score.
type SpawnConfig struct {
	BaseIntervalMs int `yaml:"base_interval_ms"`
	PerPointMs     int `yaml:"per_point_ms"`
	MaxReductionMs int `yaml:"max_reduction_ms"`
}

// ScoringConfig defines the score cadence.
type ScoringConfig struct {
	TicksPerPoint int `yaml:"ticks_per_point"`
}

// ParticleConfig tunes the cosmetic particle bursts.
type ParticleConfig struct {
	Gravity    float64 `yaml:"gravity"`
	DustCount  int     `yaml:"dust_count"`
	DustLife   int     `yaml:"dust_life"`
	JumpCount  int     `yaml:"jump_count"`
	JumpLife   int     `yaml:"jump_life"`
	DeathCount int     `yaml:"death_count"`
	DeathLife  int     `yaml:"death_life"`
}

// GroundTop returns the Y of the standing player's top edge.
func (c RunnerConfig) GroundTop() float64 {
	return c.Field.GroundY - c.Player.Height
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset.
// Unknown or empty values return "" and false, meaning "use the config as loaded".
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
