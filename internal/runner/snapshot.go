package runner

import (
	"slices"

	"github.com/vovakirdan/tide-runner/internal/core"
)

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventLanded EventKind = iota
	EventSpawned
	EventSpeedUp
	EventScored
	EventCrashed
	EventNewHighScore
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventLanded:
		return "landed"
	case EventSpawned:
		return "spawned"
	case EventSpeedUp:
		return "speed_up"
	case EventScored:
		return "scored"
	case EventCrashed:
		return "crashed"
	case EventNewHighScore:
		return "new_high_score"
	default:
		return "unknown"
	}
}

// Event is emitted by Tick for hosts that react to game moments
// (sound, persistence, logging).
type Event struct {
	Kind     EventKind
	Frame    int
	Score    int      // EventScored, EventCrashed, EventNewHighScore
	Speed    float64  // EventSpeedUp
	Obstacle Obstacle // EventSpawned, EventCrashed
}

// StepResult is returned by Tick.
type StepResult struct {
	Snapshot Snapshot
	Events   []Event
}

// Has reports whether an event of the given kind occurred.
func (r StepResult) Has(kind EventKind) bool {
	for _, ev := range r.Events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}

// Snapshot is a read-only copy of the world after a tick.
// Its slices are copies; changing them does not affect the engine.
type Snapshot struct {
	State        RunState
	Run          int // 1-based number of the current or last run, 0 before the first
	Frame        int
	Score        int
	HighScore    int
	NewHighScore bool
	ScrollSpeed  float64
	ScrollOffset float64
	Player       PlayerState
	Hitbox       core.RectF
	Obstacles    []Obstacle
	Particles    []Particle
}

// Snapshot returns a copy of the current world.
func (e *Engine) Snapshot() Snapshot {
	player := e.player.State()
	return Snapshot{
		State:        e.state,
		Run:          e.runs,
		Frame:        e.frame,
		Score:        e.score.Score(),
		HighScore:    e.score.HighScore(),
		NewHighScore: e.state == StateGameOver && e.score.NewHighScore(),
		ScrollSpeed:  e.scrollSpeed,
		ScrollOffset: e.scrollOffset,
		Player:       player,
		Hitbox:       PlayerHitbox(player, e.cfg.Player, e.cfg.Field.GroundY),
		Obstacles:    slices.Clone(e.field.Obstacles()),
		Particles:    slices.Clone(e.particles.Particles()),
	}
}
