// Package runner implements the Tide Runner simulation: a surfer dodging
// rocks, waves, seagulls and jellyfish while the sea speeds up.
// The engine is single-threaded and frame-driven. The host calls Tick once
// per display frame, submits action requests between ticks and renders the
// returned snapshots.
package runner

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tide-runner/internal/config"
	"github.com/vovakirdan/tide-runner/internal/core"
)

// Engine owns the world of one player and advances it tick by tick.
// It is not safe for concurrent use.
type Engine struct {
	cfg        config.RunnerConfig
	rng        RandomSource
	logger     *log.Logger
	difficulty *config.DifficultyManager

	player    *Player
	field     *ObstacleField
	particles *ParticleSystem
	score     *ScoreKeeper

	state        RunState
	frame        int // Ticks since the run started
	scrollSpeed  float64
	scrollOffset float64
	lastSpawn    time.Time
	runs         int
}

// Option configures an Engine.
type Option func(*Engine)

// WithRandom injects the random source used for spawns and particles.
func WithRandom(rng RandomSource) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithSeed uses a seeded *rand.Rand as the random source.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = NewRandom(seed)
	}
}

// WithLogger sets the logger for run lifecycle messages.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithHighScore seeds the engine with a high score loaded by the caller.
func WithHighScore(score int) Option {
	return func(e *Engine) {
		e.score = NewScoreKeeper(e.cfg.Scoring.TicksPerPoint, score)
	}
}

// New creates an engine in the menu state.
func New(cfg config.RunnerConfig, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		player:     NewPlayer(cfg.GroundTop(), cfg.Physics.JumpImpulse),
		field:      NewObstacleField(cfg.Field.GroundY, cfg.Obstacles.SpawnX, cfg.Obstacles.PruneMargin),
		particles:  NewParticleSystem(cfg.Particles.Gravity),
		score:      NewScoreKeeper(cfg.Scoring.TicksPerPoint, 0),
		state:      StateMenu,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = NewRandom(time.Now().UnixNano())
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}

	e.resetWorld()
	return e, nil
}

// Config returns the configuration the engine runs with.
func (e *Engine) Config() config.RunnerConfig {
	return e.cfg
}

// State returns the current run state.
func (e *Engine) State() RunState {
	return e.state
}

// HighScore returns the best score known to the engine.
func (e *Engine) HighScore() int {
	return e.score.HighScore()
}

// resetWorld puts every component back to its start-of-run values.
func (e *Engine) resetWorld() {
	e.player.Reset()
	e.field.Reset()
	e.particles.Reset()
	e.score.Reset()
	e.frame = 0
	e.scrollSpeed = e.difficulty.BaseSpeed()
	e.scrollOffset = 0
}

// RequestStart begins a new run from the menu or game over screen.
// now starts the spawn clock. Ignored while playing.
func (e *Engine) RequestStart(now time.Time) bool {
	next, ok := e.state.Next(TriggerStart)
	if !ok {
		return false
	}

	e.resetWorld()
	e.lastSpawn = now
	e.state = next
	e.runs++

	e.logger.Debug("run started", "run", e.runs, "speed", e.scrollSpeed, "high_score", e.score.HighScore())
	return true
}

// RequestReset abandons the current run or game over screen and returns to
// the menu. An abandoned run does not count toward the high score.
func (e *Engine) RequestReset() bool {
	next, ok := e.state.Next(TriggerReset)
	if !ok {
		return false
	}

	if e.state == StatePlaying {
		e.logger.Debug("run abandoned", "run", e.runs, "score", e.score.Score(), "frame", e.frame)
	}
	e.resetWorld()
	e.state = next
	return true
}

// RequestJump launches the player if it is standing during a run.
func (e *Engine) RequestJump() bool {
	if e.state != StatePlaying || !e.player.ApplyJumpImpulse() {
		return false
	}
	e.emitJump()
	return true
}

// RequestSlideStart makes a grounded player slide during a run.
func (e *Engine) RequestSlideStart() bool {
	if e.state != StatePlaying {
		return false
	}
	return e.player.BeginSlide()
}

// RequestSlideEnd stands a sliding player back up during a run.
func (e *Engine) RequestSlideEnd() bool {
	if e.state != StatePlaying {
		return false
	}
	return e.player.EndSlide()
}

// Apply dispatches the engine actions of an input frame in a fixed order:
// Menu, Start, SlideEnd, SlideStart, Jump. Host-only actions are ignored.
func (e *Engine) Apply(in core.InputFrame, now time.Time) {
	if in.Has(core.ActionMenu) {
		e.RequestReset()
	}
	if in.Has(core.ActionStart) {
		e.RequestStart(now)
	}
	if in.Has(core.ActionSlideEnd) {
		e.RequestSlideEnd()
	}
	if in.Has(core.ActionSlideStart) {
		e.RequestSlideStart()
	}
	if in.Has(core.ActionJump) {
		e.RequestJump()
	}
}

// Tick advances a run by one frame. Outside the playing state it changes
// nothing and returns the current snapshot.
//
// The sub-updates run in a fixed order so that collision always sees the
// post-update positions of this frame.
func (e *Engine) Tick(now time.Time) StepResult {
	if e.state != StatePlaying {
		return StepResult{Snapshot: e.Snapshot()}
	}

	var events []Event

	// 1. Parallax
	e.scrollOffset = math.Mod(e.scrollOffset+e.scrollSpeed*e.cfg.Field.ParallaxFactor, e.cfg.Field.Width)

	// 2. Player physics
	if e.player.Integrate(e.cfg.Physics.Gravity) {
		e.emitDust()
		events = append(events, Event{Kind: EventLanded, Frame: e.frame})
	}

	// 3. Obstacles
	e.field.Advance(e.scrollSpeed)

	// 4. Particles
	e.particles.Update()

	// 5. Spawning is wall-clock based
	if now.Sub(e.lastSpawn) > e.difficulty.SpawnInterval(e.score.Score()) {
		o := e.field.SpawnRandom(e.rng)
		e.lastSpawn = now
		events = append(events, Event{Kind: EventSpawned, Frame: e.frame, Obstacle: o})
	}

	// 6. Speed ramp is tick based
	e.frame++
	if speed := e.difficulty.ScrollSpeed(e.frame); speed != e.scrollSpeed {
		e.scrollSpeed = speed
		events = append(events, Event{Kind: EventSpeedUp, Frame: e.frame, Speed: speed})
	}

	// 7. Score cadence
	if e.score.Tick(e.frame) {
		events = append(events, Event{Kind: EventScored, Frame: e.frame, Score: e.score.Score()})
	}

	// 8. Collision against the updated world
	hitbox := PlayerHitbox(e.player.State(), e.cfg.Player, e.cfg.Field.GroundY)
	if o, hit := FirstCollision(hitbox, e.field.Obstacles()); hit {
		events = append(events, e.gameOver(o)...)
	}

	return StepResult{Snapshot: e.Snapshot(), Events: events}
}

// gameOver ends the run after a hit.
func (e *Engine) gameOver(o Obstacle) []Event {
	e.state = e.state.mustNext(TriggerCollision)
	e.emitDeath()

	high, isNew := e.score.Finish()
	events := []Event{{Kind: EventCrashed, Frame: e.frame, Score: e.score.Score(), Obstacle: o}}
	if isNew {
		events = append(events, Event{Kind: EventNewHighScore, Frame: e.frame, Score: high})
	}

	e.logger.Debug("run over",
		"run", e.runs,
		"score", e.score.Score(),
		"frame", e.frame,
		"obstacle", o.Type,
		"new_high", isNew,
	)
	return events
}

// emitJump throws spray from the player's feet.
func (e *Engine) emitJump() {
	p := e.cfg.Particles
	e.particles.Emit(Burst{
		X:       e.cfg.Player.X + e.cfg.Player.Width/2,
		Y:       e.cfg.Field.GroundY,
		Count:   p.JumpCount,
		Life:    p.JumpLife,
		SpreadX: 4,
		DriftX:  -1,
		Lift:    3,
		Colors:  []core.Color{core.ColorSurfer, core.ColorFoam},
	}, e.rng)
}

// emitDust kicks up sand on landing.
func (e *Engine) emitDust() {
	p := e.cfg.Particles
	e.particles.Emit(Burst{
		X:       e.cfg.Player.X + e.cfg.Player.Width/2,
		Y:       e.cfg.Field.GroundY,
		Count:   p.DustCount,
		Life:    p.DustLife,
		SpreadX: 3,
		DriftX:  -e.scrollSpeed / 4,
		Lift:    1.5,
		Colors:  []core.Color{core.ColorSand, core.ColorOrange},
	}, e.rng)
}

// emitDeath bursts from the center of the player's hitbox.
func (e *Engine) emitDeath() {
	p := e.cfg.Particles
	box := PlayerHitbox(e.player.State(), e.cfg.Player, e.cfg.Field.GroundY)
	e.particles.Emit(Burst{
		X:       box.X + box.W/2,
		Y:       box.Y + box.H/2,
		Count:   p.DeathCount,
		Life:    p.DeathLife,
		SpreadX: 8,
		Lift:    6,
		Colors:  []core.Color{core.ColorCrashed, core.ColorOrange, core.ColorBrightYellow},
	}, e.rng)
}
