package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tide-runner/internal/config"
	"github.com/vovakirdan/tide-runner/internal/core"
	"github.com/vovakirdan/tide-runner/internal/runner"
	"github.com/vovakirdan/tide-runner/internal/storage"
)

// Options configures a game model.
type Options struct {
	Config   config.RunnerConfig
	Runtime  core.RuntimeConfig
	Store    *storage.Store // nil disables persistence
	Preset   string         // recorded with each run
	Player   string         // "local" or the SSH user
	Logger   *log.Logger
	Renderer *lipgloss.Renderer // nil uses the local terminal
}

// Model is the Bubble Tea model that drives one runner engine.
type Model struct {
	engine     *runner.Engine
	view       *View
	painter    *Painter
	screen     *core.Screen
	store      *storage.Store
	keys       *KeyMapper
	clock      *gameClock
	config     core.RuntimeConfig
	preset     string
	player     string
	logger     *log.Logger
	inputFrame core.InputFrame
	snapshot   runner.Snapshot
	now        func() time.Time
	quitting   bool
}

// NewModel creates a model in the menu state. The stored high score is
// loaded from the store when one is given.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	def := core.DefaultConfig()
	if cfg.TickRate <= 0 {
		cfg.TickRate = def.TickRate
	}
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	player := opts.Player
	if player == "" {
		player = "local"
	}

	high := 0
	if opts.Store != nil {
		h, err := opts.Store.HighScore()
		if err != nil {
			logger.Warn("could not load high score", "error", err)
		} else {
			high = h
		}
	}

	engine, err := runner.New(opts.Config,
		runner.WithSeed(cfg.Seed),
		runner.WithHighScore(high),
		runner.WithLogger(logger),
	)
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	return Model{
		engine:     engine,
		view:       NewView(opts.Config.Field),
		painter:    NewPainter(opts.Renderer),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		keys:       NewKeyMapper(DefaultSlideHold),
		clock:      &gameClock{},
		config:     cfg,
		preset:     opts.Preset,
		player:     player,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		snapshot:   engine.Snapshot(),
		now:        time.Now,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	playing := m.engine.State() == runner.StatePlaying
	if m.keys.MapKeyToFrame(msg, playing, m.now(), &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick applies the accumulated input and advances the engine.
func (m Model) handleTick(wall time.Time) (tea.Model, tea.Cmd) {
	defer m.inputFrame.Clear()

	if m.inputFrame.Has(core.ActionPause) && m.engine.State() == runner.StatePlaying {
		if m.clock.Paused() {
			m.clock.Resume(wall)
		} else {
			m.clock.Pause(wall)
		}
	}
	if m.inputFrame.Has(core.ActionMenu) || m.engine.State() != runner.StatePlaying {
		// Leaving play always unpauses
		m.clock.Resume(wall)
	}

	if m.clock.Paused() {
		return m, tickCmd(m.config.TickRate)
	}

	m.keys.Release(wall, &m.inputFrame)

	now := m.clock.Now(wall)
	m.engine.Apply(m.inputFrame, now)
	result := m.engine.Tick(now)
	m.snapshot = result.Snapshot

	for _, ev := range result.Events {
		switch ev.Kind {
		case runner.EventCrashed:
			m.keys.Forget()
			m.saveRun(ev)
		case runner.EventNewHighScore:
			m.logger.Info("new high score", "player", m.player, "score", ev.Score)
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun persists a finished run. Failures are logged; play continues.
func (m Model) saveRun(ev runner.Event) {
	if m.store == nil {
		return
	}
	_, err := m.store.SaveRun(storage.RunRecord{
		Score:  ev.Score,
		Frames: ev.Frame,
		Preset: m.preset,
		Seed:   m.config.Seed,
		Player: m.player,
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.view.Draw(m.screen, m.snapshot, m.clock.Paused())

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".tiderunner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	filename := fmt.Sprintf("run%d_%s.txt", m.snapshot.Run, time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.view.Draw(m.screen, m.snapshot, m.clock.Paused())
	return m.painter.Paint(m.screen)
}

// Snapshot returns the snapshot of the last tick.
func (m Model) Snapshot() runner.Snapshot {
	return m.snapshot
}

// Paused reports whether the game clock is stopped.
func (m Model) Paused() bool {
	return m.clock.Paused()
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
