package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tide-runner/internal/config"
	"github.com/vovakirdan/tide-runner/internal/core"
	"github.com/vovakirdan/tide-runner/internal/runner"
	"github.com/vovakirdan/tide-runner/internal/storage"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	m, err := NewModel(Options{
		Config:  config.DefaultRunnerConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1},
		Store:   store,
		Preset:  "normal",
	})
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	m.now = func() time.Time { return t0 }
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model, at time.Time) Model {
	t.Helper()
	m, _ = send(t, m, TickMsg(at))
	return m
}

func TestModelStartsFromMenu(t *testing.T) {
	m := newTestModel(t, nil)
	if m.Snapshot().State != runner.StateMenu {
		t.Fatalf("initial state = %v, want menu", m.Snapshot().State)
	}

	m = tick(t, m, t0)
	if m.Snapshot().Frame != 0 {
		t.Error("menu should not advance frames")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m, t0)
	if m.Snapshot().State != runner.StatePlaying {
		t.Fatalf("state after enter = %v, want playing", m.Snapshot().State)
	}
	if m.Snapshot().Frame != 1 {
		t.Errorf("frame = %d, want 1", m.Snapshot().Frame)
	}
}

func TestModelJumpAndSlide(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = tick(t, m, t0)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = tick(t, m, t0)
	if got := m.Snapshot().Player.Stance; got != runner.StanceJumping {
		t.Fatalf("stance after space = %v, want Jumping", got)
	}

	for i := 0; i < 60; i++ {
		m = tick(t, m, t0)
	}
	if got := m.Snapshot().Player.Stance; got != runner.StanceStanding {
		t.Fatalf("stance after landing = %v, want Standing", got)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = tick(t, m, t0)
	if got := m.Snapshot().Player.Stance; got != runner.StanceSliding {
		t.Fatalf("stance after down = %v, want Sliding", got)
	}

	m = tick(t, m, t0.Add(100*time.Millisecond))
	if got := m.Snapshot().Player.Stance; got != runner.StanceSliding {
		t.Errorf("slide ended inside the hold window")
	}

	m = tick(t, m, t0.Add(300*time.Millisecond))
	if got := m.Snapshot().Player.Stance; got != runner.StanceStanding {
		t.Errorf("stance after hold window = %v, want Standing", got)
	}
}

func TestModelPauseFreezesGame(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m, t0)

	m, _ = send(t, m, runeKey('p'))
	m = tick(t, m, t0.Add(time.Second))
	if !m.Paused() {
		t.Fatal("expected pause")
	}
	frame := m.Snapshot().Frame

	for i := 1; i <= 10; i++ {
		m = tick(t, m, t0.Add(time.Duration(i)*time.Minute))
	}
	if m.Snapshot().Frame != frame {
		t.Error("frames advanced while paused")
	}

	m, _ = send(t, m, runeKey('p'))
	m = tick(t, m, t0.Add(11*time.Minute))
	if m.Paused() {
		t.Fatal("expected resume")
	}
	if m.Snapshot().Frame != frame+1 {
		t.Errorf("frame after resume = %d, want %d", m.Snapshot().Frame, frame+1)
	}
	if len(m.Snapshot().Obstacles) != 0 {
		t.Error("paused time released a spawn")
	}
}

func TestModelMenuKeyAbandonsRun(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m, t0)

	m, _ = send(t, m, runeKey('m'))
	m = tick(t, m, t0)
	if m.Snapshot().State != runner.StateMenu {
		t.Errorf("state after m = %v, want menu", m.Snapshot().State)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)
	m, cmd := send(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelSavesFinishedRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveRun(storage.RunRecord{Score: 2}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	m := newTestModel(t, store)
	if m.Snapshot().HighScore != 2 {
		t.Errorf("high score = %d, want 2 from the store", m.Snapshot().HighScore)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m, t0)

	// Nobody jumps; a ground obstacle ends the run eventually
	for n := 1; n <= 20000 && m.Snapshot().State == runner.StatePlaying; n++ {
		m = tick(t, m, t0.Add(time.Duration(n)*time.Second/60))
	}
	snap := m.Snapshot()
	if snap.State != runner.StateGameOver {
		t.Fatal("run never ended")
	}

	runs, err := store.RunsByPlayer("local", 10)
	if err != nil {
		t.Fatalf("RunsByPlayer() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("stored runs = %d, want 2", len(runs))
	}

	var saved storage.RunRecord
	for _, r := range runs {
		if r.Preset == "normal" {
			saved = r
		}
	}
	if saved.Score != snap.Score || saved.Frames != snap.Frame {
		t.Errorf("saved run = %+v, want score %d frames %d", saved, snap.Score, snap.Frame)
	}
	if saved.Seed != 1 {
		t.Errorf("saved seed = %d, want 1", saved.Seed)
	}
}

func TestModelViewRenders(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if m.View() == "" {
		t.Error("empty view")
	}
	if m.screen.Width() != 60 || m.screen.Height() != 20 {
		t.Errorf("screen = %dx%d, want 60x20", m.screen.Width(), m.screen.Height())
	}
}
