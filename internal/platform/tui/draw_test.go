package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tide-runner/internal/config"
	"github.com/vovakirdan/tide-runner/internal/core"
	"github.com/vovakirdan/tide-runner/internal/runner"
)

// 80x21 maps the 800x400 field at 10 world units per column and
// 20 per row below the HUD.
func drawTestSnapshot(state runner.RunState) runner.Snapshot {
	return runner.Snapshot{
		State:       state,
		Score:       12,
		HighScore:   40,
		ScrollSpeed: 6.5,
		Player:      runner.PlayerState{Y: 280, Stance: runner.StanceStanding},
		Hitbox:      core.NewRectF(100, 280, 50, 40),
		Obstacles: []runner.Obstacle{
			{ID: 1, X: 400, Y: 285, Type: runner.ObstacleRock, Width: 45, Height: 35},
		},
	}
}

func TestViewDrawsWorld(t *testing.T) {
	screen := core.NewScreen(80, 21)
	view := NewView(config.DefaultRunnerConfig().Field)

	view.Draw(screen, drawTestSnapshot(runner.StatePlaying), false)

	if got := screen.Get(12, 16); got != PlayerChar {
		t.Errorf("player cell = %q, want %q", got, PlayerChar)
	}
	if got := screen.GetCell(12, 16).Color; got != core.ColorBrightCyan {
		t.Errorf("player color = %v", got)
	}
	if got := screen.Get(42, 16); got != '▲' {
		t.Errorf("rock cell = %q, want '▲'", got)
	}
	if got := screen.Get(42, 14); got == '▲' {
		t.Error("rock drawn above its box")
	}
	if got := screen.Get(5, 20); got != SandChar {
		t.Errorf("sand cell = %q, want %q", got, SandChar)
	}
	if !strings.Contains(screen.Row(0), "Score: 12") || !strings.Contains(screen.Row(0), "Hi: 40") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
	if !strings.Contains(screen.Row(0), "Spd: 6.5") {
		t.Errorf("HUD row missing speed: %q", screen.Row(0))
	}
}

func TestViewSlidingPlayer(t *testing.T) {
	screen := core.NewScreen(80, 21)
	view := NewView(config.DefaultRunnerConfig().Field)

	snap := drawTestSnapshot(runner.StatePlaying)
	snap.Player.Stance = runner.StanceSliding
	snap.Hitbox = core.NewRectF(100, 300, 50, 20)
	view.Draw(screen, snap, false)

	if got := screen.Get(12, 16); got != SlideChar {
		t.Errorf("slide cell = %q, want %q", got, SlideChar)
	}
	if got := screen.Get(12, 15); got == SlideChar || got == PlayerChar {
		t.Errorf("sliding player drawn too tall: %q", got)
	}
}

func TestViewOverlays(t *testing.T) {
	view := NewView(config.DefaultRunnerConfig().Field)

	tests := []struct {
		name   string
		state  runner.RunState
		paused bool
		newHi  bool
		want   string
	}{
		{"menu", runner.StateMenu, false, false, "TIDE RUNNER"},
		{"paused", runner.StatePlaying, true, false, "PAUSED"},
		{"game over", runner.StateGameOver, false, false, "GAME OVER"},
		{"new high", runner.StateGameOver, false, true, "NEW HIGH SCORE!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := core.NewScreen(80, 21)
			snap := drawTestSnapshot(tt.state)
			snap.NewHighScore = tt.newHi
			view.Draw(screen, snap, tt.paused)
			if !strings.Contains(screen.String(), tt.want) {
				t.Errorf("screen missing %q:\n%s", tt.want, screen.String())
			}
		})
	}
}

func TestViewTooSmall(t *testing.T) {
	screen := core.NewScreen(10, 4)
	NewView(config.DefaultRunnerConfig().Field).Draw(screen, drawTestSnapshot(runner.StatePlaying), false)
	if strings.Contains(screen.String(), string(PlayerChar)) {
		t.Error("world drawn on a screen that is too small")
	}
}

func TestPainterGroupsRuns(t *testing.T) {
	screen := core.NewScreen(6, 2)
	screen.DrawTextColored(0, 0, "ab", core.ColorRed)
	screen.DrawText(2, 0, "cd")
	screen.SetColored(0, 1, 'x', core.ColorCyan)

	out := NewPainter(lipgloss.NewRenderer(io.Discard)).Paint(screen)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("Paint() produced %d lines, want 2", len(lines))
	}
	for _, want := range []string{"ab", "cd"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("first line %q missing %q", lines[0], want)
		}
	}
	if !strings.Contains(lines[1], "x") {
		t.Errorf("second line %q missing 'x'", lines[1])
	}
}
