// Package tui hosts the runner engine in a terminal: a Bubble Tea model
// that turns key presses into engine actions, a renderer that draws
// snapshots into a cell buffer, a scoreboard and a Wish SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// gameClock is wall time minus the time spent paused.
// The engine reads spawn timing from it, so a pause does not
// release a burst of obstacles on resume.
type gameClock struct {
	paused   bool
	pausedAt time.Time
	offset   time.Duration
}

// Now converts a wall time to game time.
// While paused, game time stands still at the moment of pausing.
func (c *gameClock) Now(wall time.Time) time.Time {
	if c.paused {
		return c.pausedAt.Add(-c.offset)
	}
	return wall.Add(-c.offset)
}

// Pause stops the clock.
func (c *gameClock) Pause(wall time.Time) {
	if c.paused {
		return
	}
	c.paused = true
	c.pausedAt = wall
}

// Resume restarts the clock, discarding the paused interval.
func (c *gameClock) Resume(wall time.Time) {
	if !c.paused {
		return
	}
	c.offset += wall.Sub(c.pausedAt)
	c.paused = false
}

// Paused reports whether the clock is stopped.
func (c *gameClock) Paused() bool {
	return c.paused
}
