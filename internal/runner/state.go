package runner

import "fmt"

// RunState is the top-level state of the engine.
type RunState int

const (
	StateMenu RunState = iota
	StatePlaying
	StateGameOver
)

// String returns the state name.
func (s RunState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Trigger is an input to the run state machine.
type Trigger int

const (
	TriggerStart Trigger = iota
	TriggerCollision
	TriggerReset
)

// String returns the trigger name.
func (t Trigger) String() string {
	switch t {
	case TriggerStart:
		return "start"
	case TriggerCollision:
		return "collision"
	case TriggerReset:
		return "reset"
	default:
		return "unknown"
	}
}

var transitions = map[RunState]map[Trigger]RunState{
	StateMenu: {
		TriggerStart: StatePlaying,
	},
	StatePlaying: {
		TriggerCollision: StateGameOver,
		TriggerReset:     StateMenu,
	},
	StateGameOver: {
		TriggerStart: StatePlaying,
		TriggerReset: StateMenu,
	},
}

// Next returns the state reached from s by t, and whether the move is allowed.
func (s RunState) Next(t Trigger) (RunState, bool) {
	next, ok := transitions[s][t]
	return next, ok
}

// mustNext is Next for transitions the engine itself drives.
func (s RunState) mustNext(t Trigger) RunState {
	next, ok := s.Next(t)
	if !ok {
		panic(fmt.Sprintf("runner: illegal transition %s --%s-->", s, t))
	}
	return next
}
