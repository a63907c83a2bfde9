package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tide-runner/internal/core"
)

// DefaultSlideHold is how long a slide lasts after the last down-key
// repeat. Terminals report presses only, never releases.
const DefaultSlideHold = 250 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to engine actions.
// It also tracks the slide key so a release can be synthesized.
type KeyMapper struct {
	hold        time.Duration
	sliding     bool
	lastSlideAt time.Time
}

// NewKeyMapper creates a key mapper with the given slide hold window.
func NewKeyMapper(hold time.Duration) *KeyMapper {
	if hold <= 0 {
		hold = DefaultSlideHold
	}
	return &KeyMapper{hold: hold}
}

// MapKey translates a key message to an action.
// Space starts a run outside of play and jumps during it.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, playing bool) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case " ":
		if playing {
			return core.ActionJump, false
		}
		return core.ActionStart, false
	case "w", "up":
		return core.ActionJump, false
	case "s", "down":
		return core.ActionSlideStart, false
	case "enter":
		return core.ActionStart, false
	case "p":
		return core.ActionPause, false
	case "m", "esc":
		return core.ActionMenu, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message received at now.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, playing bool, now time.Time, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg, playing)
	if action == core.ActionNone {
		return isQuit
	}
	if action == core.ActionSlideStart {
		km.sliding = true
		km.lastSlideAt = now
	}
	frame.Set(action)
	return isQuit
}

// Release adds ActionSlideEnd to the frame once the slide key has been
// quiet for the hold window. Returns true if it did.
func (km *KeyMapper) Release(now time.Time, frame *core.InputFrame) bool {
	if !km.sliding || now.Sub(km.lastSlideAt) < km.hold {
		return false
	}
	km.sliding = false
	frame.Set(core.ActionSlideEnd)
	return true
}

// Sliding reports whether the slide key is considered held.
func (km *KeyMapper) Sliding() bool {
	return km.sliding
}

// Forget drops the held slide key, e.g. when a run ends.
func (km *KeyMapper) Forget() {
	km.sliding = false
}
