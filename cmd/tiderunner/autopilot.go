package main

import (
	"github.com/vovakirdan/tide-runner/internal/config"
	"github.com/vovakirdan/tide-runner/internal/core"
	"github.com/vovakirdan/tide-runner/internal/runner"
)

// Lookahead in ticks of travel before an obstacle reaches the player.
const (
	jumpLeadTicks  = 8
	slideLeadTicks = 4
)

// autopilot picks one action for the next tick: jump what it cannot
// duck, slide under what it can, stand up once the way is clear.
func autopilot(snap runner.Snapshot, cfg config.RunnerConfig) core.Action {
	if snap.State != runner.StatePlaying || snap.Player.Stance == runner.StanceJumping {
		return core.ActionNone
	}

	pc := cfg.Player
	ground := cfg.Field.GroundY
	standTop := ground - pc.Height
	slideTop := ground - pc.SlideHeight
	sliding := snap.Player.Stance == runner.StanceSliding

	for _, o := range snap.Obstacles {
		if o.X+o.Width <= pc.X {
			continue // already passed
		}
		gap := o.X - (pc.X + pc.Width)
		if o.Y+o.Height <= standTop || o.Y >= ground {
			continue // flies over a standing player
		}

		if o.Y+o.Height <= slideTop {
			if gap <= snap.ScrollSpeed*slideLeadTicks {
				if sliding {
					return core.ActionNone
				}
				return core.ActionSlideStart
			}
			continue
		}

		if gap <= snap.ScrollSpeed*jumpLeadTicks {
			if sliding {
				return core.ActionSlideEnd
			}
			return core.ActionJump
		}
	}

	if sliding {
		return core.ActionSlideEnd
	}
	return core.ActionNone
}
