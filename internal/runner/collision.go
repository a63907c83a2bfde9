package runner

import (
	"github.com/vovakirdan/tide-runner/internal/config"
	"github.com/vovakirdan/tide-runner/internal/core"
)

// PlayerHitbox returns the player's collision box for its stance.
// A sliding player is short and pinned to the ground; otherwise the full
// height box follows the player's vertical position.
func PlayerHitbox(p PlayerState, pc config.PlayerConfig, groundY float64) core.RectF {
	if p.Stance == StanceSliding {
		return core.NewRectF(pc.X, groundY-pc.SlideHeight, pc.Width, pc.SlideHeight)
	}
	return core.NewRectF(pc.X, p.Y, pc.Width, pc.Height)
}

// HasCollision reports whether the hitbox overlaps any obstacle.
func HasCollision(hitbox core.RectF, obstacles []Obstacle) bool {
	_, hit := FirstCollision(hitbox, obstacles)
	return hit
}

// FirstCollision returns the first obstacle, in spawn order, overlapping the hitbox.
func FirstCollision(hitbox core.RectF, obstacles []Obstacle) (Obstacle, bool) {
	for _, o := range obstacles {
		if hitbox.Intersects(o.Rect()) {
			return o, true
		}
	}
	return Obstacle{}, false
}
