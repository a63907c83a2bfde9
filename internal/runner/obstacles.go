package runner

import "github.com/vovakirdan/tide-runner/internal/core"

// Obstacle is a live hazard scrolling toward the player.
type Obstacle struct {
	ID     int
	X      float64 // Left edge
	Y      float64 // Top edge
	Type   ObstacleType
	Width  float64
	Height float64
}

// Rect returns the collision box of the obstacle.
func (o Obstacle) Rect() core.RectF {
	return core.NewRectF(o.X, o.Y, o.Width, o.Height)
}

// ObstacleField owns the live obstacles, in spawn order.
type ObstacleField struct {
	obstacles   []Obstacle
	nextID      int
	groundY     float64
	spawnX      float64
	pruneMargin float64
}

// NewObstacleField creates an empty field.
// Obstacles enter at spawnX and leave once their right edge is pruneMargin
// past the left edge of the play field.
func NewObstacleField(groundY, spawnX, pruneMargin float64) *ObstacleField {
	return &ObstacleField{
		obstacles:   make([]Obstacle, 0, 8),
		nextID:      1,
		groundY:     groundY,
		spawnX:      spawnX,
		pruneMargin: pruneMargin,
	}
}

// Reset removes every obstacle. IDs keep increasing across resets.
func (f *ObstacleField) Reset() {
	f.obstacles = f.obstacles[:0]
}

// Spawn appends an obstacle of the given type at the spawn position.
// Jittered types are lifted by a random amount up to their jitter.
func (f *ObstacleField) Spawn(t ObstacleType, rng RandomSource) Obstacle {
	g := t.Geometry()

	offset := g.Offset
	if g.Jitter > 0 {
		offset -= rng.Float64() * g.Jitter
	}

	o := Obstacle{
		ID:     f.nextID,
		X:      f.spawnX,
		Y:      f.groundY + offset,
		Type:   t,
		Width:  g.Width,
		Height: g.Height,
	}
	f.nextID++
	f.obstacles = append(f.obstacles, o)
	return o
}

// SpawnRandom spawns a type chosen uniformly from the catalog.
func (f *ObstacleField) SpawnRandom(rng RandomSource) Obstacle {
	return f.Spawn(ObstacleType(rng.Intn(len(catalog))), rng)
}

// Advance moves every obstacle left by speed and drops those that have
// left the field. Returns the number removed.
func (f *ObstacleField) Advance(speed float64) int {
	for i := range f.obstacles {
		f.obstacles[i].X -= speed
	}

	kept := f.obstacles[:0]
	for _, o := range f.obstacles {
		if o.X+o.Width >= -f.pruneMargin {
			kept = append(kept, o)
		}
	}
	removed := len(f.obstacles) - len(kept)
	f.obstacles = kept
	return removed
}

// Obstacles returns the live obstacles. The slice is owned by the field.
func (f *ObstacleField) Obstacles() []Obstacle {
	return f.obstacles
}

// Len returns the number of live obstacles.
func (f *ObstacleField) Len() int {
	return len(f.obstacles)
}
