package runner

import "fmt"

// ObstacleType identifies an entry in the obstacle catalog.
type ObstacleType int

const (
	ObstacleRock ObstacleType = iota
	ObstacleWave
	ObstacleSeagull
	ObstacleJellyfish
)

// Geometry is the catalog entry for an obstacle type.
// Offset is relative to the ground plane (negative = above ground) and
// positions the obstacle's top edge.
type Geometry struct {
	Offset float64
	Width  float64
	Height float64
	Jitter float64 // Maximum extra upward offset, 0 = none
}

var catalog = [...]Geometry{
	ObstacleRock:      {Offset: -35, Width: 45, Height: 35},
	ObstacleWave:      {Offset: -50, Width: 60, Height: 50},
	ObstacleSeagull:   {Offset: -100, Width: 50, Height: 30, Jitter: 60},
	ObstacleJellyfish: {Offset: -70, Width: 35, Height: 45, Jitter: 40},
}

// ObstacleTypes returns every catalog type in declaration order.
func ObstacleTypes() []ObstacleType {
	types := make([]ObstacleType, len(catalog))
	for i := range catalog {
		types[i] = ObstacleType(i)
	}
	return types
}

// Valid reports whether t is in the catalog.
func (t ObstacleType) Valid() bool {
	return t >= 0 && int(t) < len(catalog)
}

// Geometry returns the catalog entry for t.
// Panics for types outside the catalog.
func (t ObstacleType) Geometry() Geometry {
	if !t.Valid() {
		panic(fmt.Sprintf("runner: obstacle type %d not in catalog", int(t)))
	}
	return catalog[t]
}

// Airborne reports whether the type floats with vertical jitter.
func (t ObstacleType) Airborne() bool {
	return t.Geometry().Jitter > 0
}

// String returns the display name of the type.
func (t ObstacleType) String() string {
	switch t {
	case ObstacleRock:
		return "Rock"
	case ObstacleWave:
		return "Wave"
	case ObstacleSeagull:
		return "Seagull"
	case ObstacleJellyfish:
		return "Jellyfish"
	default:
		return "Unknown"
	}
}
