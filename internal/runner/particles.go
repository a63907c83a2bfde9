package runner

import "github.com/vovakirdan/tide-runner/internal/core"

// Particle is a cosmetic spark with no gameplay effect.
type Particle struct {
	ID     int
	X, Y   float64
	VX, VY float64
	Life   int // Remaining ticks
	Color  core.Color
}

// Burst describes one emission.
type Burst struct {
	X, Y    float64
	Count   int
	Life    int
	SpreadX float64 // Horizontal speed range, centered on DriftX
	DriftX  float64
	Lift    float64 // Maximum upward speed
	Colors  []core.Color
}

// ParticleSystem integrates particles with constant downward acceleration.
type ParticleSystem struct {
	particles []Particle
	nextID    int
	gravity   float64
}

// NewParticleSystem creates an empty particle system.
func NewParticleSystem(gravity float64) *ParticleSystem {
	return &ParticleSystem{
		particles: make([]Particle, 0, 32),
		nextID:    1,
		gravity:   gravity,
	}
}

// Reset removes every particle.
func (s *ParticleSystem) Reset() {
	s.particles = s.particles[:0]
}

// Emit adds a burst of particles.
func (s *ParticleSystem) Emit(b Burst, rng RandomSource) {
	if b.Life <= 0 {
		return
	}
	for i := 0; i < b.Count; i++ {
		color := core.ColorDefault
		if len(b.Colors) > 0 {
			color = b.Colors[rng.Intn(len(b.Colors))]
		}
		s.particles = append(s.particles, Particle{
			ID:    s.nextID,
			X:     b.X,
			Y:     b.Y,
			VX:    b.DriftX + (rng.Float64()-0.5)*b.SpreadX,
			VY:    -rng.Float64() * b.Lift,
			Life:  b.Life,
			Color: color,
		})
		s.nextID++
	}
}

// Update advances every particle one tick and drops expired ones.
func (s *ParticleSystem) Update() {
	kept := s.particles[:0]
	for _, p := range s.particles {
		p.VY += s.gravity
		p.X += p.VX
		p.Y += p.VY
		p.Life--
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	s.particles = kept
}

// Particles returns the live particles. The slice is owned by the system.
func (s *ParticleSystem) Particles() []Particle {
	return s.particles
}
