package runner

// Stance is the player's posture; it decides the hitbox geometry.
type Stance int

const (
	StanceStanding Stance = iota
	StanceJumping
	StanceSliding
)

// String returns the stance name.
func (s Stance) String() string {
	switch s {
	case StanceStanding:
		return "Standing"
	case StanceJumping:
		return "Jumping"
	case StanceSliding:
		return "Sliding"
	default:
		return "Unknown"
	}
}

// PlayerState is the externally observable part of the player.
type PlayerState struct {
	Y      float64 // Top edge of the standing hitbox; smaller = higher
	VY     float64 // Vertical velocity, negative = upward
	Stance Stance
}

// Player integrates the actor's vertical motion.
// It raises no events: callers watch the returned booleans.
type Player struct {
	state       PlayerState
	groundTop   float64 // Y of the top edge when standing on the ground
	jumpImpulse float64
}

// NewPlayer creates a player standing on the ground.
func NewPlayer(groundTop, jumpImpulse float64) *Player {
	p := &Player{
		groundTop:   groundTop,
		jumpImpulse: jumpImpulse,
	}
	p.Reset()
	return p
}

// Reset puts the player back on the ground, standing still.
func (p *Player) Reset() {
	p.state = PlayerState{Y: p.groundTop, Stance: StanceStanding}
}

// State returns a copy of the player state.
func (p *Player) State() PlayerState {
	return p.state
}

// Airborne reports whether the player is jumping or above the ground.
func (p *Player) Airborne() bool {
	return p.state.Stance == StanceJumping || p.state.Y < p.groundTop
}

// ApplyJumpImpulse launches the player if standing.
// Returns false (and changes nothing) when airborne or sliding.
func (p *Player) ApplyJumpImpulse() bool {
	if p.state.Stance != StanceStanding || p.Airborne() {
		return false
	}
	p.state.VY = p.jumpImpulse
	p.state.Stance = StanceJumping
	return true
}

// BeginSlide switches a grounded, standing player to sliding.
func (p *Player) BeginSlide() bool {
	if p.state.Stance != StanceStanding || p.Airborne() {
		return false
	}
	p.state.Stance = StanceSliding
	return true
}

// EndSlide switches a sliding player back to standing.
func (p *Player) EndSlide() bool {
	if p.state.Stance != StanceSliding {
		return false
	}
	p.state.Stance = StanceStanding
	return true
}

// Integrate applies one tick of gravity while airborne.
// Returns true on the tick the player touches down.
func (p *Player) Integrate(gravity float64) bool {
	if !p.Airborne() {
		return false
	}

	p.state.VY += gravity
	p.state.Y += p.state.VY

	if p.state.Y >= p.groundTop {
		p.state.Y = p.groundTop
		p.state.VY = 0
		p.state.Stance = StanceStanding
		return true
	}
	return false
}
