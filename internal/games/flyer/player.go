package flyer

import (
	"github.com/vovakirdan/tui-flyer/internal/config"
	"github.com/vovakirdan/tui-flyer/internal/core"
)

// Player is the flying creature. Only Update and Reset change it.
type Player struct {
	position core.Vec3
	velocity core.Vec3
	cfg      config.FlyerPlayer
	refRate  float64 // ticks/sec the tuning constants assume
}

// NewPlayer creates a player at the origin.
func NewPlayer(cfg config.FlyerPlayer, refRate float64) *Player {
	return &Player{cfg: cfg, refRate: refRate}
}

// Update integrates input and gravity over dt seconds.
func (p *Player) Update(in core.InputFrame, dt float64) {
	if dt < 0 {
		dt = 0
	}
	k := dt * p.refRate

	p.velocity.Y += p.cfg.Gravity * k
	if in.Up {
		p.velocity.Y += p.cfg.Lift * k
	}

	switch {
	case in.Left:
		p.velocity.X = -p.cfg.HorizontalSpeed
	case in.Right:
		p.velocity.X = p.cfg.HorizontalSpeed
	default:
		p.velocity.X *= p.cfg.LateralDamping
	}

	p.velocity.Y = core.ClampF(p.velocity.Y, -p.cfg.VerticalClamp, p.cfg.VerticalClamp)

	p.position = p.position.Add(p.velocity.Scale(k))

	// Ceiling and floor stop vertical motion instead of bouncing
	if p.position.Y > p.cfg.HeightLimit {
		p.position.Y = p.cfg.HeightLimit
		p.velocity.Y = 0
	}
	if p.position.Y < -p.cfg.HeightLimit {
		p.position.Y = -p.cfg.HeightLimit
		p.velocity.Y = 0
	}
}

// CheckCollision reports whether the player overlaps any obstacle.
func (p *Player) CheckCollision(obstacles []Obstacle) bool {
	return CheckCollision(p.Entity(), obstacles)
}

// Reset puts the player back at the origin at rest.
func (p *Player) Reset() {
	p.position = core.Vec3{}
	p.velocity = core.Vec3{}
}

// Entity returns the player's bounding sphere.
func (p *Player) Entity() core.Entity {
	return core.Entity{Position: p.position, Radius: p.cfg.BoundingRadius}
}

// Position returns the current position.
func (p *Player) Position() core.Vec3 {
	return p.position
}

// Velocity returns the current velocity in units per reference tick.
func (p *Player) Velocity() core.Vec3 {
	return p.velocity
}

// Roll returns the body tilt around Z in radians for rendering:
// nose up while climbing, nose down while falling.
func (p *Player) Roll() float64 {
	return -p.velocity.Y * 2
}
