package flyer

import (
	"math"

	"github.com/vovakirdan/tui-flyer/internal/config"
	"github.com/vovakirdan/tui-flyer/internal/core"
)

// Autopilot defaults
const (
	DefaultLookahead   = 40.0 // How far up the field the pilot watches for rocks
	DefaultSafetyGap   = 0.75 // Extra clearance on top of the combined radii
	DefaultDriftMargin = 1.0  // Lateral distance from center tolerated when idle
)

// Autopilot is a CPU pilot. It produces the same input snapshot a player
// would, so the game cannot tell it apart from a human.
type Autopilot struct {
	Lookahead   float64
	SafetyGap   float64
	DriftMargin float64
	band        float64 // Half-width of the lateral spawn band
}

// NewAutopilot creates a pilot tuned for the given config.
func NewAutopilot(cfg config.FlyerConfig) *Autopilot {
	return &Autopilot{
		Lookahead:   DefaultLookahead,
		SafetyGap:   DefaultSafetyGap,
		DriftMargin: DefaultDriftMargin,
		band:        cfg.Obstacles.LateralRange,
	}
}

// Decide picks the controls for the next tick.
func (a *Autopilot) Decide(p *Player, obstacles []Obstacle) core.InputFrame {
	var in core.InputFrame
	pos := p.Position()

	threat, ok := a.nearestThreat(p.Entity(), obstacles)
	if !ok {
		// Cruise: hold altitude around the middle and drift back to center
		in.Up = pos.Y < 0 && p.Velocity().Y <= 0
		switch {
		case pos.X > a.DriftMargin:
			in.Left = true
		case pos.X < -a.DriftMargin:
			in.Right = true
		}
		return in
	}

	dx := pos.X - threat.Position.X
	dy := pos.Y - threat.Position.Y

	// Sidestep away from the rock's center; when dead-on, break toward the
	// middle of the band where there is more room.
	switch {
	case math.Abs(dx) < 0.1:
		if pos.X > 0 {
			in.Left = true
		} else {
			in.Right = true
		}
	case dx < 0:
		in.Left = true
	default:
		in.Right = true
	}

	// Stay out of the empty space beyond the band edges
	if in.Left && pos.X < -a.band {
		in.Left, in.Right = false, true
	}
	if in.Right && pos.X > a.band {
		in.Left, in.Right = true, false
	}

	// Climb over rocks that sit below us, drop under the rest
	in.Up = dy >= 0
	return in
}

// nearestThreat returns the closest rock ahead whose path crosses the
// player's sphere plus the safety gap.
func (a *Autopilot) nearestThreat(player core.Entity, obstacles []Obstacle) (Obstacle, bool) {
	var best Obstacle
	found := false

	for _, o := range obstacles {
		ahead := player.Position.Z - o.Position.Z
		if ahead < -o.Radius || ahead > a.Lookahead {
			continue
		}
		clearance := player.Radius + o.Radius + a.SafetyGap
		lateral := math.Hypot(player.Position.X-o.Position.X, player.Position.Y-o.Position.Y)
		if lateral >= clearance {
			continue
		}
		if !found || o.Position.Z > best.Position.Z {
			best = o
			found = true
		}
	}
	return best, found
}
