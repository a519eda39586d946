package flyer

import (
	"testing"

	"github.com/vovakirdan/tui-flyer/internal/config"
	"github.com/vovakirdan/tui-flyer/internal/core"
)

func newTestPilot() *Autopilot {
	return NewAutopilot(config.DefaultFlyerConfig())
}

func playerAt(pos, vel core.Vec3) *Player {
	p := newTestPlayer()
	p.position = pos
	p.velocity = vel
	return p
}

func TestAutopilotCruise(t *testing.T) {
	tests := []struct {
		name string
		pos  core.Vec3
		vel  core.Vec3
		want core.InputFrame
	}{
		{"sinking below center climbs", core.V3(0, -1, 0), core.V3(0, -0.01, 0), core.InputFrame{Up: true}},
		{"rising below center glides", core.V3(0, -1, 0), core.V3(0, 0.05, 0), core.InputFrame{}},
		{"above center glides", core.V3(0, 2, 0), core.Vec3{}, core.InputFrame{}},
		{"drifted right returns", core.V3(3, 1, 0), core.Vec3{}, core.InputFrame{Left: true}},
		{"drifted left returns", core.V3(-3, 1, 0), core.Vec3{}, core.InputFrame{Right: true}},
	}

	a := newTestPilot()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Decide(playerAt(tt.pos, tt.vel), nil)
			if got != tt.want {
				t.Errorf("Decide() = %+v, expected %+v", got, tt.want)
			}
		})
	}
}

func TestAutopilotDodges(t *testing.T) {
	tests := []struct {
		name string
		pos  core.Vec3
		rock core.Vec3
		want core.InputFrame
	}{
		{"rock to the right and below", core.V3(0, 0, 0), core.V3(0.5, -0.5, -10), core.InputFrame{Left: true, Up: true}},
		{"rock to the left and above", core.V3(0, 0, 0), core.V3(-0.5, 0.5, -10), core.InputFrame{Right: true}},
		{"dead-on right of center", core.V3(2, 0, 0), core.V3(2, 0, -10), core.InputFrame{Left: true, Up: true}},
		{"dead-on left of center", core.V3(-2, 0, 0), core.V3(-2, 0, -10), core.InputFrame{Right: true, Up: true}},
		{"at the band edge turns back", core.V3(-16, 0, 0), core.V3(-15.5, 0, -10), core.InputFrame{Right: true, Up: true}},
	}

	a := newTestPilot()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rocks := []Obstacle{{Position: tt.rock, Size: 1, Radius: 1.2}}
			got := a.Decide(playerAt(tt.pos, core.Vec3{}), rocks)
			if got != tt.want {
				t.Errorf("Decide() = %+v, expected %+v", got, tt.want)
			}
		})
	}
}

func TestAutopilotIgnoresHarmlessRocks(t *testing.T) {
	a := newTestPilot()
	p := playerAt(core.V3(0, -1, 0), core.Vec3{})

	rocks := []Obstacle{
		{Position: core.V3(0, -1, -80), Radius: 1.2}, // beyond lookahead
		{Position: core.V3(0, -1, 5), Radius: 1.2},   // already passed
		{Position: core.V3(8, 5, -10), Radius: 1.2},  // well clear
	}

	if got := a.Decide(p, rocks); got != (core.InputFrame{Up: true}) {
		t.Errorf("Decide() = %+v, expected plain cruising", got)
	}
}

func TestAutopilotPicksNearestThreat(t *testing.T) {
	a := newTestPilot()
	p := newTestPlayer()

	rocks := []Obstacle{
		{ID: 1, Position: core.V3(-0.5, 0, -30), Radius: 1.2},
		{ID: 2, Position: core.V3(0.5, 0, -5), Radius: 1.2},
	}

	threat, ok := a.nearestThreat(p.Entity(), rocks)
	if !ok || threat.ID != 2 {
		t.Errorf("nearestThreat() = %d, %v, expected rock 2", threat.ID, ok)
	}
}

func TestAutopilotNeverHoldsBothSides(t *testing.T) {
	g := NewWithConfig(config.DefaultFlyerConfig())
	g.Reset(testRuntime)
	a := NewAutopilot(g.Config())

	for i := 1; i <= 2000; i++ {
		in := a.Decide(g.Player(), g.Field().Obstacles())
		if in.Left && in.Right {
			t.Fatalf("tick %d: autopilot held left and right together", i)
		}
		if g.Step(in, tick, float64(i)/60).State.GameOver {
			break
		}
	}
}
