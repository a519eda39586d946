package flyer

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flyer/internal/core"
)

func TestRenderHUD(t *testing.T) {
	g, _ := newTestGame(t)
	runTicks(g, core.InputFrame{Up: true}, 0, 60)

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	if !strings.Contains(scr.Row(0), "Score: 1") {
		t.Errorf("top row should show the score, got %q", scr.Row(0))
	}
	if !strings.Contains(scr.Row(0), "Level") {
		t.Errorf("top row should show the level, got %q", scr.Row(0))
	}
	if strings.Contains(scr.String(), "GAME OVER") {
		t.Error("no game over box while running")
	}
}

func TestRenderPlayerCentered(t *testing.T) {
	g, _ := newTestGame(t)

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	// Player at the origin, camera straight behind it
	cell := scr.GetCell(40, 12)
	if cell.Rune != FlyerBody || cell.Color != core.ColorFlyer {
		t.Errorf("cell (40,12) = %q/%d, expected the flyer body", cell.Rune, cell.Color)
	}
	if scr.Get(39, 12) != WingLevel || scr.Get(41, 12) != WingLevel {
		t.Error("wings should be level at rest")
	}
}

func TestRenderPlayerOffscreen(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		row  int
		body rune
	}{
		{"above", 10, 0, OffscreenAbove},
		{"below", -10, 23, OffscreenBelow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGame(t)
			g.player.position.Y = tt.y

			scr := core.NewScreen(80, 24)
			g.Render(scr)

			cell := scr.GetCell(40, tt.row)
			if cell.Rune != tt.body || cell.Color != core.ColorWarning {
				t.Errorf("cell (40,%d) = %q/%d, expected a warning arrow", tt.row, cell.Rune, cell.Color)
			}
		})
	}
}

func TestRenderRocks(t *testing.T) {
	g, _ := newTestGame(t)
	g.Field().Place(core.V3(6, 0, -5), 2)

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	found := false
	for y := 0; y < scr.Height(); y++ {
		for x := 0; x < scr.Width(); x++ {
			if c := scr.GetCell(x, y); c.Color == core.ColorRockNear {
				found = true
			}
		}
	}
	if !found {
		t.Error("a close rock should be drawn with the near rock color")
	}
	if scr.Get(40, 12) != FlyerBody {
		t.Error("a rock off to the side should not hide the flyer")
	}
}

func TestRenderRockCoversPlayer(t *testing.T) {
	g, _ := newTestGame(t)
	// In front of the player, between it and the camera
	g.Field().Place(core.V3(0, 0, 2), 1)

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	if scr.Get(40, 12) == FlyerBody {
		t.Error("a rock nearer to the camera should be drawn over the flyer")
	}
}

func TestRenderGameOver(t *testing.T) {
	g, _ := newTestGame(t)
	g.Field().Place(core.V3(0, 0, 0), 1)
	g.Step(core.InputFrame{}, tick, tick)

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	out := scr.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Error("game over box should be drawn")
	}
	if !strings.Contains(out, "Press R to restart") {
		t.Error("game over box should explain how to restart")
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	g, _ := newTestGame(t)
	runTicks(g, core.InputFrame{Right: true}, 0, 200)

	pos := g.Player().Position()
	rocks := append([]Obstacle(nil), g.Field().Obstacles()...)
	state := g.State()

	g.Render(core.NewScreen(80, 24))
	g.Render(core.NewScreen(0, 0))

	if g.Player().Position() != pos || g.State() != state {
		t.Error("Render changed game state")
	}
	for i, o := range g.Field().Obstacles() {
		if o != rocks[i] {
			t.Errorf("Render changed rock %d", i)
		}
	}
}
