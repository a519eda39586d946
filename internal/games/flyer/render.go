package flyer

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-flyer/internal/core"
)

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 2.0

// Camera clip planes
const (
	nearPlane = 0.1
	farPlane  = 1000.0
)

// Visual characters for rendering
const (
	FlyerBody      = 'Ѫ'
	WingLevel      = '─'
	WingUp         = '╲'
	WingDown       = '╱'
	OffscreenAbove = '▲'
	OffscreenBelow = '▼'
	HorizonChar    = '·'
)

// rockShades goes from near to far.
var rockShades = []struct {
	maxDist float64
	char    rune
	color   core.Color
}{
	{15, '█', core.ColorRockNear},
	{35, '▓', core.ColorRockNear},
	{60, '▒', core.ColorRock},
	{math.Inf(1), '░', core.ColorRock},
}

// projector maps world points to screen cells for one frame.
type projector struct {
	view, proj mgl64.Mat4
	camZ       float64
	w, h       int
}

func newProjector(camera core.Vec3, fovDeg float64, w, h int) projector {
	aspect := float64(w) / (float64(h) * cellAspect)
	eye := mgl64.Vec3{camera.X, camera.Y, camera.Z}
	return projector{
		view: mgl64.LookAtV(eye, eye.Sub(mgl64.Vec3{0, 0, 1}), mgl64.Vec3{0, 1, 0}),
		proj: mgl64.Perspective(mgl64.DegToRad(fovDeg), aspect, nearPlane, farPlane),
		camZ: camera.Z,
		w:    w,
		h:    h,
	}
}

// visible reports whether p is in front of the near plane.
func (pr projector) visible(p core.Vec3) bool {
	return p.Z < pr.camZ-nearPlane
}

// project returns fractional screen coordinates (column, row) of p.
func (pr projector) project(p core.Vec3) (float64, float64) {
	win := mgl64.Project(mgl64.Vec3{p.X, p.Y, p.Z}, pr.view, pr.proj, 0, 0, pr.w, pr.h)
	return win.X(), float64(pr.h) - win.Y()
}

// Render draws the scene: rocks far-to-near around the flyer, then the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 || g.player == nil {
		return
	}

	pr := newProjector(g.camera, g.cfg.Camera.FOV, dst.Width(), dst.Height())
	g.drawHorizon(dst, pr)

	rocks := make([]Obstacle, len(g.field.Obstacles()))
	copy(rocks, g.field.Obstacles())
	sort.Slice(rocks, func(i, j int) bool {
		return rocks[i].Position.Z < rocks[j].Position.Z
	})

	playerZ := g.player.Position().Z
	i := 0
	for ; i < len(rocks) && rocks[i].Position.Z <= playerZ; i++ {
		g.drawRock(dst, pr, rocks[i])
	}
	g.drawPlayer(dst, pr)
	for ; i < len(rocks); i++ {
		g.drawRock(dst, pr, rocks[i])
	}

	g.drawHUD(dst)
}

// drawHorizon marks the vanishing row where the rock field starts.
func (g *Game) drawHorizon(dst *core.Screen, pr projector) {
	_, row := pr.project(core.V3(0, 0, g.cfg.Obstacles.SpawnDepth))
	y := int(row)
	for x := 0; x < dst.Width(); x += 4 {
		dst.SetColored(x, y, HorizonChar, core.ColorHorizon)
	}
}

// drawRock fills the rock's projected disc.
func (g *Game) drawRock(dst *core.Screen, pr projector, o Obstacle) {
	if !pr.visible(o.Position) {
		return
	}

	cx, cy := pr.project(o.Position)
	ex, _ := pr.project(o.Position.Add(core.V3(o.Size, 0, 0)))
	rx := math.Abs(ex - cx)
	ry := rx / cellAspect

	char, color := rockShade(pr.camZ - o.Position.Z)

	if rx < 0.5 {
		dst.SetColored(int(cx), int(cy), char, color)
		return
	}

	minX, maxX := int(math.Floor(cx-rx)), int(math.Ceil(cx+rx))
	minY, maxY := int(math.Floor(cy-ry)), int(math.Ceil(cy+ry))
	// Skip the per-cell loop for discs that are entirely off screen
	if maxX < 0 || minX >= dst.Width() || maxY < 0 || minY >= dst.Height() {
		return
	}
	minX, maxX = core.Clamp(minX, 0, dst.Width()-1), core.Clamp(maxX, 0, dst.Width()-1)
	minY, maxY = core.Clamp(minY, 0, dst.Height()-1), core.Clamp(maxY, 0, dst.Height()-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / math.Max(ry, 0.5)
			if dx*dx+dy*dy <= 1 {
				dst.SetColored(x, y, char, color)
			}
		}
	}
}

func rockShade(dist float64) (rune, core.Color) {
	for _, s := range rockShades {
		if dist <= s.maxDist {
			return s.char, s.color
		}
	}
	last := rockShades[len(rockShades)-1]
	return last.char, last.color
}

// drawPlayer draws the flyer with wings tilted by its roll. When the flyer
// is outside the camera's view it is pinned to the edge with an arrow.
func (g *Game) drawPlayer(dst *core.Screen, pr projector) {
	cx, cy := pr.project(g.player.Position())
	x, y := int(cx), int(cy)

	color := core.ColorFlyer
	body := FlyerBody
	switch {
	case y < 0:
		y, body, color = 0, OffscreenAbove, core.ColorWarning
	case y >= dst.Height():
		y, body, color = dst.Height()-1, OffscreenBelow, core.ColorWarning
	}
	x = core.Clamp(x, 1, dst.Width()-2)

	left, right := WingLevel, WingLevel
	switch roll := g.player.Roll(); {
	case roll < -0.1: // climbing
		left, right = WingUp, WingDown
	case roll > 0.1: // falling
		left, right = WingDown, WingUp
	}

	dst.SetColored(x-1, y, left, color)
	dst.SetColored(x, y, body, color)
	dst.SetColored(x+1, y, right, color)
}

// drawHUD draws the score line and, after a collision, the game over box.
func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf(" Score: %d ", g.score), core.ColorHUD)

	level := fmt.Sprintf(" Level %.2f ", g.field.Difficulty())
	dst.DrawTextColored(dst.Width()-len(level)-1, 0, level, core.ColorHUD)

	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorWarning)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
