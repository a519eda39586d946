// Package flyer implements a pterodactyl flyer game.
// The player steers a flying creature through a field of rocks that rush
// toward the camera, scoring a point for every second survived.
package flyer

import (
	"math/rand"

	"github.com/vovakirdan/tui-flyer/internal/config"
	"github.com/vovakirdan/tui-flyer/internal/core"
	"github.com/vovakirdan/tui-flyer/internal/registry"
)

// Game is the flyer's loop controller. It owns the score and the
// running/game-over state and sequences the player, the rock field and the
// collision check on every tick.
type Game struct {
	player   *Player
	field    *Field
	camera   core.Vec3 // Viewpoint, also the forward reference for pruning
	cfg      config.FlyerConfig
	fixedCfg bool // cfg was supplied by the caller, skip loading on Reset
	runtime  core.RuntimeConfig
	listener Listener

	score       int
	gameOver    bool
	scoreMark   float64 // Elapsed time of the last score increment
	markSet     bool    // scoreMark is anchored for this run
	lastElapsed float64
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied after loading.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// New creates a flyer that loads its tuning on Reset.
func New() *Game {
	return &Game{listener: nopListener{}}
}

// NewWithConfig creates a flyer with fixed tuning.
func NewWithConfig(cfg config.FlyerConfig) *Game {
	return &Game{cfg: cfg, fixedCfg: true, listener: nopListener{}}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flyer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pterodactyl Flyer"
}

// SetListener sets the receiver of game and rock events. nil disables events.
func (g *Game) SetListener(l Listener) {
	if l == nil {
		l = nopListener{}
	}
	g.listener = l
	if g.field != nil {
		g.field.SetListener(l)
	}
}

// Reset initializes the game from scratch: tuning, RNG seed and state.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixedCfg {
		cfg, err := config.LoadFlyer(configPath)
		if err != nil {
			cfg = config.DefaultFlyerConfig()
		}
		if difficultyPreset != "" {
			config.ApplyFlyerPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.camera = core.V3(0, 0, g.cfg.Camera.Z)
	g.player = NewPlayer(g.cfg.Player, g.cfg.Scoring.ReferenceRate)

	rng := rand.New(rand.NewSource(runtime.Seed))
	if g.field == nil {
		g.field = NewField(&g.cfg, rng)
		g.field.SetListener(g.listener)
	} else {
		g.field.UpdateConfig(&g.cfg)
		g.field.Reset()
		g.field.SetRand(rng)
	}

	g.resetSession()
}

// resetSession clears the score bookkeeping and returns to running.
func (g *Game) resetSession() {
	g.score = 0
	g.gameOver = false
	g.scoreMark = 0
	g.markSet = false
	g.lastElapsed = 0
}

// Step advances the game by one host frame. dt is the seconds since the
// previous frame and elapsed the host clock's running total. After a
// collision Step changes nothing until Restart.
func (g *Game) Step(in core.InputFrame, dt, elapsed float64) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}
	if dt < 0 {
		dt = 0
	}

	g.updateScore(dt, elapsed)
	g.player.Update(in, dt)
	g.field.Update(dt, g.camera)

	if hit, ok := FirstHit(g.player.Entity(), g.field.Obstacles()); ok {
		g.gameOver = true
		g.listener.OnEvent(GameOverEvent{Score: g.score, Obstacle: hit})
		return core.StepResult{State: g.State(), Collided: true}
	}

	return core.StepResult{State: g.State()}
}

// updateScore awards a point once a full scoring interval has elapsed since
// the last award. The reference point jumps to the current time, so any
// overshoot past the interval is dropped rather than carried.
func (g *Game) updateScore(dt, elapsed float64) {
	if !g.markSet {
		// Anchor at the start of this frame so the first frame's time counts
		g.scoreMark = elapsed - dt
		g.markSet = true
	}
	g.lastElapsed = elapsed

	if elapsed-g.scoreMark >= g.cfg.Scoring.Interval {
		g.score++
		g.scoreMark = elapsed
	}
}

// Restart begins a new run after game over. It returns false and changes
// nothing while a run is still going.
func (g *Game) Restart() bool {
	if !g.gameOver {
		return false
	}

	g.player.Reset()
	g.field.Reset()
	g.resetSession()
	g.listener.OnEvent(RestartedEvent{})
	return true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
	}
}

// ScoreTimer returns the seconds accumulated toward the next point.
func (g *Game) ScoreTimer() float64 {
	if !g.markSet {
		return 0
	}
	return g.lastElapsed - g.scoreMark
}

// Player returns the player for read access.
func (g *Game) Player() *Player {
	return g.player
}

// Field returns the rock field for read access.
func (g *Game) Field() *Field {
	return g.field
}

// Config returns the tuning in effect.
func (g *Game) Config() config.FlyerConfig {
	return g.cfg
}

// Register the game with the registry
func init() {
	registry.Register("flyer", func() registry.Game {
		return New()
	})
}
