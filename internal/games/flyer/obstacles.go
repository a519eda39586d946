package flyer

import (
	"github.com/vovakirdan/tui-flyer/internal/config"
	"github.com/vovakirdan/tui-flyer/internal/core"
)

// Rand is the random source the field draws spawn positions and sizes from.
// *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Obstacle is a rock flying toward the camera.
type Obstacle struct {
	ID       uint64    // Unique within a field for its whole lifetime
	Position core.Vec3 // Center
	Size     float64   // Fixed at spawn
	Radius   float64   // Collision radius, Size scaled by the rock radius factor
}

// Entity returns the rock's bounding sphere.
func (o Obstacle) Entity() core.Entity {
	return core.Entity{Position: o.Position, Radius: o.Radius}
}

// Field handles spawning, movement and removal of rocks, and escalates
// difficulty as rocks are spawned.
type Field struct {
	obstacles []Obstacle
	rng       Rand
	cfg       config.FlyerObstacles
	diff      config.DifficultyConfig
	refRate   float64
	listener  Listener

	spawnTimer    float64 // Seconds since the last spawn
	spawnInterval float64 // Seconds between spawns, shrinks toward diff.MinInterval
	difficulty    float64 // Size multiplier, grows toward diff.MaxLevel
	nextID        uint64
}

// NewField creates an empty field drawing from rng.
func NewField(cfg *config.FlyerConfig, rng Rand) *Field {
	f := &Field{
		obstacles: make([]Obstacle, 0, 32),
		rng:       rng,
		listener:  nopListener{},
	}
	f.UpdateConfig(cfg)
	f.resetProgression()
	return f
}

// UpdateConfig swaps the tuning. Live rocks and progression are untouched.
func (f *Field) UpdateConfig(cfg *config.FlyerConfig) {
	f.cfg = cfg.Obstacles
	f.diff = cfg.Difficulty
	f.refRate = cfg.Scoring.ReferenceRate
}

// SetListener sets the receiver of spawn/remove events. nil disables events.
func (f *Field) SetListener(l Listener) {
	if l == nil {
		l = nopListener{}
	}
	f.listener = l
}

// SetRand replaces the random source.
func (f *Field) SetRand(rng Rand) {
	f.rng = rng
}

// Update spawns a rock when the spawn timer is due, moves every rock toward
// the camera and prunes those more than the despawn margin past ref.
func (f *Field) Update(dt float64, ref core.Vec3) {
	if dt < 0 {
		dt = 0
	}

	f.spawnTimer += dt
	if f.spawnTimer >= f.spawnInterval {
		f.spawn()
		f.spawnTimer = 0

		f.spawnInterval = max(f.diff.MinInterval, f.spawnInterval-f.diff.IntervalStep)
		f.difficulty = min(f.diff.MaxLevel, f.difficulty+f.diff.LevelStep)
	}

	step := f.cfg.Speed * dt * f.refRate
	limit := ref.Z + f.cfg.DespawnMargin

	kept := f.obstacles[:0]
	for _, o := range f.obstacles {
		o.Position.Z += step
		if o.Position.Z > limit {
			f.listener.OnEvent(ObstacleRemovedEvent{Obstacle: o})
			continue
		}
		kept = append(kept, o)
	}
	f.obstacles = kept
}

// spawn creates a rock at the spawn depth with a random lateral position
// and a size drawn from the current difficulty.
func (f *Field) spawn() {
	pos := core.Vec3{
		X: (f.rng.Float64() - 0.5) * 2 * f.cfg.LateralRange,
		Y: (f.rng.Float64() - 0.5) * 2 * f.cfg.VerticalRange,
		Z: f.cfg.SpawnDepth,
	}
	size := f.cfg.BaseSize + f.rng.Float64()*f.cfg.SizeSpread*f.difficulty
	f.Place(pos, size)
}

// Place adds a rock of the given size at pos and reports it as spawned.
// It does not touch the spawn timer or difficulty.
func (f *Field) Place(pos core.Vec3, size float64) Obstacle {
	f.nextID++
	o := Obstacle{
		ID:       f.nextID,
		Position: pos,
		Size:     size,
		Radius:   size * f.cfg.RadiusScale,
	}
	f.obstacles = append(f.obstacles, o)
	f.listener.OnEvent(ObstacleSpawnedEvent{Obstacle: o})
	return o
}

// Obstacles returns the live rocks in spawn order. Callers must not modify
// the returned slice.
func (f *Field) Obstacles() []Obstacle {
	return f.obstacles
}

// Len returns the number of live rocks.
func (f *Field) Len() int {
	return len(f.obstacles)
}

// Clear removes every rock without touching timers or difficulty.
func (f *Field) Clear() {
	for _, o := range f.obstacles {
		f.listener.OnEvent(ObstacleRemovedEvent{Obstacle: o})
	}
	f.obstacles = f.obstacles[:0]
}

// Reset clears all rocks and restores the initial spawn interval and difficulty.
func (f *Field) Reset() {
	f.Clear()
	f.resetProgression()
}

func (f *Field) resetProgression() {
	f.spawnTimer = 0
	f.spawnInterval = f.diff.InitialInterval
	f.difficulty = f.diff.InitialLevel
}

// SpawnTimer returns the seconds accumulated toward the next spawn.
func (f *Field) SpawnTimer() float64 {
	return f.spawnTimer
}

// SpawnInterval returns the current seconds between spawns.
func (f *Field) SpawnInterval() float64 {
	return f.spawnInterval
}

// Difficulty returns the current difficulty level.
func (f *Field) Difficulty() float64 {
	return f.difficulty
}
