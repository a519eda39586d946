// Package config provides YAML-based tuning for the flyer and difficulty
// presets.
package config

import (
	"errors"
	"fmt"
)

// FlyerConfig contains all configuration for the flyer game.
type FlyerConfig struct {
	Player     FlyerPlayer      `yaml:"player"`
	Obstacles  FlyerObstacles   `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Camera     FlyerCamera      `yaml:"camera"`
	Scoring    FlyerScoring     `yaml:"scoring"`
}

// FlyerPlayer defines the flyer's movement tuning. Accelerations and speeds
// are per reference tick; the game scales them by dt*ReferenceRate.
type FlyerPlayer struct {
	HorizontalSpeed float64 `yaml:"horizontal_speed"`
	Gravity         float64 `yaml:"gravity"`
	Lift            float64 `yaml:"lift"`
	VerticalClamp   float64 `yaml:"vertical_clamp"`
	BoundingRadius  float64 `yaml:"bounding_radius"`
	HeightLimit     float64 `yaml:"height_limit"`
	LateralDamping  float64 `yaml:"lateral_damping"`
}

// FlyerObstacles defines how rocks are spawned and moved.
type FlyerObstacles struct {
	Speed         float64 `yaml:"speed"`
	SpawnDepth    float64 `yaml:"spawn_depth"`
	LateralRange  float64 `yaml:"lateral_range"`  // x spawns in [-range, range]
	VerticalRange float64 `yaml:"vertical_range"` // y spawns in [-range, range]
	DespawnMargin float64 `yaml:"despawn_margin"`
	BaseSize      float64 `yaml:"base_size"`
	SizeSpread    float64 `yaml:"size_spread"` // size = base + rand*spread*difficulty
	RadiusScale   float64 `yaml:"radius_scale"`
}

// DifficultyConfig defines how the rock field escalates. Both values step
// once per spawn.
type DifficultyConfig struct {
	InitialLevel    float64 `yaml:"initial_level"`
	MaxLevel        float64 `yaml:"max_level"`
	LevelStep       float64 `yaml:"level_step"`
	InitialInterval float64 `yaml:"initial_interval"` // seconds between spawns
	MinInterval     float64 `yaml:"min_interval"`
	IntervalStep    float64 `yaml:"interval_step"`
}

// FlyerCamera places the viewpoint. The camera position doubles as the
// forward reference for pruning rocks.
type FlyerCamera struct {
	Z   float64 `yaml:"z"`
	FOV float64 `yaml:"fov"` // vertical field of view in degrees
}

// FlyerScoring defines how survival time turns into points.
type FlyerScoring struct {
	Interval      float64 `yaml:"interval"`       // seconds per point
	ReferenceRate float64 `yaml:"reference_rate"` // ticks/sec the tuning was authored for
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI/env string to a preset.
// An empty string means "use the config as loaded".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("config: unknown difficulty preset %q (want easy, normal, hard or fixed)", s)
}

// Validate checks the invariants the game relies on.
func (c FlyerConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be > 0, got %v", name, v))
		}
	}

	positive("player.horizontal_speed", c.Player.HorizontalSpeed)
	positive("player.vertical_clamp", c.Player.VerticalClamp)
	positive("player.bounding_radius", c.Player.BoundingRadius)
	positive("player.height_limit", c.Player.HeightLimit)
	if c.Player.LateralDamping < 0 || c.Player.LateralDamping > 1 {
		errs = append(errs, fmt.Errorf("player.lateral_damping must be in [0, 1], got %v", c.Player.LateralDamping))
	}

	positive("obstacles.speed", c.Obstacles.Speed)
	positive("obstacles.base_size", c.Obstacles.BaseSize)
	positive("obstacles.radius_scale", c.Obstacles.RadiusScale)
	if c.Obstacles.SizeSpread < 0 {
		errs = append(errs, fmt.Errorf("obstacles.size_spread must be >= 0, got %v", c.Obstacles.SizeSpread))
	}
	if c.Obstacles.LateralRange < 0 || c.Obstacles.VerticalRange < 0 {
		errs = append(errs, errors.New("obstacles.lateral_range and vertical_range must be >= 0"))
	}
	if c.Obstacles.SpawnDepth >= c.Camera.Z {
		errs = append(errs, fmt.Errorf("obstacles.spawn_depth (%v) must be in front of camera.z (%v)", c.Obstacles.SpawnDepth, c.Camera.Z))
	}

	positive("difficulty.initial_interval", c.Difficulty.InitialInterval)
	positive("difficulty.min_interval", c.Difficulty.MinInterval)
	if c.Difficulty.MinInterval > c.Difficulty.InitialInterval {
		errs = append(errs, errors.New("difficulty.min_interval must not exceed initial_interval"))
	}
	if c.Difficulty.InitialLevel < 0 {
		errs = append(errs, fmt.Errorf("difficulty.initial_level must be >= 0, got %v", c.Difficulty.InitialLevel))
	}
	if c.Difficulty.InitialLevel > c.Difficulty.MaxLevel {
		errs = append(errs, errors.New("difficulty.initial_level must not exceed max_level"))
	}
	if c.Difficulty.LevelStep < 0 || c.Difficulty.IntervalStep < 0 {
		errs = append(errs, errors.New("difficulty steps must be >= 0"))
	}

	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("camera.fov must be in (0, 180), got %v", c.Camera.FOV))
	}
	positive("scoring.interval", c.Scoring.Interval)
	positive("scoring.reference_rate", c.Scoring.ReferenceRate)

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid flyer config: %w", errors.Join(errs...))
	}
	return nil
}
