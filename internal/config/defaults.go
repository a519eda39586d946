package config

import (
	_ "embed"
)

//go:embed defaults/flyer.yaml
var defaultFlyerYAML []byte

// DefaultFlyerConfig returns the default flyer configuration.
// It must stay in sync with defaults/flyer.yaml.
func DefaultFlyerConfig() FlyerConfig {
	return FlyerConfig{
		Player: FlyerPlayer{
			HorizontalSpeed: 0.15,
			Gravity:         -0.005,
			Lift:            0.015,
			VerticalClamp:   0.2,
			BoundingRadius:  1.0,
			HeightLimit:     10,
			LateralDamping:  0.95,
		},
		Obstacles: FlyerObstacles{
			Speed:         0.2,
			SpawnDepth:    -100,
			LateralRange:  15,
			VerticalRange: 10,
			DespawnMargin: 10,
			BaseSize:      1,
			SizeSpread:    2,
			RadiusScale:   1.2,
		},
		Difficulty: DifficultyConfig{
			InitialLevel:    1,
			MaxLevel:        3,
			LevelStep:       0.01,
			InitialInterval: 1,
			MinInterval:     0.5,
			IntervalStep:    0.01,
		},
		Camera: FlyerCamera{
			Z:   5,
			FOV: 75,
		},
		Scoring: FlyerScoring{
			Interval:      1,
			ReferenceRate: 60,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "flyer":
		return defaultFlyerYAML
	default:
		return nil
	}
}
