package config

// presetProgress returns how far into the difficulty range a preset starts
// (0.0 = config's initial values, 1.0 = fully escalated).
func presetProgress(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyFlyerPreset modifies the config based on a difficulty preset.
// Ranked presets move the starting level and spawn interval part of the way
// toward their cap and floor; fixed freezes both at their initial values.
func ApplyFlyerPreset(cfg *FlyerConfig, preset DifficultyPreset) {
	d := &cfg.Difficulty

	if IsFixedPreset(preset) {
		d.LevelStep = 0
		d.IntervalStep = 0
		return
	}

	p := presetProgress(preset)
	d.InitialLevel += p * (d.MaxLevel - d.InitialLevel)
	d.InitialInterval -= p * (d.InitialInterval - d.MinInterval)
}
