package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFlyer loads the flyer configuration.
// Search order: customPath -> ~/.flyer/configs/flyer.yaml -> ./configs/flyer.yaml -> embedded default.
// Files are layered over the defaults, so a file only needs the keys it changes.
func LoadFlyer(customPath string) (FlyerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FlyerConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseFlyer(data)
		if err != nil {
			return FlyerConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("flyer.yaml"), filepath.Join("configs", "flyer.yaml")} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := parseFlyer(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := parseFlyer(defaultFlyerYAML)
	if err != nil {
		return DefaultFlyerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseFlyer decodes YAML over the hardcoded defaults and validates the result.
func parseFlyer(data []byte) (FlyerConfig, error) {
	cfg := DefaultFlyerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FlyerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return FlyerConfig{}, err
	}
	return cfg, nil
}

// Marshal renders a config back to YAML.
func Marshal(cfg FlyerConfig) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to marshal: %w", err)
	}
	return out, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flyer", "configs", filename)
}
