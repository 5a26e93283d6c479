package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCatcher loads and validates the catcher configuration.
// Search order: customPath -> ~/.catcher/configs/catcher.yaml -> ./configs/catcher.yaml -> embedded default
func LoadCatcher(customPath string) (CatcherConfig, error) {
	cfg, err := loadCatcher(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid catcher config: %w", err)
	}
	return cfg, nil
}

func loadCatcher(customPath string) (CatcherConfig, error) {
	// Fields missing from a file keep their default values
	cfg := DefaultCatcherConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory.
	// A file that exists but does not parse is an error, not a fallthrough.
	for _, path := range []string{userConfigPath("catcher.yaml"), filepath.Join("configs", "catcher.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultCatcherConfig(), fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return cfg, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultCatcherYAML, &cfg); err != nil {
		return DefaultCatcherConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".catcher", "configs", filename)
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg CatcherConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// ParsePreset converts a CLI difficulty name to a preset.
// An empty name returns an empty preset, meaning "use the config as loaded".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// ApplyCatcherPreset modifies the config based on a difficulty preset.
func ApplyCatcherPreset(cfg *CatcherConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}

	if IsFixedPreset(preset) {
		cfg.Spawn.Ramp.Enabled = false
		return
	}
	cfg.Spawn.Ramp.Enabled = true

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Objects.BaseSpeed = 2.5
		cfg.Spawn.BaseInterval = 70
		cfg.Spawn.MinInterval = 40
		cfg.Collision.Margin = 8
	case DifficultyHard:
		cfg.Objects.BaseSpeed = 4.0
		cfg.Spawn.BaseInterval = 50
		cfg.Spawn.MinInterval = 20
		cfg.Collision.Margin = 2
	}
}
