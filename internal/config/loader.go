package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadSnake loads the Snake configuration.
// Search order: customPath -> ~/.snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
//
// A customPath that cannot be read, parsed or validated is an error. Files found
// on the search path are skipped when unusable.
func LoadSnake(customPath string) (SnakeConfig, error) {
	var searchPaths []string
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		searchPaths = append(searchPaths, userCfgPath)
	}
	searchPaths = append(searchPaths, filepath.Join("configs", "snake.yaml"))

	return loadSnake(customPath, searchPaths)
}

func loadSnake(customPath string, searchPaths []string) (SnakeConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseSnake(data)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("failed to load config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseSnake(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if cfg, err := parseSnake(defaultSnakeYAML); err == nil {
		return cfg, nil
	}
	return DefaultSnakeConfig(), nil
}

// parseSnake decodes YAML over the defaults, so omitted keys keep their
// default values, and validates the result.
func parseSnake(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnakeConfig{}, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return SnakeConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c SnakeConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to a user config file.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset validates a preset name. The empty string is accepted
// and means "keep the configuration as loaded".
func ParseDifficultyPreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)",
			ErrInvalidConfig, name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
		if cfg.Difficulty.Progression.Type == "" || cfg.Difficulty.Progression.Type == "none" {
			cfg.Difficulty.Progression.Type = "score"
		}
	}
}
