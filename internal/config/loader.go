package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the runner configuration and validates it.
// Search order: customPath -> ~/.tui-runner/configs/runner.yaml ->
// ./configs/runner.yaml -> embedded default. File values overlay the
// built-in defaults, so a partial file only overrides what it names.
func Load(customPath string) (Config, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "runner.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultRunnerYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of DefaultConfig. It does not validate.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tui-runner", "configs", filename)
}

// ParsePreset maps a CLI string to a Preset. Empty means no preset.
func ParsePreset(s string) (Preset, error) {
	switch p := Preset(s); p {
	case "", PresetEasy, PresetNormal, PresetHard, PresetFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset rewrites the baseline settings for a difficulty preset and
// reports whether level progression should scale parameters.
func ApplyPreset(cfg *Config, preset Preset) (progression bool) {
	s := &cfg.Settings
	switch preset {
	case PresetEasy:
		s.BgSpeed = 6
		s.BirdSpeed = s.BgSpeed * 0.8
		s.CactiSpawnRate = 70
		s.BirdSpawnRate = 300
	case PresetHard:
		s.BgSpeed = 10
		s.BirdSpeed = s.BgSpeed * 0.9
		s.CactiSpawnRate = 40
		s.BirdSpawnRate = 180
	case PresetFixed:
		return false
	}
	return true
}
