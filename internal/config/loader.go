package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRacer loads the configuration for a racer variant.
// Search order: customPath -> ~/.arcade/configs/<variant>.yaml -> ./configs/<variant>.yaml -> embedded default.
// Files are decoded on top of the variant defaults, so a file only needs the keys it changes.
// The result is not validated; call Validate before using it.
func LoadRacer(customPath, variant string) (RacerConfig, error) {
	cfg := DefaultConfigFor(variant)
	filename := variant + ".yaml"

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

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		if loaded, ok := decodeFile(path, variant); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	if data := GetDefaultYAML(variant); data != nil {
		embedded := DefaultConfigFor(variant)
		if err := yaml.Unmarshal(data, &embedded); err == nil {
			return embedded, nil
		}
	}
	return cfg, nil // Fallback to hardcoded if embed fails
}

// decodeFile reads an optional config file. Missing or malformed files are skipped.
func decodeFile(path, variant string) (RacerConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RacerConfig{}, false
	}
	cfg := DefaultConfigFor(variant)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RacerConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyRacerPreset modifies the config based on a difficulty preset.
func ApplyRacerPreset(cfg *RacerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust traffic and lives based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.StartingLives += 2
		cfg.Competitors.Count = max(1, cfg.Competitors.Count-2)
		cfg.Competitors.Speed *= 0.75
	case DifficultyHard:
		cfg.Gameplay.StartingLives = 2
		cfg.Competitors.Count += 2
		cfg.Competitors.Speed *= 1.25
	}
}
