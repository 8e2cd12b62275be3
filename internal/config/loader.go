package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name searched for in the config directories.
const ConfigFile = "tetris.yaml"

// LoadTetris loads the game configuration.
// Search order: customPath -> ~/.tetris/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a file only needs the keys it
// changes.
func LoadTetris(customPath string) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", ConfigFile)); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultTetrisYAML, &cfg); err != nil {
		return DefaultTetrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing, unparsable and invalid
// files are skipped.
func tryLoad(path string) (TetrisConfig, bool) {
	cfg := DefaultTetrisConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", "configs", filename)
}

// Validate rejects settings the game cannot run with.
func (c TetrisConfig) Validate() error {
	switch {
	case c.Gravity.IntervalMs <= 0:
		return fmt.Errorf("config: gravity.interval_ms must be positive, got %d", c.Gravity.IntervalMs)
	case c.Gravity.MinIntervalMs <= 0:
		return fmt.Errorf("config: gravity.min_interval_ms must be positive, got %d", c.Gravity.MinIntervalMs)
	case c.Autopilot.ThinkMs < 0 || c.Autopilot.CommitMs < 0:
		return fmt.Errorf("config: autopilot delays must not be negative")
	case c.Display.NextCount < 0:
		return fmt.Errorf("config: display.next_count must not be negative, got %d", c.Display.NextCount)
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c TetrisConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: encode: %w", err)
	}
	return data, nil
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust base gravity based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gravity.IntervalMs = 1200
	case DifficultyHard:
		cfg.Gravity.IntervalMs = 600
	}
}
