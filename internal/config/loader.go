package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const blockyFile = "blocky.yaml"

// LoadBlocky loads Blocky configuration.
// Search order: customPath -> ~/.blocky/configs/blocky.yaml -> ./configs/blocky.yaml -> embedded default.
// Files only need to set the keys they change; the rest keep their defaults.
// A custom path that is missing or invalid is an error; the other
// locations are skipped when they cannot be used.
func LoadBlocky(customPath string) (BlockyConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BlockyConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseBlocky(data)
		if err != nil {
			return BlockyConfig{}, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(blockyFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseBlocky(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", blockyFile)); err == nil {
		if cfg, err := ParseBlocky(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseBlocky(defaultBlockyYAML)
	if err != nil {
		return DefaultBlockyConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseBlocky decodes YAML over the defaults and validates the result.
func ParseBlocky(data []byte) (BlockyConfig, error) {
	cfg := DefaultBlockyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BlockyConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return BlockyConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blocky", "configs", filename)
}
